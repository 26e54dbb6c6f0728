package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"fiber-service/internal/dto"
	"fiber-service/internal/entities"
	"fiber-service/internal/repositories"
)

type EquipmentServiceInterface interface {
	List(ctx context.Context) ([]entities.Equipment, error)
	Create(ctx context.Context, data dto.CreateEquipmentDTO) (*entities.Equipment, error)
	Import(ctx context.Context, r io.Reader) (*dto.ImportResultDTO, error)
}

type EquipmentService struct {
	repo   repositories.EquipmentRepositoryInterface
	logger *zap.Logger
}

func NewEquipmentService(repo repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{repo: repo, logger: logger}
}

func (s *EquipmentService) List(ctx context.Context) ([]entities.Equipment, error) {
	return s.repo.List(ctx)
}

func (s *EquipmentService) Create(ctx context.Context, data dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	created, err := s.repo.Create(ctx, entities.Equipment{
		Name:      strings.TrimSpace(data.Name),
		Type:      strings.TrimSpace(data.Type),
		UnitPrice: data.UnitPrice,
	})
	if err != nil {
		s.logger.Error("Ошибка при создании оборудования", zap.Error(err))
		return nil, fmt.Errorf("не удалось создать оборудование: %w", err)
	}
	s.logger.Info("Оборудование создано", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// Import читает первый лист xlsx и добавляет все корректные строки одной пачкой.
func (s *EquipmentService) Import(ctx context.Context, r io.Reader) (*dto.ImportResultDTO, error) {
	sheet, err := ParseEquipmentSheet(r)
	if err != nil {
		return nil, err
	}

	result := &dto.ImportResultDTO{Skipped: len(sheet.Problems), Errors: sheet.Problems}
	if len(sheet.Items) == 0 {
		s.logger.Warn("Импорт оборудования: нет корректных строк", zap.Int("skipped", result.Skipped))
		return result, nil
	}

	created, err := s.repo.CreateMany(ctx, sheet.Items)
	if err != nil {
		s.logger.Error("Ошибка при импорте оборудования", zap.Error(err))
		return nil, fmt.Errorf("не удалось сохранить оборудование: %w", err)
	}
	result.Imported = len(created)
	s.logger.Info("Импорт оборудования завершён", zap.Int("imported", result.Imported), zap.Int("skipped", result.Skipped))
	return result, nil
}
