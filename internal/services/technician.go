package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fiber-service/internal/dto"
	"fiber-service/internal/entities"
	"fiber-service/internal/repositories"
)

type TechnicianServiceInterface interface {
	// List при непустом specialty возвращает только техников этой специализации.
	List(ctx context.Context, specialty string) ([]entities.Technician, error)
	Create(ctx context.Context, data dto.CreateTechnicianDTO) (*entities.Technician, error)
}

type TechnicianService struct {
	repo   repositories.TechnicianRepositoryInterface
	logger *zap.Logger
}

func NewTechnicianService(repo repositories.TechnicianRepositoryInterface, logger *zap.Logger) TechnicianServiceInterface {
	return &TechnicianService{repo: repo, logger: logger}
}

func (s *TechnicianService) List(ctx context.Context, specialty string) ([]entities.Technician, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return all, nil
	}
	return Query(all, func(t entities.Technician) bool { return t.Specialty == specialty }), nil
}

func (s *TechnicianService) Create(ctx context.Context, data dto.CreateTechnicianDTO) (*entities.Technician, error) {
	created, err := s.repo.Create(ctx, entities.Technician{
		Name:      strings.TrimSpace(data.Name),
		Specialty: data.Specialty,
		Region:    data.Region,
		Level:     data.Level,
		Phone:     normalizePhone(data.Phone),
	})
	if err != nil {
		s.logger.Error("Ошибка при создании техника", zap.Error(err))
		return nil, fmt.Errorf("не удалось создать техника: %w", err)
	}
	s.logger.Info("Техник создан", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}
