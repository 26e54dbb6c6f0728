package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fiber-service/internal/dto"
	"fiber-service/internal/entities"
	"fiber-service/internal/repositories"
	"fiber-service/pkg/customvalidator"
)

type ClientServiceInterface interface {
	List(ctx context.Context) ([]entities.Client, error)
	Create(ctx context.Context, data dto.CreateClientDTO) (*entities.Client, error)
}

type ClientService struct {
	repo   repositories.ClientRepositoryInterface
	logger *zap.Logger
}

func NewClientService(repo repositories.ClientRepositoryInterface, logger *zap.Logger) ClientServiceInterface {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) List(ctx context.Context) ([]entities.Client, error) {
	return s.repo.List(ctx)
}

func (s *ClientService) Create(ctx context.Context, data dto.CreateClientDTO) (*entities.Client, error) {
	client := entities.Client{
		Name:    strings.TrimSpace(data.Name),
		Phone:   normalizePhone(data.Phone),
		Email:   strings.ToLower(strings.TrimSpace(data.Email)),
		Address: strings.TrimSpace(data.Address),
		CTO:     strings.TrimSpace(data.CTO),
		Plan:    strings.TrimSpace(data.Plan),
	}
	created, err := s.repo.Create(ctx, client)
	if err != nil {
		s.logger.Error("Ошибка при создании клиента", zap.Error(err))
		return nil, fmt.Errorf("не удалось создать клиента: %w", err)
	}
	s.logger.Info("Клиент создан", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	return customvalidator.NormalizePhone(raw)
}
