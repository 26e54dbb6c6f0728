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

// ServiceCatalogServiceInterface - каталог услуг (установка, ремонт и т.д.).
type ServiceCatalogServiceInterface interface {
	List(ctx context.Context) ([]entities.Service, error)
	Create(ctx context.Context, data dto.CreateServiceDTO) (*entities.Service, error)
}

type ServiceCatalogService struct {
	repo   repositories.ServiceRepositoryInterface
	logger *zap.Logger
}

func NewServiceCatalogService(repo repositories.ServiceRepositoryInterface, logger *zap.Logger) ServiceCatalogServiceInterface {
	return &ServiceCatalogService{repo: repo, logger: logger}
}

func (s *ServiceCatalogService) List(ctx context.Context) ([]entities.Service, error) {
	return s.repo.List(ctx)
}

func (s *ServiceCatalogService) Create(ctx context.Context, data dto.CreateServiceDTO) (*entities.Service, error) {
	created, err := s.repo.Create(ctx, entities.Service{
		Name:              strings.TrimSpace(data.Name),
		Category:          data.Category,
		BasePrice:         data.BasePrice,
		EstimatedDuration: data.EstimatedDuration,
	})
	if err != nil {
		s.logger.Error("Ошибка при создании услуги", zap.Error(err))
		return nil, fmt.Errorf("не удалось создать услугу: %w", err)
	}
	s.logger.Info("Услуга создана", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}
