package seeders

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fiber-service/internal/repositories"
)

// SeedDefaults наполняет пустые справочники данными по умолчанию.
// Непустую коллекцию не трогает, поэтому повторный запуск безопасен.
func SeedDefaults(ctx context.Context, store *repositories.Store, logger *zap.Logger) error {
	logger.Info("▶️  Запуск наполнения справочников...")

	if err := seedCatalog(ctx, store.Clients, clientsData, "clients", logger); err != nil {
		return err
	}
	if err := seedCatalog(ctx, store.Services, servicesData, "services", logger); err != nil {
		return err
	}
	if err := seedCatalog(ctx, store.Technicians, techniciansData, "technicians", logger); err != nil {
		return err
	}
	if err := seedCatalog(ctx, store.Equipment, equipmentData, "equipment", logger); err != nil {
		return err
	}

	logger.Info("✅ Наполнение справочников завершено")
	return nil
}

func seedCatalog[T any](ctx context.Context, repo repositories.CatalogRepository[T], data []T, name string, logger *zap.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("подсчёт записей %s: %w", name, err)
	}
	if count > 0 {
		logger.Debug("Справочник уже заполнен, пропуск", zap.String("table", name), zap.Int("count", count))
		return nil
	}

	created, err := repo.CreateMany(ctx, data)
	if err != nil {
		return fmt.Errorf("наполнение %s: %w", name, err)
	}
	logger.Info("  - Справочник наполнен", zap.String("table", name), zap.Int("inserted", len(created)))
	return nil
}
