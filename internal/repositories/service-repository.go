package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"fiber-service/internal/entities"
)

var serviceTable = catalogTable[entities.Service]{
	name:    "services",
	columns: []string{"name", "category", "base_price", "estimated_duration"},
	values: func(s entities.Service) []interface{} {
		return []interface{}{s.Name, s.Category, s.BasePrice, s.EstimatedDuration}
	},
	scan: func(s scanner) (entities.Service, error) {
		var svc entities.Service
		err := s.Scan(&svc.ID, &svc.Name, &svc.Category, &svc.BasePrice, &svc.EstimatedDuration, &svc.CreatedAt)
		return svc, err
	},
}

func NewServiceRepository(storage *pgxpool.Pool) ServiceRepositoryInterface {
	return newPgCatalogRepository(storage, serviceTable)
}
