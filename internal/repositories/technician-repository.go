package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"fiber-service/internal/entities"
)

var technicianTable = catalogTable[entities.Technician]{
	name:    "technicians",
	columns: []string{"name", "specialty", "region", "level", "phone"},
	values: func(t entities.Technician) []interface{} {
		return []interface{}{t.Name, t.Specialty, t.Region, t.Level, t.Phone}
	},
	scan: func(s scanner) (entities.Technician, error) {
		var t entities.Technician
		err := s.Scan(&t.ID, &t.Name, &t.Specialty, &t.Region, &t.Level, &t.Phone, &t.CreatedAt)
		return t, err
	},
}

func NewTechnicianRepository(storage *pgxpool.Pool) TechnicianRepositoryInterface {
	return newPgCatalogRepository(storage, technicianTable)
}
