package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"fiber-service/internal/entities"
)

var equipmentTable = catalogTable[entities.Equipment]{
	name:    "equipment",
	columns: []string{"name", "type", "unit_price"},
	values: func(e entities.Equipment) []interface{} {
		return []interface{}{e.Name, e.Type, e.UnitPrice}
	},
	scan: func(s scanner) (entities.Equipment, error) {
		var e entities.Equipment
		err := s.Scan(&e.ID, &e.Name, &e.Type, &e.UnitPrice, &e.CreatedAt)
		return e, err
	},
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return newPgCatalogRepository(storage, equipmentTable)
}
