package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"fiber-service/internal/entities"
)

var clientTable = catalogTable[entities.Client]{
	name:    "clients",
	columns: []string{"name", "phone", "email", "address", "cto", "plan"},
	values: func(c entities.Client) []interface{} {
		return []interface{}{c.Name, c.Phone, c.Email, c.Address, c.CTO, c.Plan}
	},
	scan: func(s scanner) (entities.Client, error) {
		var c entities.Client
		err := s.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CTO, &c.Plan, &c.CreatedAt)
		return c, err
	},
}

func NewClientRepository(storage *pgxpool.Pool) ClientRepositoryInterface {
	return newPgCatalogRepository(storage, clientTable)
}
