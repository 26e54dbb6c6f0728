package repositories

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fiber-service/internal/entities"
)

// CatalogRepository - справочник, в который можно только добавлять.
type CatalogRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uint64) (*T, error)
	Create(ctx context.Context, item T) (*T, error)
	CreateMany(ctx context.Context, items []T) ([]T, error)
	Count(ctx context.Context) (int, error)
}

type (
	ClientRepositoryInterface     = CatalogRepository[entities.Client]
	ServiceRepositoryInterface    = CatalogRepository[entities.Service]
	TechnicianRepositoryInterface = CatalogRepository[entities.Technician]
	EquipmentRepositoryInterface  = CatalogRepository[entities.Equipment]
)

// catalogTable описывает, как сущность T ложится на таблицу.
type catalogTable[T any] struct {
	name    string
	columns []string // без id и created_at
	values  func(item T) []interface{}
	scan    func(s scanner) (T, error)
}

func (t catalogTable[T]) selectColumns() []string {
	cols := make([]string, 0, len(t.columns)+2)
	cols = append(cols, "id")
	cols = append(cols, t.columns...)
	return append(cols, "created_at")
}

func (t catalogTable[T]) insertBuilder(item T) sq.InsertBuilder {
	return psql.Insert(t.name).
		Columns(t.columns...).
		Values(t.values(item)...).
		Suffix("RETURNING " + strings.Join(t.selectColumns(), ", "))
}

type pgCatalogRepository[T any] struct {
	storage *pgxpool.Pool
	tx      TxManagerInterface
	table   catalogTable[T]
}

func newPgCatalogRepository[T any](storage *pgxpool.Pool, table catalogTable[T]) CatalogRepository[T] {
	return &pgCatalogRepository[T]{storage: storage, tx: NewTxManager(storage), table: table}
}

func (r *pgCatalogRepository[T]) List(ctx context.Context) ([]T, error) {
	query, args, err := psql.Select(r.table.selectColumns()...).From(r.table.name).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса к %s: %w", r.table.name, err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "list "+r.table.name)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := r.table.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования %s: %w", r.table.name, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *pgCatalogRepository[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	query, args, err := psql.Select(r.table.selectColumns()...).From(r.table.name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса к %s: %w", r.table.name, err)
	}
	item, err := r.table.scan(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(err, "find "+r.table.name)
	}
	return &item, nil
}

func (r *pgCatalogRepository[T]) Create(ctx context.Context, item T) (*T, error) {
	created, err := r.insert(ctx, r.storage, item)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *pgCatalogRepository[T]) CreateMany(ctx context.Context, items []T) ([]T, error) {
	created := make([]T, 0, len(items))
	err := r.tx.RunInTransaction(ctx, func(tx pgx.Tx) error {
		for _, item := range items {
			row, err := r.insert(ctx, tx, item)
			if err != nil {
				return err
			}
			created = append(created, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *pgCatalogRepository[T]) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(r.table.name).ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки COUNT-запроса: %w", err)
	}
	var total int
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, mapPgError(err, "count "+r.table.name)
	}
	return total, nil
}

func (r *pgCatalogRepository[T]) insert(ctx context.Context, q querier, item T) (T, error) {
	query, args, err := r.table.insertBuilder(item).ToSql()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("ошибка сборки INSERT в %s: %w", r.table.name, err)
	}
	created, err := r.table.scan(q.QueryRow(ctx, query, args...))
	if err != nil {
		return created, mapPgError(err, "insert "+r.table.name)
	}
	return created, nil
}
