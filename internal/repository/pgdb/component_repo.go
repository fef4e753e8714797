package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/pricing-backend/internal/usecase"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/DRSN-tech/pricing-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ComponentRepo реализует репозиторий каталога комплектующих поверх PostgreSQL.
type ComponentRepo struct {
	pool *pgxpool.Pool
	conv *converter.ComponentConverter
}

func NewComponentRepo(pool *pgxpool.Pool, conv *converter.ComponentConverter) *ComponentRepo {
	return &ComponentRepo{
		pool: pool,
		conv: conv,
	}
}

// Resolve возвращает единственную запись каталога по паре (категория, название).
// Название матчится с учетом регистра. Отсутствие записи — e.ErrComponentNotFound.
// Чтение идет вне транзакции: путь запроса цены каталог не мутирует.
func (r *ComponentRepo) Resolve(ctx context.Context, category domain.Category, name string) (*domain.Component, error) {
	query := `
		SELECT id, category, name, attributes, base_price, created_at, updated_at, is_archived
		FROM components
		WHERE category = $1 AND name = $2 AND NOT is_archived
	`

	var model converter.ComponentModel
	err := r.pool.QueryRow(ctx, query, category.String(), name).
		Scan(
			&model.ID, &model.Category, &model.Name, &model.Attributes,
			&model.BasePrice, &model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrComponentNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	component, err := r.conv.ToEntity(&model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return component, nil
}

// Upsert идемпотентно создаёт или обновляет запись каталога по паре (категория, название).
// Запись обновляется только при изменении спецификации или базовой цены.
func (r *ComponentRepo) Upsert(ctx context.Context, component *domain.Component) (*usecase.UpsertComponentRes, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	in, err := r.conv.ToModel(component)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	// VALUES ($1, $2, $3, $4) category, name, attributes, base_price
	query := `
		WITH upsert AS (
		INSERT INTO components (category, name, attributes, base_price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (category, name)
		DO UPDATE SET
			attributes = EXCLUDED.attributes,
			base_price = EXCLUDED.base_price,
			updated_at = NOW()
		WHERE
			components.attributes IS DISTINCT FROM EXCLUDED.attributes OR
			components.base_price IS DISTINCT FROM EXCLUDED.base_price
		RETURNING
			id, category, name, attributes, base_price, created_at, updated_at, is_archived
		)
		SELECT
			id, category, name, attributes, base_price, created_at, updated_at, is_archived,
			false AS no_changes
		FROM upsert

		UNION ALL

		SELECT
			id, category, name, attributes, base_price, created_at, updated_at, is_archived,
			true AS no_changes
		FROM components
		WHERE category = $1
		  AND name = $2
		  AND NOT EXISTS (SELECT 1 FROM upsert);
	`

	var model converter.ComponentModel
	var noChanges bool
	err = tx.QueryRow(ctx, query, in.Category, in.Name, in.Attributes, in.BasePrice).
		Scan(
			&model.ID, &model.Category, &model.Name, &model.Attributes,
			&model.BasePrice, &model.CreatedAt, &model.UpdatedAt, &model.IsArchived, &noChanges,
		)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	entity, err := r.conv.ToEntity(&model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewUpsertComponentRes(entity, noChanges), nil
}
