package usecase

import (
	"context"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
)

type ComponentRepository interface {
	Resolve(ctx context.Context, category domain.Category, name string) (*domain.Component, error)
	Upsert(ctx context.Context, component *domain.Component) (*UpsertComponentRes, error)
}

type CacheRepository interface {
	GetComponent(ctx context.Context, category domain.Category, name string) (*domain.Component, error)
	SetComponent(ctx context.Context, component *domain.Component) error
	DeleteComponent(ctx context.Context, category domain.Category, name string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
