package converter

import (
	"encoding/json"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/internal/usecase"
)

// ComponentConverter преобразует сущности Component между domain и моделью PostgreSQL.
// Конвертеры написаны вручную: JSONB-колонка attributes требует явной
// (де)сериализации, которую генератор отображений не выразит.
type ComponentConverter struct{}

func NewComponentConverter() *ComponentConverter {
	return &ComponentConverter{}
}

func (c *ComponentConverter) ToEntity(model *ComponentModel) (*domain.Component, error) {
	var attrs map[string]any
	if len(model.Attributes) > 0 {
		if err := json.Unmarshal(model.Attributes, &attrs); err != nil {
			return nil, err
		}
	}

	return &domain.Component{
		ID:         model.ID,
		Category:   domain.Category(model.Category),
		Name:       model.Name,
		Attributes: attrs,
		BasePrice:  model.BasePrice,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
		IsArchived: model.IsArchived,
	}, nil
}

func (c *ComponentConverter) ToModel(entity *domain.Component) (*ComponentModel, error) {
	attrs, err := json.Marshal(entity.Attributes)
	if err != nil {
		return nil, err
	}

	return &ComponentModel{
		ID:         entity.ID,
		Category:   entity.Category.String(),
		Name:       entity.Name,
		Attributes: attrs,
		BasePrice:  entity.BasePrice,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
		IsArchived: entity.IsArchived,
	}, nil
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter struct{}

func NewOutboxEventConverter() *OutboxEventConverter {
	return &OutboxEventConverter{}
}

func (c *OutboxEventConverter) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		ComponentID: model.ComponentID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c *OutboxEventConverter) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		ComponentID: entity.ComponentID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (c *OutboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	result := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		result = append(result, c.ToEntity(model))
	}

	return result
}
