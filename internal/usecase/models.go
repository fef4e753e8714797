package usecase

import (
	"time"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
)

// PRICE USECASE

// GetPriceReq — запрос цены по паре (категория, название).
// Поля приходят уже извлеченными из HTTP-запроса, разбором JSON занимается delivery.
type GetPriceReq struct {
	Category string
	Name     string
}

// GetPriceRes — рассчитанная цена компонента.
// Price хранится в грошах, форматирование в две десятичные цифры — на стороне delivery.
type GetPriceRes struct {
	Name     string
	Category string
	Price    int64
	Currency string
}

// RegisterComponentReq — запрос на добавление или обновление записи каталога.
type RegisterComponentReq struct {
	Category   string
	Name       string
	Attributes map[string]any
	BasePrice  int64
}

// REPOSITORIES

type UpsertComponentRes struct {
	Component *domain.Component
	NoChanges bool
}

// OUTBOX

type OutboxStatus string

type OutboxEventType string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"

	ComponentUpserted OutboxEventType = "component_upserted"
)

// OutboxEvent — событие изменения каталога, публикуемое через transactional outbox.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ComponentID int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// CatalogChangeEvent — JSON-тело события в outbox и в Kafka.
type CatalogChangeEvent struct {
	EventID     string         `json:"event_id"`
	OccurredAt  int64          `json:"occurred_at"`
	ComponentID int64          `json:"component_id"`
	Category    string         `json:"category"`
	Name        string         `json:"name"`
	BasePrice   int64          `json:"base_price"`
	Attributes  map[string]any `json:"attributes"`
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	ComponentID int64
	Payload     []byte
}

// MAPPERS

func NewGetPriceReq(category, name string) *GetPriceReq {
	return &GetPriceReq{
		Category: category,
		Name:     name,
	}
}

func NewGetPriceRes(name, category string, price int64, currency string) *GetPriceRes {
	return &GetPriceRes{
		Name:     name,
		Category: category,
		Price:    price,
		Currency: currency,
	}
}

func NewRegisterComponentReq(category, name string, attributes map[string]any, basePrice int64) *RegisterComponentReq {
	return &RegisterComponentReq{
		Category:   category,
		Name:       name,
		Attributes: attributes,
		BasePrice:  basePrice,
	}
}

func NewUpsertComponentRes(component *domain.Component, noChanges bool) *UpsertComponentRes {
	return &UpsertComponentRes{
		Component: component,
		NoChanges: noChanges,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, componentID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:     eventID,
		EventType:   eventType,
		ComponentID: componentID,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(componentID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ComponentID: componentID,
		Payload:     payload,
	}
}
