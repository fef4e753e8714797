package converter

import "time"

// ComponentModel представляет запись таблицы components в PostgreSQL.
// Attributes хранится как JSONB.
type ComponentModel struct {
	ID         int64      `db:"id"`
	Category   string     `db:"category"`
	Name       string     `db:"name"`
	Attributes []byte     `db:"attributes"`
	BasePrice  int64      `db:"base_price"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
	IsArchived bool       `db:"is_archived"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ComponentID int64      `db:"component_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
