package domain

import "time"

// Component описывает одну запись каталога: спецификацию комплектующей.
// Пара (Category, Name) уникальна, Attributes хранит численные характеристики,
// набор которых зависит от категории. BasePrice хранится в грошах.
type Component struct {
	ID         int64
	Category   Category
	Name       string
	Attributes map[string]any
	BasePrice  int64
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	IsArchived bool
}

func NewComponent(category Category, name string, attributes map[string]any, basePrice int64) *Component {
	return &Component{
		Category:   category,
		Name:       name,
		Attributes: attributes,
		BasePrice:  basePrice,
	}
}

// Attr возвращает численное значение атрибута.
// Второй результат false, если атрибут отсутствует или не является числом.
func (c *Component) Attr(name string) (float64, bool) {
	v, ok := c.Attributes[name]
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
