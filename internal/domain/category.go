package domain

import (
	"strings"

	"github.com/DRSN-tech/pricing-backend/pkg/e"
)

// Category — закрытое перечисление категорий комплектующих.
type Category string

const (
	CategoryCPU Category = "CPU"
	CategoryGPU Category = "GPU"
	CategoryRAM Category = "RAM"
)

// Categories возвращает полный набор поддерживаемых категорий.
func Categories() []Category {
	return []Category{CategoryCPU, CategoryGPU, CategoryRAM}
}

// ParseCategory валидирует тег категории.
// Тег обрезается и приводится к верхнему регистру, значения вне перечисления
// дают e.ErrInvalidCategory — это ошибка формы запроса, а не "запись не найдена".
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryCPU:
		return CategoryCPU, nil
	case CategoryGPU:
		return CategoryGPU, nil
	case CategoryRAM:
		return CategoryRAM, nil
	default:
		return "", e.ErrInvalidCategory
	}
}

func (c Category) String() string {
	return string(c)
}
