// Package pricing реализует расчет рыночной цены комплектующей
// по её спецификации. Расчет детерминирован: одна и та же запись каталога
// всегда дает одну и ту же цену, без обращений к внешним сервисам.
package pricing

import (
	"fmt"

	"github.com/DRSN-tech/pricing-backend/internal/cfg"
	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// Engine вычисляет цену по формуле категории.
// Формула: price = base × (1 + Σ weightᵢ·attrᵢ), результат округляется
// до гроша (полцента и выше — вверх) и обязан быть строго положительным.
type Engine struct {
	formulas map[domain.Category]formula
}

// formula связывает схему обязательных атрибутов категории с их весами.
type formula struct {
	terms []attrTerm
}

// attrTerm — один взвешенный атрибут формулы.
type attrTerm struct {
	attr   string
	weight decimal.Decimal
}

func NewEngine(cfg *cfg.PricingCfg) *Engine {
	return &Engine{
		formulas: map[domain.Category]formula{
			domain.CategoryCPU: {terms: []attrTerm{
				{attr: "cores", weight: decimal.NewFromFloat(cfg.CPUCoreWeight)},
				{attr: "threads", weight: decimal.NewFromFloat(cfg.CPUThreadWeight)},
			}},
			domain.CategoryGPU: {terms: []attrTerm{
				{attr: "vram_gb", weight: decimal.NewFromFloat(cfg.GPUVRAMWeight)},
				{attr: "generation", weight: decimal.NewFromFloat(cfg.GPUGenerationWeight)},
			}},
			domain.CategoryRAM: {terms: []attrTerm{
				{attr: "capacity_gb", weight: decimal.NewFromFloat(cfg.RAMCapacityWeight)},
				{attr: "speed", weight: decimal.NewFromFloat(cfg.RAMSpeedWeight)},
			}},
		},
	}
}

// Compute возвращает цену компонента в грошах.
// Отсутствие обязательного атрибута или неположительное значение —
// нарушение целостности каталога (e.ErrMalformedSpec), оно не маскируется
// значением по умолчанию. Неположительный итог — e.ErrNonPositivePrice.
func (eng *Engine) Compute(component *domain.Component) (int64, error) {
	f, ok := eng.formulas[component.Category]
	if !ok {
		return 0, e.ErrInvalidCategory
	}

	if component.BasePrice <= 0 {
		return 0, e.Wrap(fmt.Sprintf("base price %d", component.BasePrice), e.ErrMalformedSpec)
	}

	multiplier := decimal.NewFromInt(1)
	for _, term := range f.terms {
		value, ok := component.Attr(term.attr)
		if !ok {
			return 0, e.Wrap(fmt.Sprintf("%s/%s: attribute %q", component.Category, component.Name, term.attr), e.ErrMalformedSpec)
		}
		if value <= 0 {
			return 0, e.Wrap(fmt.Sprintf("%s/%s: attribute %q = %v", component.Category, component.Name, term.attr, value), e.ErrMalformedSpec)
		}

		multiplier = multiplier.Add(term.weight.Mul(decimal.NewFromFloat(value)))
	}

	price := decimal.NewFromInt(component.BasePrice).Mul(multiplier).Round(0)
	if price.LessThanOrEqual(decimal.Zero) {
		// Дефект формулы или весов, а не штатный случай. Не занижаем до нуля молча.
		return 0, e.Wrap(fmt.Sprintf("%s/%s", component.Category, component.Name), e.ErrNonPositivePrice)
	}

	return price.IntPart(), nil
}

// ValidateSpec проверяет, что набор атрибутов покрывает схему формулы категории.
// Используется на пути записи, чтобы неполная спецификация не попала в каталог.
func (eng *Engine) ValidateSpec(category domain.Category, attributes map[string]any) error {
	f, ok := eng.formulas[category]
	if !ok {
		return e.ErrInvalidCategory
	}

	component := domain.Component{Category: category, Attributes: attributes}
	for _, term := range f.terms {
		value, ok := component.Attr(term.attr)
		if !ok {
			return e.Wrap(fmt.Sprintf("attribute %q", term.attr), e.ErrMalformedSpec)
		}
		if value <= 0 {
			return e.Wrap(fmt.Sprintf("attribute %q = %v", term.attr, value), e.ErrMalformedSpec)
		}
	}

	return nil
}

// RequiredAttributes возвращает схему обязательных атрибутов категории.
func (eng *Engine) RequiredAttributes(category domain.Category) []string {
	f, ok := eng.formulas[category]
	if !ok {
		return nil
	}

	attrs := make([]string, 0, len(f.terms))
	for _, term := range f.terms {
		attrs = append(attrs, term.attr)
	}

	return attrs
}
