package converter

import "github.com/DRSN-tech/pricing-backend/internal/domain"

// ComponentConverter преобразует записи каталога между domain и моделью кэша.
type ComponentConverter struct{}

func NewComponentConverter() *ComponentConverter {
	return &ComponentConverter{}
}

func (c *ComponentConverter) ToRedisModel(entity *domain.Component) *ComponentRedisModel {
	return &ComponentRedisModel{
		ID:         entity.ID,
		Category:   entity.Category.String(),
		Name:       entity.Name,
		Attributes: entity.Attributes,
		BasePrice:  entity.BasePrice,
	}
}

func (c *ComponentConverter) ToEntity(model *ComponentRedisModel) *domain.Component {
	return &domain.Component{
		ID:         model.ID,
		Category:   domain.Category(model.Category),
		Name:       model.Name,
		Attributes: model.Attributes,
		BasePrice:  model.BasePrice,
	}
}
