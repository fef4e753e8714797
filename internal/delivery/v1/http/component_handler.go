package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/pricing-backend/internal/usecase"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/DRSN-tech/pricing-backend/pkg/logger"
)

type ComponentHandler struct {
	priceUsecase usecase.PriceUC
	logger       logger.Logger
}

func NewComponentHandler(priceUsecase usecase.PriceUC, logger logger.Logger) *ComponentHandler {
	return &ComponentHandler{priceUsecase: priceUsecase, logger: logger}
}

type RegisterComponentRequest struct {
	Category   string         `json:"category" example:"GPU"`
	Name       string         `json:"name" example:"RTX 4070"`
	BasePrice  string         `json:"base_price" example:"2000.00"`
	Attributes map[string]any `json:"attributes"`
}

// registerComponent
//
//	@Summary		Регистрация записи каталога
//	@Description	Создает или обновляет запись каталога. Цена указывается строкой в основных единицах валюты.
//	@Tags			components
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterComponentRequest	true	"Запись каталога"
//	@Success		201		{object}	map[string]interface{}	"Запись создана или обновлена"
//	@Success		200		{object}	map[string]interface{}	"Запись не изменилась"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/components [post]
func (c *ComponentHandler) registerComponent(w http.ResponseWriter, r *http.Request) {
	const maxRequestSize = 1 << 20

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

	var req RegisterComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	basePrice, err := parsePriceToGrosz(req.BasePrice)
	if err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	event, err := c.priceUsecase.RegisterComponent(r.Context(),
		usecase.NewRegisterComponentReq(req.Category, req.Name, req.Attributes, basePrice))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if event != nil {
		WriteSuccess(w, http.StatusCreated, map[string]interface{}{
			"EventID": event.EventID,
		})
	} else {
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"Changed": false,
		})
	}
}
