package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/pricing-backend/internal/usecase"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/DRSN-tech/pricing-backend/pkg/logger"
)

type PriceHandler struct {
	priceUsecase usecase.PriceUC
	logger       logger.Logger
}

func NewPriceHandler(priceUsecase usecase.PriceUC, logger logger.Logger) *PriceHandler {
	return &PriceHandler{priceUsecase: priceUsecase, logger: logger}
}

type GetPriceRequest struct {
	Category string `json:"category" example:"GPU"`
	Name     string `json:"name" example:"RTX 4070"`
}

type GetPriceResponse struct {
	Component string `json:"component" example:"RTX 4070"`
	Category  string `json:"category" example:"GPU"`
	Price     string `json:"price" example:"3600.00"`
	Currency  string `json:"currency" example:"PLN"`
}

// getPrice
//
//	@Summary		Расчет цены компонента
//	@Description	Находит запись каталога по паре (категория, название) и возвращает рассчитанную цену
//	@Tags			price
//	@Accept			json
//	@Produce		json
//	@Param			request	body		GetPriceRequest	true	"Категория и название компонента"
//	@Success		200		{object}	GetPriceResponse	"Рассчитанная цена"
//	@Failure		400		{object}	ErrorResponse	"Неизвестная категория или битый запрос"
//	@Failure		404		{object}	ErrorResponse	"Компонент не найден"
//	@Failure		500		{object}	ErrorResponse	"Неполная спецификация в каталоге"
//	@Router			/price [post]
func (p *PriceHandler) getPrice(w http.ResponseWriter, r *http.Request) {
	const maxRequestSize = 1 << 20

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

	var req GetPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := p.priceUsecase.GetComponentPrice(r.Context(), usecase.NewGetPriceReq(req.Category, req.Name))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &GetPriceResponse{
		Component: res.Name,
		Category:  res.Category,
		Price:     formatGrosz(res.Price),
		Currency:  res.Currency,
	})
}
