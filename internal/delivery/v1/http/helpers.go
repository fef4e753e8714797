package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse переводит доменную ошибку в HTTP-код и сообщение.
// Ошибки целостности каталога (ErrMalformedSpec, ErrNonPositivePrice)
// намеренно отдаются как 500: запись в каталоге есть, но посчитать цену
// по ней нельзя, и это проблема данных, а не клиента.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrInvalidCategory):
		return http.StatusBadRequest, e.ErrInvalidCategory.Error()
	case errors.Is(err, e.ErrComponentNameRequired):
		return http.StatusBadRequest, e.ErrComponentNameRequired.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrBasePriceMustBePositive):
		return http.StatusBadRequest, e.ErrBasePriceMustBePositive.Error()
	case errors.Is(err, e.ErrComponentNotFound):
		return http.StatusNotFound, e.ErrComponentNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToGrosz converts a string like "599.99" or "600" to int64 grosz.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - non-positive value
// - exceeds reasonable limit
func parsePriceToGrosz(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrMissingFields
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThanOrEqual(decimal.Zero) {
		return 0, e.ErrBasePriceMustBePositive
	}

	// Enforce max value (1 billion PLN in grosz)
	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	// Check decimal places
	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).IntPart(), nil
}

// formatGrosz переводит цену из грошей в строку в основных единицах ("3600.00").
func formatGrosz(grosz int64) string {
	return decimal.NewFromInt(grosz).Div(decimal.NewFromInt(100)).StringFixed(2)
}
