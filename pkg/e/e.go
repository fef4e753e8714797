package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки целостности каталога: запись есть, но её спецификация
	// не покрывает схему формулы своей категории
	ErrMalformedSpec    = fmt.Errorf("specification is missing a required attribute")
	ErrNonPositivePrice = fmt.Errorf("computed price is not positive")

	// 400 Bad Request
	ErrInvalidCategory         = fmt.Errorf("unknown component category")
	ErrComponentNameRequired   = fmt.Errorf("component name is required")
	ErrBasePriceMustBePositive = fmt.Errorf("base price must be positive")
	ErrMissingFields           = fmt.Errorf("required fields are missing")
	ErrInvalidPrice            = fmt.Errorf("invalid price value")
	ErrPricePrecision          = fmt.Errorf("price must have at most 2 decimal places")
	ErrStatusBadRequest        = fmt.Errorf("bad request")

	// 404 Not Found
	ErrComponentNotFound = fmt.Errorf("component not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
