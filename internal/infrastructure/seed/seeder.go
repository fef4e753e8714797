package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DRSN-tech/pricing-backend/internal/usecase"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/DRSN-tech/pricing-backend/pkg/jitter"
	"github.com/DRSN-tech/pricing-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

const (
	fetchAttempts    = 3
	fetchBackoffBase = time.Second
	fetchBackoffMax  = 10 * time.Second
)

// CatalogFetcher отдает содержимое посевного файла каталога.
// (nil, nil) означает, что файла нет и посев пропускается.
type CatalogFetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// catalogEntry — одна запись посевного файла.
// base_price задается строкой в основных единицах валюты ("2000.00").
type catalogEntry struct {
	Category   string         `json:"category"`
	Name       string         `json:"name"`
	BasePrice  string         `json:"base_price"`
	Attributes map[string]any `json:"attributes"`
}

// Seeder загружает посевной каталог при старте сервиса.
// Посев идемпотентен: повторная загрузка того же файла не меняет каталог.
type Seeder struct {
	fetcher CatalogFetcher
	uc      usecase.PriceUC
	logger  logger.Logger
}

func NewSeeder(fetcher CatalogFetcher, uc usecase.PriceUC, logger logger.Logger) *Seeder {
	return &Seeder{
		fetcher: fetcher,
		uc:      uc,
		logger:  logger,
	}
}

// Run читает посевной файл и регистрирует каждую запись через usecase.
// Отсутствие файла — не ошибка. Битые записи пропускаются с предупреждением,
// посев продолжается.
func (s *Seeder) Run(ctx context.Context) error {
	data, err := s.fetchWithRetries(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if data == nil {
		s.logger.Infof("Seed catalog not found, skipping seed")
		return nil
	}

	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	seeded := 0
	for _, entry := range entries {
		if err := s.seedEntry(ctx, entry); err != nil {
			s.logger.Warnf("Seed entry %s/%s skipped: %v", entry.Category, entry.Name, err)
			continue
		}
		seeded++
	}

	s.logger.Infof("Seed finished: %d/%d entries applied", seeded, len(entries))
	return nil
}

func (s *Seeder) fetchWithRetries(ctx context.Context) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < fetchAttempts; attempt++ {
		data, err := s.fetcher.Fetch(ctx)
		if err == nil {
			return data, nil
		}
		lastErr = err

		backoff := jitter.ExponentialBackoff(fetchBackoffBase, fetchBackoffMax, attempt, jitter.DefaultJitter)
		s.logger.Warnf("Seed catalog fetch failed (attempt %d): %v, retrying in %v", attempt+1, err, backoff)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, lastErr
}

func (s *Seeder) seedEntry(ctx context.Context, entry catalogEntry) error {
	basePrice, err := parsePriceToGrosz(entry.BasePrice)
	if err != nil {
		return err
	}

	_, err = s.uc.RegisterComponent(ctx, usecase.NewRegisterComponentReq(
		entry.Category,
		entry.Name,
		entry.Attributes,
		basePrice,
	))

	return err
}

// parsePriceToGrosz переводит цену из строки в основных единицах в гроши.
// Больше двух знаков после запятой — ошибка, молча не округляем.
func parsePriceToGrosz(raw string) (int64, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, e.Wrap(fmt.Sprintf("invalid price %q", raw), errors.Join(e.ErrInvalidPrice, err))
	}

	if d.Exponent() < -2 {
		return 0, e.Wrap(fmt.Sprintf("price %q has more than two decimal places", raw), e.ErrPricePrecision)
	}

	return d.Mul(decimal.NewFromInt(100)).IntPart(), nil
}
