package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/internal/pricing"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/DRSN-tech/pricing-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PriceUseCase реализует бизнес-логику резолва спецификаций и расчета цен.
type PriceUseCase struct {
	componentRepo ComponentRepository
	cacheRepo     CacheRepository
	outboxRepo    OutboxRepository
	dbPool        transaction.Transactional
	engine        *pricing.Engine
	logger        logger.Logger
	currency      string
}

func NewPriceUC(
	componentRepo ComponentRepository,
	cacheRepo CacheRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	engine *pricing.Engine,
	logger logger.Logger,
	currency string,
) *PriceUseCase {
	return &PriceUseCase{
		componentRepo: componentRepo,
		cacheRepo:     cacheRepo,
		outboxRepo:    outboxRepo,
		dbPool:        dbPool,
		engine:        engine,
		logger:        logger,
		currency:      currency,
	}
}

// GetComponentPrice резолвит спецификацию по (категория, название) и считает цену.
// Названия матчатся с учетом регистра после обрезки пробелов. Кэш хранит только
// записи каталога; цена пересчитывается на каждый запрос.
func (u *PriceUseCase) GetComponentPrice(ctx context.Context, req *GetPriceReq) (*GetPriceRes, error) {
	const op = "PriceUseCase.GetComponentPrice"

	// Валидация
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, e.Wrap(op, e.ErrComponentNameRequired)
	}

	// Поиск записи в кэше, промах или ошибка кэша деградируют в чтение из БД
	component, err := u.cacheRepo.GetComponent(ctx, category, name)
	if err != nil {
		u.logger.Warnf("Cache lookup failed, falling back to db: %v", e.Wrap(op, err))
		component = nil
	}

	if component == nil {
		component, err = u.componentRepo.Resolve(ctx, category, name)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление записи в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := u.cacheRepo.SetComponent(bgCtx, component); err != nil {
				u.logger.Warnf("Failed to cache component in background: %v", e.Wrap(op, err))
			}
		}()
	}

	price, err := u.engine.Compute(component)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewGetPriceRes(component.Name, category.String(), price, u.currency), nil
}

// RegisterComponent идемпотентно добавляет или обновляет запись каталога.
// Спецификация проверяется по схеме формулы до записи, чтобы неполная запись
// не попала в каталог. Изменение фиксируется событием в outbox той же транзакцией.
func (u *PriceUseCase) RegisterComponent(ctx context.Context, req *RegisterComponentReq) (*OutboxEvent, error) {
	const op = "PriceUseCase.RegisterComponent"

	// Валидация данных
	category, err := u.validateComponent(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	name := strings.TrimSpace(req.Name)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, u.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Идемпотентный upsert записи каталога
	upsertRes, err := u.componentRepo.Upsert(ctx, domain.NewComponent(category, name, req.Attributes, req.BasePrice))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Ничего не поменялось — событие не нужно
	if upsertRes.NoChanges {
		if err = tx.Commit(ctx); err != nil {
			return nil, e.Wrap(op, err)
		}
		return nil, nil
	}

	event, err := u.createOutboxEvent(ctx, upsertRes.Component)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Коммит изменений в бд
	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Удаление из кэша устаревшей записи
	if err := u.cacheRepo.DeleteComponent(ctx, category, name); err != nil {
		u.logger.Warnf("Failed to invalidate component cache: %v", e.Wrap(op, err))
	}

	return event, nil
}

// createOutboxEvent формирует событие изменения каталога и кладет его в outbox.
func (u *PriceUseCase) createOutboxEvent(ctx context.Context, component *domain.Component) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	payload, err := json.Marshal(CatalogChangeEvent{
		EventID:     eventID,
		OccurredAt:  time.Now().UnixNano(),
		ComponentID: component.ID,
		Category:    component.Category.String(),
		Name:        component.Name,
		BasePrice:   component.BasePrice,
		Attributes:  component.Attributes,
	})
	if err != nil {
		return nil, err
	}

	return u.outboxRepo.Create(ctx, NewOutboxEvent(eventID, ComponentUpserted, component.ID, payload))
}

// validateComponent проверяет корректность входных данных запроса на регистрацию.
func (u *PriceUseCase) validateComponent(req *RegisterComponentReq) (domain.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", e.ErrComponentNameRequired
	}

	if req.BasePrice <= 0 {
		return "", e.ErrBasePriceMustBePositive
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return "", err
	}

	// Неполная спецификация в запросе — ошибка клиента, а не порча каталога
	if err := u.engine.ValidateSpec(category, req.Attributes); err != nil {
		return "", e.Wrap(err.Error(), e.ErrMissingFields)
	}

	return category, nil
}
