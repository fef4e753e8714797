package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/pricing-backend/internal/cfg"
	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/pricing-backend/pkg/clients"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/DRSN-tech/pricing-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

type CacheRepo struct {
	client *clients.RedisClient
	conv   *converter.ComponentConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv *converter.ComponentConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetComponent возвращает закэшированную запись каталога.
// Промах кэша — (nil, nil): вызывающая сторона уходит в БД.
func (c *CacheRepo) GetComponent(ctx context.Context, category domain.Category, name string) (*domain.Component, error) {
	key := c.componentKey(category, name)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil // cache miss
		}

		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := c.unmarshalComponentFromCache(data)
	if err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, nil // считаем промахом, запись перезапишется из БД
	}

	// Запись под чужим ключом свидетельствует о порче кэша — удаляем и идем в БД
	if model.Category != category.String() || model.Name != name {
		c.logger.Warnf("Cache key mismatch: key: %s, model: %s/%s", key, model.Category, model.Name)
		if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil // cache miss
	}

	return c.conv.ToEntity(model), nil
}

// SetComponent кэширует запись каталога с заданным TTL.
func (c *CacheRepo) SetComponent(ctx context.Context, component *domain.Component) error {
	model := c.conv.ToRedisModel(component)

	data, err := c.marshalComponentForCache(model)
	if err != nil {
		c.logger.Warnf("Failed to marshal component for caching (%s/%s): %v",
			model.Category, model.Name, e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	key := c.componentKey(component.Category, component.Name)
	if err := c.client.Client.Set(ctx, key, data, c.cfg.ComponentTTL).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteComponent удаляет запись каталога из кэша.
func (c *CacheRepo) DeleteComponent(ctx context.Context, category domain.Category, name string) error {
	key := c.componentKey(category, name)

	if err := c.client.Client.Del(ctx, key).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// marshalComponentForCache сериализует запись каталога в JSON для кэша
func (c *CacheRepo) marshalComponentForCache(model *converter.ComponentRedisModel) ([]byte, error) {
	return json.Marshal(model)
}

// unmarshalComponentFromCache десериализует JSON из кэша в модель записи каталога
func (c *CacheRepo) unmarshalComponentFromCache(data []byte) (*converter.ComponentRedisModel, error) {
	var model converter.ComponentRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return &model, nil
}

// componentKey возвращает Redis-ключ записи каталога
func (c *CacheRepo) componentKey(category domain.Category, name string) string {
	return fmt.Sprintf("component:%s:%s", category, name)
}
