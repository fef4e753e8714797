package minio

import (
	"context"
	"io"

	"github.com/DRSN-tech/pricing-backend/internal/cfg"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// CatalogRepo читает посевной файл каталога из MinIO.
type CatalogRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewCatalogRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *CatalogRepo {
	return &CatalogRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Fetch возвращает содержимое объекта каталога.
// Отсутствие объекта не считается ошибкой: возвращается (nil, nil).
func (c *CatalogRepo) Fetch(ctx context.Context) ([]byte, error) {
	obj, err := c.mc.GetObject(ctx, c.cfg.BucketName, c.cfg.CatalogObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// GetObject ленивый: NoSuchKey всплывает только при чтении
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}
