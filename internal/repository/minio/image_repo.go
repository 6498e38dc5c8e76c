package minio

import (
	"context"
	"net/url"
	"time"

	"github.com/DRSN-tech/shop-backend/internal/cfg"
	"github.com/DRSN-tech/shop-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo выдаёт подписанные ссылки на изображения товаров в MinIO.
// Загрузку и удаление объектов выполняет внешняя админ-поверхность.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// PresignedGet возвращает временную ссылку на чтение объекта по ключу.
func (i *ImageRepo) PresignedGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	link, err := i.mc.PresignedGetObject(ctx, i.cfg.BucketName, key, expiry, url.Values{})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return link.String(), nil
}
