package minio

import (
	"context"

	"github.com/DRSN-tech/shop-backend/internal/cfg"
	"github.com/DRSN-tech/shop-backend/internal/usecase"
	"github.com/DRSN-tech/shop-backend/pkg/e"
	"github.com/DRSN-tech/shop-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

// ImageLinks подписывает ссылки на изображения в момент чтения.
// Ссылки живут cfg.LinkTTL и никогда не кэшируются.
type ImageLinks struct {
	imageRepo usecase.ImageRepository
	cfg       *cfg.MinIOCfg
	logger    logger.Logger
}

func NewImageLinks(imageRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger) *ImageLinks {
	return &ImageLinks{
		imageRepo: imageRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// Links возвращает подписанные ссылки для ключей объектов в исходном порядке.
// Ключ, который не удалось подписать, пропускается с предупреждением:
// отсутствие картинки не должно ломать чтение корзины или каталога.
func (m *ImageLinks) Links(ctx context.Context, keys []string) []string {
	if len(keys) == 0 {
		return nil
	}

	links := make([]string, 0, len(keys))
	for _, key := range keys {
		link, err := m.imageRepo.PresignedGet(ctx, key, m.cfg.LinkTTL)
		if err != nil {
			m.logger.Warnf("Failed to presign image link, key=%s: %v", key, e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		links = append(links, link)
	}

	return links
}
