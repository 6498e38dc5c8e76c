package usecase

import "context"

// Transactor выполняет функцию внутри транзакции хранилища,
// помещая транзакцию в контекст для репозиториев.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ImageLinker превращает ключи объектов S3 в подписанные ссылки на чтение.
type ImageLinker interface {
	Links(ctx context.Context, keys []string) []string
}

// EventProducer публикует события изменения корзины.
type EventProducer interface {
	WriteCartEvent(ctx context.Context, req *CartEventReq) error
}
