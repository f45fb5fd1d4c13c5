package idempotency

import "errors"

var (
	// ErrStoreRead возвращается при ошибке чтения из Redis
	ErrStoreRead = errors.New("idempotency.store: failed to read")

	// ErrStoreWrite возвращается при ошибке записи в Redis
	ErrStoreWrite = errors.New("idempotency.store: failed to write")

	// ErrEncode возвращается, если сохраненный ответ не удалось (де)сериализовать
	ErrEncode = errors.New("idempotency.store: failed to encode value")
)
