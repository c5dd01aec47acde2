package cache

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации значения в JSON
	ErrEncode = errors.New("cache: failed to encode value")

	// ErrUnknownMutation возвращается для мутации без правила инвалидации
	ErrUnknownMutation = errors.New("cache: unknown mutation kind")
)
