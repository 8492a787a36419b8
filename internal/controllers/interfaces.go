package controllers

import (
	"context"
)

// Контроллеры работают с ресурсным клиентом через узкие интерфейсы:
// Resource из internal/api реализует все четыре.

type Lister[E any] interface {
	List(ctx context.Context) ([]E, error)
}

type Creator[E any, C any] interface {
	Create(ctx context.Context, draft C) (E, error)
}

type Updater[E any] interface {
	Update(ctx context.Context, id int64, draft E) (E, error)
}

type Deleter interface {
	Delete(ctx context.Context, id int64) error
}
