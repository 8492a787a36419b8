package ui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"bar-inventory/internal/events"
	"bar-inventory/pkg/eventbus"
)

// ToastPrinter — слушатель шины: печатает тосты, не блокируя поток
// событий. Единственное оставшееся блокирующее взаимодействие — Confirmer.
type ToastPrinter struct {
	mu  sync.Mutex
	out io.Writer
}

func AttachToastPrinter(bus *eventbus.Bus, out io.Writer) *ToastPrinter {
	p := &ToastPrinter{out: out}
	bus.Subscribe(events.ToastEventName, func(ctx context.Context, event eventbus.Event) error {
		toast, ok := event.(events.ToastEvent)
		if !ok {
			return fmt.Errorf("неожиданный тип события: %T", event)
		}
		p.print(toast)
		return nil
	})
	return p
}

func (p *ToastPrinter) print(toast events.ToastEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	prefix := "OK"
	if toast.Level == events.ToastError {
		prefix = "ОШИБКА"
	}
	fmt.Fprintf(p.out, "[%s] %s\n", prefix, toast.Message)
}
