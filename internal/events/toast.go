package events

import (
	"github.com/google/uuid"
)

const ToastEventName = "ui.toast"

type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
)

// ToastEvent — неблокирующая замена alert(): контроллеры публикуют
// исход операции, слой отображения решает, как его показать.
type ToastEvent struct {
	ID      string
	Level   ToastLevel
	Message string
}

func (e ToastEvent) Name() string { return ToastEventName }

func NewToast(level ToastLevel, message string) ToastEvent {
	return ToastEvent{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
	}
}
