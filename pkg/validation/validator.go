package validation

import (
	"github.com/go-playground/validator/v10"
)

// New создает и настраивает валидатор для черновиков форм.
// Правила в тегах DTO повторяют ограничения полей ввода
// (required, min, gt) — другой клиентской валидации нет.
func New() *validator.Validate {
	v := validator.New()
	registerNullTypes(v)
	return v
}
