package errors

import "fmt"

var (
	// Сессия и токены
	ErrInvalidToken       = fmt.Errorf("недопустимый токен")
	ErrTokenExpired       = fmt.Errorf("срок действия токена истёк")
	ErrInvalidCredentials = fmt.Errorf("неверные учётные данные")
	ErrNotLoggedIn        = fmt.Errorf("вход не выполнен")
	ErrForbidden          = fmt.Errorf("доступ запрещён")

	// Контроллеры
	ErrNoRowInEdit  = fmt.Errorf("ни одна строка не находится в режиме редактирования")
	ErrFormClosed   = fmt.Errorf("форма создания закрыта")
	ErrUnknownField = fmt.Errorf("неизвестное поле")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")
)

// ApiError — единая форма ошибки бэкенда: сетевой сбой, не-2xx статус
// или поле "error" в успешном на вид ответе. Клиент различает их только
// в логах, но не в поведении.
type ApiError struct {
	Status  int    // HTTP-статус, 0 если до ответа не дошло
	Message string // сообщение для пользователя (от сервера или общее)
	Err     error  // техническая причина
}

func (e *ApiError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: статус %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s", e.Message)
}

func (e *ApiError) Unwrap() error { return e.Err }

func NewApiError(status int, message string, err error) *ApiError {
	return &ApiError{Status: status, Message: message, Err: err}
}

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
