package session

import (
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"

	apperrors "bar-inventory/pkg/errors"
)

// Claims — полезная нагрузка токена, который выдаёт бэкенд при входе.
// Признак менеджера едет внутри токена, а не живёт флагом на странице.
type Claims struct {
	Username string `json:"username"`
	Manager  bool   `json:"is_manager"`
	jwt.RegisteredClaims
}

// Session - единственный источник прав для слоя отображения.
// Заполняется при входе, очищается при выходе.
type Session struct {
	Username string
	Manager  bool
	Token    string
}

// FromToken разбирает claims токена без проверки подписи: секрет знает
// только бэкенд, клиент доверяет токену ровно настолько, насколько
// доверяет ответу на вход.
func FromToken(token string) (*Session, error) {
	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	if claims.Username == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return &Session{
		Username: claims.Username,
		Manager:  claims.Manager,
		Token:    token,
	}, nil
}
