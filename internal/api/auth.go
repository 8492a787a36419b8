package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "bar-inventory/pkg/errors"

	"bar-inventory/internal/dto"
)

// Login выполняет POST /login/ с логином и паролем. Ответ с полем
// "message" и токеном — успех, с полем "error" — отказ (его конверт
// срезается ещё в send), всё остальное — неожиданный формат.
func (c *Client) Login(ctx context.Context, username, password string) (dto.LoginResponseDTO, error) {
	var resp dto.LoginResponseDTO

	raw, err := c.doJSON(ctx, http.MethodPost, "/login/", dto.LoginDTO{
		Username: username,
		Password: password,
	})
	if err != nil {
		return resp, fmt.Errorf("ошибка входа: %w", err)
	}

	if err := json.Unmarshal(raw, &resp); err != nil {
		return resp, fmt.Errorf("ошибка парсинга ответа на вход: %w", err)
	}
	if resp.Token == "" {
		return resp, apperrors.ErrInvalidCredentials
	}
	return resp, nil
}
