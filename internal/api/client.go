package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "bar-inventory/pkg/errors"
)

// Client - общая транспортная часть всех ресурсных клиентов:
// один http.Client, базовый URL и bearer-токен текущей сессии.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger

	tokenMutex sync.RWMutex
	token      string
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger.Named("api_client"),
	}
}

// SetToken запоминает токен сессии; пустая строка сбрасывает его (logout).
func (c *Client) SetToken(token string) {
	c.tokenMutex.Lock()
	defer c.tokenMutex.Unlock()
	c.token = token
}

func (c *Client) currentToken() string {
	c.tokenMutex.RLock()
	defer c.tokenMutex.RUnlock()
	return c.token
}

// envelope — форма ответа, в которой бэкенд сообщает об успехе или ошибке.
// Поле "error" в формально успешном ответе тоже считается отказом.
type envelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// doJSON выполняет один запрос с JSON-телом. Без повторов и без пагинации:
// одна операция — один запрос, либо весь ответ, либо ошибка.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации тела запроса: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса %s %s: %w", method, endpoint, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, endpoint)
}

// doForm выполняет POST с multipart-формой (так уходит создание продажи).
func (c *Client) doForm(ctx context.Context, endpoint string, fields map[string]string) (json.RawMessage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("ошибка записи поля формы %q: %w", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("ошибка завершения multipart-формы: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания POST-запроса %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, endpoint)
}

func (c *Client) send(req *http.Request, endpoint string) (json.RawMessage, error) {
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Класс (a): транспортный сбой, до статуса не дошло.
		return nil, apperrors.NewApiError(0, "сервер недоступен", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewApiError(resp.StatusCode, "не удалось прочитать ответ", err)
	}

	// Класс (b): не-2xx статус. Сообщение сервера, если оно есть, важнее кода.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := resp.Status
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Error != "" {
			message = env.Error
		}
		c.logger.Warn("Запрос завершился ошибочным статусом",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return nil, apperrors.NewApiError(resp.StatusCode, message, nil)
	}

	// Класс (c): логическая ошибка в успешном на вид ответе.
	if len(raw) > 0 && raw[0] == '{' {
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Error != "" {
			return nil, apperrors.NewApiError(resp.StatusCode, env.Error, nil)
		}
	}

	return raw, nil
}
