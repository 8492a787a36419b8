package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "bar-inventory/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, zap.NewNop())
}

func TestClient_Send_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(server.URL, 5*time.Second, zap.NewNop())
	server.Close()

	_, err := client.doJSON(context.Background(), http.MethodGet, "/inventory/product-inventory", nil)
	require.Error(t, err)

	var apiErr *apperrors.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "сервер недоступен", apiErr.Message)
}

func TestClient_Send_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "доступ запрещён"})
	})

	_, err := client.doJSON(context.Background(), http.MethodGet, "/inventory/distributors", nil)
	require.Error(t, err)

	var apiErr *apperrors.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "доступ запрещён", apiErr.Message)
}

func TestClient_Send_ErrorFieldInSuccessBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "позиция меню не найдена"})
	})

	_, err := client.doJSON(context.Background(), http.MethodGet, "/inventory/items", nil)
	require.Error(t, err)

	var apiErr *apperrors.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.Status)
	assert.Equal(t, "позиция меню не найдена", apiErr.Message)
}

func TestClient_Send_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{{"product_id": 1}})
	})

	raw, err := client.doJSON(context.Background(), http.MethodGet, "/inventory/product-inventory", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"product_id": 1}]`, string(raw))
}

func TestClient_Send_BearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	client.SetToken("abc123")
	_, err := client.doJSON(context.Background(), http.MethodGet, "/inventory/notifications", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)

	// Пустой токен сбрасывает заголовок.
	client.SetToken("")
	_, err = client.doJSON(context.Background(), http.MethodGet, "/inventory/notifications", nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}
