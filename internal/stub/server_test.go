package stub

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bar-inventory/internal/api"
	"bar-inventory/internal/controllers"
	"bar-inventory/internal/dto"
	"bar-inventory/internal/entities"
	"bar-inventory/internal/session"
	apperrors "bar-inventory/pkg/errors"
	"bar-inventory/pkg/eventbus"
)

// newIntegration поднимает заглушку в httptest и возвращает клиент,
// уже вошедший под менеджером.
func newIntegration(t *testing.T) *api.Client {
	t.Helper()
	server := httptest.NewServer(NewServer("test-secret", zap.NewNop()).Handler())
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL, 5*time.Second, zap.NewNop())
	resp, err := client.Login(context.Background(), "manager", "manager123")
	require.NoError(t, err)
	client.SetToken(resp.Token)
	return client
}

func TestServer_Login(t *testing.T) {
	server := httptest.NewServer(NewServer("test-secret", zap.NewNop()).Handler())
	t.Cleanup(server.Close)
	client := api.NewClient(server.URL, 5*time.Second, zap.NewNop())

	t.Run("manager", func(t *testing.T) {
		resp, err := client.Login(context.Background(), "manager", "manager123")
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)

		sess, err := session.FromToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "manager", sess.Username)
		assert.True(t, sess.Manager)
	})

	t.Run("staff is not manager", func(t *testing.T) {
		resp, err := client.Login(context.Background(), "staff", "staff123")
		require.NoError(t, err)

		sess, err := session.FromToken(resp.Token)
		require.NoError(t, err)
		assert.False(t, sess.Manager)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := client.Login(context.Background(), "manager", "wrong")
		require.Error(t, err)

		var apiErr *apperrors.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.Status)
	})
}

func TestServer_ProductLifecycle(t *testing.T) {
	client := newIntegration(t)
	ctx := context.Background()
	logger := zap.NewNop()
	bus := eventbus.New(logger)

	res := api.Products(client, logger)
	list := controllers.NewListController[entities.Product](res, res, func(p entities.Product) string {
		return p.Name
	}, logger, bus)
	list.Refresh(ctx)
	require.Len(t, list.Items(), 2)

	t.Run("edit stock quantity", func(t *testing.T) {
		edit := controllers.NewRowEditController[entities.Product](res, list, controllers.RefetchAfterSave, logger, bus)

		gin, ok := list.Find(1)
		require.True(t, ok)
		require.Equal(t, 5, gin.StockQuantity)

		edit.BeginEdit(gin)
		require.NoError(t, edit.ChangeField("stock_quantity", "12"))
		require.NoError(t, edit.Save(ctx))

		saved, ok := list.Find(1)
		require.True(t, ok)
		assert.Equal(t, 12, saved.StockQuantity)
		assert.Equal(t, "Gin", saved.Name, "остальные поля не тронуты")
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, list.Delete(ctx, 2))

		list.Refresh(ctx)
		assert.Len(t, list.Items(), 1)
		_, ok := list.Find(2)
		assert.False(t, ok)
	})
}

func TestServer_CreateProduct(t *testing.T) {
	client := newIntegration(t)
	ctx := context.Background()

	res := api.Products(client, zap.NewNop())
	created, err := res.Create(ctx, createProductBody{
		Name:             "Vodka",
		Distributor:      "Cascade Spirits",
		StockQuantity:    12,
		Price:            18,
		MinimumThreshold: 4,
		CostPerUnit:      9.5,
	})
	require.NoError(t, err)
	// Идентификатор назначает сервер, следом за посевными записями.
	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, "Vodka", created.Name)

	items, err := res.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestServer_CreateProduct_ValidationRejected(t *testing.T) {
	client := newIntegration(t)

	res := api.Products(client, zap.NewNop())
	_, err := res.Create(context.Background(), createProductBody{Name: "Vodka"})
	require.Error(t, err)

	var apiErr *apperrors.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
}

func TestServer_WasteLogPathRouting(t *testing.T) {
	client := newIntegration(t)
	ctx := context.Background()

	res := api.WasteLog(client, zap.NewNop())
	items, err := res.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	t.Run("update by path suffix", func(t *testing.T) {
		draft := items[0]
		draft.QuantityWaste = 3.5
		updated, err := res.Update(ctx, draft.ID, draft)
		require.NoError(t, err)
		assert.Equal(t, 3.5, updated.QuantityWaste)
	})

	t.Run("delete by path suffix", func(t *testing.T) {
		require.NoError(t, res.Delete(ctx, items[0].ID))
		left, err := res.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, left)
	})

	t.Run("delete missing", func(t *testing.T) {
		err := res.Delete(ctx, 99)
		var apiErr *apperrors.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
	})
}

func TestServer_Sales(t *testing.T) {
	client := newIntegration(t)
	ctx := context.Background()

	sales := api.Sales(client, zap.NewNop())

	t.Run("create returns server message", func(t *testing.T) {
		message, err := sales.CreateTransaction(ctx, createSaleDraft(1, 2, "2026-08-30"))
		require.NoError(t, err)
		assert.Equal(t, "Продажа записана.", message)

		items, err := sales.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Negroni", items[0].MenuItemName)
		assert.Equal(t, 2, items[0].QuantityPurchased)
	})

	t.Run("unknown menu item", func(t *testing.T) {
		_, err := sales.CreateTransaction(ctx, createSaleDraft(42, 1, "2026-08-30"))
		var apiErr *apperrors.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
	})
}

func createSaleDraft(menuItemID int64, quantity int, date string) dto.CreateSalesTransactionDTO {
	return dto.CreateSalesTransactionDTO{
		MenuItemID:      menuItemID,
		Quantity:        quantity,
		TransactionDate: date,
	}
}

func TestServer_ReadOnlyResources(t *testing.T) {
	client := newIntegration(t)
	ctx := context.Background()

	items, err := api.MenuItems(client, zap.NewNop()).List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Negroni", items[0].Name)

	notes, err := api.Notifications(client, zap.NewNop()).List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "low_stock", notes[0].Type)
}
