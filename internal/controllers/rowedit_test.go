package controllers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bar-inventory/internal/entities"
	apperrors "bar-inventory/pkg/errors"
	"bar-inventory/pkg/eventbus"
)

type fakeProductUpdater struct {
	updated   entities.Product
	updateErr error
	lastID    int64
	lastDraft entities.Product
	calls     int
}

func (f *fakeProductUpdater) Update(ctx context.Context, id int64, draft entities.Product) (entities.Product, error) {
	f.calls++
	f.lastID = id
	f.lastDraft = draft
	if f.updateErr != nil {
		return entities.Product{}, f.updateErr
	}
	return f.updated, nil
}

func newEditFixture(t *testing.T, updater *fakeProductUpdater, strategy Strategy) (*ListController[entities.Product], *RowEditController[entities.Product], *fakeProductResource) {
	t.Helper()
	res := &fakeProductResource{items: testProducts()}
	list := newProductList(t, res)
	list.Refresh(context.Background())
	edit := NewRowEditController[entities.Product](updater, list, strategy, zap.NewNop(), eventbus.New(zap.NewNop()))
	return list, edit, res
}

func TestRowEditController_BeginEdit(t *testing.T) {
	list, edit, _ := newEditFixture(t, &fakeProductUpdater{}, RefetchAfterSave)

	gin, ok := list.Find(1)
	require.True(t, ok)
	edit.BeginEdit(gin)

	id, editing := edit.EditingID()
	require.True(t, editing)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "Gin", edit.Draft().Name)
}

func TestRowEditController_BeginEdit_DiscardsPreviousDraft(t *testing.T) {
	list, edit, _ := newEditFixture(t, &fakeProductUpdater{}, RefetchAfterSave)

	gin, _ := list.Find(1)
	edit.BeginEdit(gin)
	require.NoError(t, edit.ChangeField("stock_quantity", "12"))

	// Правка другой строки молча выбрасывает несохранённый черновик.
	vodka, _ := list.Find(3)
	edit.BeginEdit(vodka)

	id, editing := edit.EditingID()
	require.True(t, editing)
	assert.Equal(t, int64(3), id)
	assert.Equal(t, "Vodka", edit.Draft().Name)
	assert.Equal(t, 12, edit.Draft().StockQuantity)

	ginAgain, _ := list.Find(1)
	assert.Equal(t, 5, ginAgain.StockQuantity)
}

func TestRowEditController_ChangeField(t *testing.T) {
	list, edit, _ := newEditFixture(t, &fakeProductUpdater{}, RefetchAfterSave)

	t.Run("without active row", func(t *testing.T) {
		err := edit.ChangeField("stock_quantity", "12")
		assert.ErrorIs(t, err, apperrors.ErrNoRowInEdit)
	})

	t.Run("merges into draft only", func(t *testing.T) {
		gin, _ := list.Find(1)
		edit.BeginEdit(gin)

		require.NoError(t, edit.ChangeField("stock_quantity", "12"))
		assert.Equal(t, 12, edit.Draft().StockQuantity)

		// Коллекция не тронута, пока черновик не сохранён.
		server, _ := list.Find(1)
		assert.Equal(t, 5, server.StockQuantity)
	})
}

func TestRowEditController_Cancel(t *testing.T) {
	list, edit, _ := newEditFixture(t, &fakeProductUpdater{}, RefetchAfterSave)

	gin, _ := list.Find(1)
	edit.BeginEdit(gin)
	require.NoError(t, edit.ChangeField("stock_quantity", "12"))

	edit.Cancel()

	_, editing := edit.EditingID()
	assert.False(t, editing)

	server, _ := list.Find(1)
	assert.Equal(t, 5, server.StockQuantity)
}

func TestRowEditController_Save_RefetchAfterSave(t *testing.T) {
	updater := &fakeProductUpdater{updated: entities.Product{ID: 1, Name: "Gin", StockQuantity: 12}}
	list, edit, res := newEditFixture(t, updater, RefetchAfterSave)
	listCallsBefore := res.listCalls

	// Свежий ответ сервера, который перечитывание должно принести.
	res.items[0].StockQuantity = 12

	gin, _ := list.Find(1)
	edit.BeginEdit(gin)
	require.NoError(t, edit.ChangeField("stock_quantity", "12"))

	require.NoError(t, edit.Save(context.Background()))

	assert.Equal(t, int64(1), updater.lastID)
	assert.Equal(t, 12, updater.lastDraft.StockQuantity)
	assert.Equal(t, listCallsBefore+1, res.listCalls, "после сохранения список перечитывается")

	_, editing := edit.EditingID()
	assert.False(t, editing)

	server, _ := list.Find(1)
	assert.Equal(t, 12, server.StockQuantity)
}

func TestRowEditController_Save_OptimisticMerge(t *testing.T) {
	updater := &fakeProductUpdater{updated: entities.Product{ID: 1, Name: "Gin", StockQuantity: 12}}
	list, edit, res := newEditFixture(t, updater, OptimisticMerge)
	listCallsBefore := res.listCalls

	gin, _ := list.Find(1)
	edit.BeginEdit(gin)
	require.NoError(t, edit.ChangeField("stock_quantity", "12"))

	require.NoError(t, edit.Save(context.Background()))

	assert.Equal(t, listCallsBefore, res.listCalls, "слияние не перечитывает список")
	server, _ := list.Find(1)
	assert.Equal(t, 12, server.StockQuantity)
}

func TestRowEditController_Save_ErrorStaysEditing(t *testing.T) {
	updater := &fakeProductUpdater{updateErr: errors.New("500")}
	list, edit, _ := newEditFixture(t, updater, RefetchAfterSave)

	gin, _ := list.Find(1)
	edit.BeginEdit(gin)
	require.NoError(t, edit.ChangeField("stock_quantity", "12"))

	err := edit.Save(context.Background())
	require.Error(t, err)

	// Строка осталась в правке, черновик цел, коллекция не тронута.
	id, editing := edit.EditingID()
	require.True(t, editing)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, 12, edit.Draft().StockQuantity)

	server, _ := list.Find(1)
	assert.Equal(t, 5, server.StockQuantity)

	// Повторный Save после устранения причины проходит.
	updater.updateErr = nil
	updater.updated = entities.Product{ID: 1, Name: "Gin", StockQuantity: 12}
	require.NoError(t, edit.Save(context.Background()))
	_, editing = edit.EditingID()
	assert.False(t, editing)
}

func TestRowEditController_Save_WithoutActiveRow(t *testing.T) {
	_, edit, _ := newEditFixture(t, &fakeProductUpdater{}, RefetchAfterSave)

	err := edit.Save(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNoRowInEdit)
}
