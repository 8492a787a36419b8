package controllers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bar-inventory/internal/dto"
	"bar-inventory/internal/entities"
	apperrors "bar-inventory/pkg/errors"
	"bar-inventory/pkg/eventbus"
	"bar-inventory/pkg/validation"
)

type fakeProductCreator struct {
	created   entities.Product
	createErr error
	lastDraft dto.CreateProductDTO
	calls     int
}

func (f *fakeProductCreator) Create(ctx context.Context, draft dto.CreateProductDTO) (entities.Product, error) {
	f.calls++
	f.lastDraft = draft
	if f.createErr != nil {
		return entities.Product{}, f.createErr
	}
	return f.created, nil
}

func newFormFixture(t *testing.T, creator *fakeProductCreator) (*ListController[entities.Product], *CreateFormController[entities.Product, dto.CreateProductDTO], *fakeProductResource) {
	t.Helper()
	res := &fakeProductResource{items: testProducts()}
	list := newProductList(t, res)
	list.Refresh(context.Background())
	form := NewCreateFormController[entities.Product, dto.CreateProductDTO](
		creator, list, validation.New(), zap.NewNop(), eventbus.New(zap.NewNop()))
	return list, form, res
}

func fillValidDraft(t *testing.T, form *CreateFormController[entities.Product, dto.CreateProductDTO]) {
	t.Helper()
	require.NoError(t, form.ChangeField("name", "Vodka"))
	require.NoError(t, form.ChangeField("distributor", "Premium Spirits Co"))
	require.NoError(t, form.ChangeField("stock_quantity", "12"))
	require.NoError(t, form.ChangeField("price", "18"))
	require.NoError(t, form.ChangeField("minimum_threshold", "3"))
	require.NoError(t, form.ChangeField("cost_per_unit", "9.5"))
}

func TestCreateFormController_ChangeField_Closed(t *testing.T) {
	_, form, _ := newFormFixture(t, &fakeProductCreator{})

	err := form.ChangeField("name", "Vodka")
	assert.ErrorIs(t, err, apperrors.ErrFormClosed)
}

func TestCreateFormController_OpenAndClose(t *testing.T) {
	_, form, _ := newFormFixture(t, &fakeProductCreator{})

	form.Open()
	require.True(t, form.IsOpen())
	require.NoError(t, form.ChangeField("name", "Vodka"))

	form.Close()
	assert.False(t, form.IsOpen())

	// Повторное открытие даёт чистый черновик.
	form.Open()
	assert.Empty(t, form.Draft().Name)
}

func TestCreateFormController_Submit(t *testing.T) {
	t.Run("success closes form and refreshes", func(t *testing.T) {
		creator := &fakeProductCreator{created: entities.Product{ID: 5, Name: "Vodka"}}
		_, form, res := newFormFixture(t, creator)
		listCallsBefore := res.listCalls

		form.Open()
		fillValidDraft(t, form)
		require.NoError(t, form.Submit(context.Background()))

		assert.Equal(t, "Vodka", creator.lastDraft.Name)
		assert.False(t, form.IsOpen())
		assert.Equal(t, listCallsBefore+1, res.listCalls)
	})

	t.Run("validation failure keeps draft", func(t *testing.T) {
		creator := &fakeProductCreator{}
		_, form, _ := newFormFixture(t, creator)

		form.Open()
		require.NoError(t, form.ChangeField("name", "Vodka"))
		// Обязательные числовые поля не заполнены.
		err := form.Submit(context.Background())
		require.Error(t, err)

		assert.Zero(t, creator.calls, "до сервера дойти не должно")
		assert.True(t, form.IsOpen())
		assert.Equal(t, "Vodka", form.Draft().Name)
	})

	t.Run("server failure keeps draft", func(t *testing.T) {
		creator := &fakeProductCreator{createErr: errors.New("500")}
		_, form, _ := newFormFixture(t, creator)

		form.Open()
		fillValidDraft(t, form)
		err := form.Submit(context.Background())
		require.Error(t, err)

		assert.True(t, form.IsOpen())
		assert.Equal(t, "Vodka", form.Draft().Name)

		// После устранения причины повторная отправка проходит.
		creator.createErr = nil
		creator.created = entities.Product{ID: 5, Name: "Vodka"}
		require.NoError(t, form.Submit(context.Background()))
		assert.False(t, form.IsOpen())
	})

	t.Run("closed form", func(t *testing.T) {
		_, form, _ := newFormFixture(t, &fakeProductCreator{})
		err := form.Submit(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrFormClosed)
	})
}
