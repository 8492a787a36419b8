package controllers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"bar-inventory/internal/entities"
	"bar-inventory/internal/events"
	apperrors "bar-inventory/pkg/errors"
	"bar-inventory/pkg/eventbus"
)

// CreateFormController держит черновик новой записи. Он независим от
// построчного редактирования: обе формы могут быть открыты одновременно.
type CreateFormController[E entities.Identifiable, C any] struct {
	resource Creator[E, C]
	list     *ListController[E]
	validate *validator.Validate
	logger   *zap.Logger
	bus      *eventbus.Bus

	open  bool
	draft C
}

func NewCreateFormController[E entities.Identifiable, C any](
	resource Creator[E, C],
	list *ListController[E],
	validate *validator.Validate,
	logger *zap.Logger,
	bus *eventbus.Bus,
) *CreateFormController[E, C] {
	return &CreateFormController[E, C]{
		resource: resource,
		list:     list,
		validate: validate,
		logger:   logger,
		bus:      bus,
	}
}

func (f *CreateFormController[E, C]) Open() { f.open = true }

// Close закрывает форму и очищает черновик.
func (f *CreateFormController[E, C]) Close() {
	f.open = false
	var zero C
	f.draft = zero
}

func (f *CreateFormController[E, C]) IsOpen() bool { return f.open }

func (f *CreateFormController[E, C]) Draft() *C { return &f.draft }

// ChangeField сливает значение поля ввода в черновик новой записи.
func (f *CreateFormController[E, C]) ChangeField(name, value string) error {
	if !f.open {
		return apperrors.ErrFormClosed
	}
	return SetField(&f.draft, name, value)
}

// Submit прогоняет черновик через валидатор (те же ограничения, что
// стояли на полях ввода) и отправляет POST. Неудача любого рода оставляет
// форму открытой с нетронутым черновиком.
func (f *CreateFormController[E, C]) Submit(ctx context.Context) error {
	if !f.open {
		return apperrors.ErrFormClosed
	}

	if err := f.validate.Struct(f.draft); err != nil {
		f.logger.Warn("Submit: черновик не прошёл проверку полей", zap.Error(err))
		f.bus.Publish(ctx, events.NewToast(events.ToastError, "Заполните обязательные поля формы."))
		return err
	}

	created, err := f.resource.Create(ctx, f.draft)
	if err != nil {
		f.logger.Error("Submit: ошибка создания записи", zap.Error(err))
		f.bus.Publish(ctx, events.NewToast(events.ToastError, "Не удалось создать запись. Попробуйте ещё раз."))
		return err
	}

	f.Close()
	f.list.Refresh(ctx)
	f.logger.Debug("Submit: запись создана", zap.Int64("id", created.PrimaryKey()))
	f.bus.Publish(ctx, events.NewToast(events.ToastSuccess, "Запись создана."))
	return nil
}
