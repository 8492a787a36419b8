package controllers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"bar-inventory/internal/entities"
	"bar-inventory/internal/events"
	"bar-inventory/pkg/eventbus"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortKey сравнивает две сущности по одному полю.
type SortKey[E any] func(a, b E) int

// StringKey — регистронезависимое сравнение строкового поля.
func StringKey[E any](field func(E) string) SortKey[E] {
	return func(a, b E) int {
		return strings.Compare(strings.ToLower(field(a)), strings.ToLower(field(b)))
	}
}

// NumberKey — числовое сравнение.
func NumberKey[E any](field func(E) float64) SortKey[E] {
	return func(a, b E) int {
		switch {
		case field(a) < field(b):
			return -1
		case field(a) > field(b):
			return 1
		default:
			return 0
		}
	}
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}

// DateKey сравнивает строковые даты как моменты времени; то, что не
// разобралось, падает в начало.
func DateKey[E any](field func(E) string) SortKey[E] {
	parse := func(s string) int64 {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UnixNano()
			}
		}
		return 0
	}
	return func(a, b E) int {
		ta, tb := parse(field(a)), parse(field(b))
		switch {
		case ta < tb:
			return -1
		case ta > tb:
			return 1
		default:
			return 0
		}
	}
}

// ListController держит коллекцию одного ресурса: последний успешно
// полученный список, флаг загрузки и строку поиска. Фильтрация и
// сортировка считаются на стороне отображения, без перезапросов.
type ListController[E entities.Identifiable] struct {
	resource   Lister[E]
	deleter    Deleter
	searchText func(E) string
	logger     *zap.Logger
	bus        *eventbus.Bus

	items     []E
	loading   bool
	query     string
	sortField string
	sortDir   SortDirection
	sortKeys  map[string]SortKey[E]
}

// NewListController собирает контроллер списка. searchText возвращает
// склейку полей, по которым ищет страница; deleter может быть nil для
// ресурсов без удаления (продажи, уведомления).
func NewListController[E entities.Identifiable](
	resource Lister[E],
	deleter Deleter,
	searchText func(E) string,
	logger *zap.Logger,
	bus *eventbus.Bus,
) *ListController[E] {
	return &ListController[E]{
		resource:   resource,
		deleter:    deleter,
		searchText: searchText,
		logger:     logger,
		bus:        bus,
		sortKeys:   make(map[string]SortKey[E]),
	}
}

// RegisterSortKey объявляет поле доступным для сортировки.
func (l *ListController[E]) RegisterSortKey(field string, key SortKey[E]) {
	l.sortKeys[field] = key
}

// Refresh заменяет коллекцию целиком ответом сервера. Неудача оставляет
// прежние элементы и только пишется в лог — видимого состояния ошибки
// у списка нет, как и у исходных страниц.
func (l *ListController[E]) Refresh(ctx context.Context) {
	l.loading = true
	items, err := l.resource.List(ctx)
	if err != nil {
		l.logger.Error("Refresh: ошибка получения списка", zap.Error(err))
		l.loading = false
		return
	}
	l.items = items
	l.loading = false
}

func (l *ListController[E]) IsLoading() bool { return l.loading }

func (l *ListController[E]) Items() []E { return l.items }

// SetQuery меняет строку поиска; перезапроса не происходит.
func (l *ListController[E]) SetQuery(q string) { l.query = q }

func (l *ListController[E]) Query() string { return l.query }

// SetSort выбирает поле и направление сортировки. Неизвестное поле
// сбрасывает сортировку.
func (l *ListController[E]) SetSort(field string, dir SortDirection) {
	if _, ok := l.sortKeys[field]; !ok {
		l.sortField = ""
		return
	}
	l.sortField = field
	l.sortDir = dir
}

// Visible отдаёт свежесобранный срез: элементы, чьи поисковые поля
// содержат запрос без учёта регистра, в порядке сервера либо по
// выбранной сортировке. Сортировка стабильная — равные значения
// сохраняют исходный относительный порядок.
func (l *ListController[E]) Visible() []E {
	query := strings.ToLower(l.query)
	visible := make([]E, 0, len(l.items))
	for _, item := range l.items {
		if query == "" || strings.Contains(strings.ToLower(l.searchText(item)), query) {
			visible = append(visible, item)
		}
	}

	if key, ok := l.sortKeys[l.sortField]; ok && l.sortField != "" {
		desc := l.sortDir == SortDesc
		sort.SliceStable(visible, func(i, j int) bool {
			cmp := key(visible[i], visible[j])
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	return visible
}

// Find возвращает элемент по первичному ключу.
func (l *ListController[E]) Find(id int64) (E, bool) {
	for _, item := range l.items {
		if item.PrimaryKey() == id {
			return item, true
		}
	}
	var zero E
	return zero, false
}

// ReplaceItem подменяет элемент на месте — путь оптимистичного слияния
// после сохранения строки.
func (l *ListController[E]) ReplaceItem(id int64, updated E) {
	for i, item := range l.items {
		if item.PrimaryKey() == id {
			l.items[i] = updated
			return
		}
	}
}

// Delete удаляет запись на сервере и сразу убирает её из коллекции.
// Предусловие: слой отображения уже получил явное подтверждение
// пользователя — сюда приходят только подтверждённые удаления.
func (l *ListController[E]) Delete(ctx context.Context, id int64) error {
	if l.deleter == nil {
		return fmt.Errorf("ресурс не поддерживает удаление")
	}
	if err := l.deleter.Delete(ctx, id); err != nil {
		l.logger.Error("Delete: ошибка удаления записи", zap.Int64("id", id), zap.Error(err))
		l.bus.Publish(ctx, events.NewToast(events.ToastError, "Не удалось удалить запись. Попробуйте ещё раз."))
		return err
	}

	kept := l.items[:0]
	for _, item := range l.items {
		if item.PrimaryKey() != id {
			kept = append(kept, item)
		}
	}
	l.items = kept

	l.bus.Publish(ctx, events.NewToast(events.ToastSuccess, "Запись удалена."))
	return nil
}
