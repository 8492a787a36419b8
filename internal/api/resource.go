package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"bar-inventory/internal/entities"
)

// Endpoints описывает пути одного ресурса. Бэкенд знает два стиля
// адресации записи: через ключ в теле (IDKey != "", products/equipment/
// distributors/reservations) и через суффикс пути (waste log).
type Endpoints struct {
	List   string
	Create string
	Update string
	Delete string

	// Имя ключа первичного идентификатора в теле PUT/DELETE,
	// например "equipment_id". Пусто — id добавляется к пути.
	IDKey string
}

// Resource - обобщённый клиент одного ресурса.
// E — сущность на проводе, C — черновик формы создания.
// Черновик редактирования — полная копия E, как в формах страниц.
type Resource[E entities.Identifiable, C any] struct {
	client *Client
	ep     Endpoints
	logger *zap.Logger
}

func NewResource[E entities.Identifiable, C any](client *Client, ep Endpoints, logger *zap.Logger) *Resource[E, C] {
	return &Resource[E, C]{
		client: client,
		ep:     ep,
		logger: logger,
	}
}

func (r *Resource[E, C]) List(ctx context.Context) ([]E, error) {
	raw, err := r.client.doJSON(ctx, http.MethodGet, r.ep.List, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка %s: %w", r.ep.List, err)
	}

	var items []E
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("ошибка парсинга списка %s: %w", r.ep.List, err)
	}
	r.logger.Debug("Список получен",
		zap.String("endpoint", r.ep.List),
		zap.Int("count", len(items)),
	)
	return items, nil
}

func (r *Resource[E, C]) Create(ctx context.Context, draft C) (E, error) {
	var created E
	raw, err := r.client.doJSON(ctx, http.MethodPost, r.ep.Create, draft)
	if err != nil {
		return created, fmt.Errorf("ошибка создания записи %s: %w", r.ep.Create, err)
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		return created, fmt.Errorf("ошибка парсинга созданной записи %s: %w", r.ep.Create, err)
	}
	return created, nil
}

// Update отправляет полную копию сущности. Либо правка применяется целиком,
// либо локальное состояние остаётся нетронутым — частичного успеха нет.
func (r *Resource[E, C]) Update(ctx context.Context, id int64, draft E) (E, error) {
	var (
		raw json.RawMessage
		err error
	)

	if r.ep.IDKey != "" {
		body, bodyErr := withIDKey(draft, r.ep.IDKey, id)
		if bodyErr != nil {
			return draft, bodyErr
		}
		raw, err = r.client.doJSON(ctx, http.MethodPut, r.ep.Update, body)
	} else {
		raw, err = r.client.doJSON(ctx, http.MethodPut, r.ep.Update+strconv.FormatInt(id, 10), draft)
	}
	if err != nil {
		return draft, fmt.Errorf("ошибка обновления записи %d: %w", id, err)
	}

	// Не все варианты бэкенда возвращают обновлённую сущность;
	// тогда результатом считается отправленный черновик.
	var updated E
	if json.Unmarshal(raw, &updated) == nil && updated.PrimaryKey() != 0 {
		return updated, nil
	}
	return draft, nil
}

func (r *Resource[E, C]) Delete(ctx context.Context, id int64) error {
	var err error
	if r.ep.IDKey != "" {
		_, err = r.client.doJSON(ctx, http.MethodDelete, r.ep.Delete, map[string]int64{r.ep.IDKey: id})
	} else {
		_, err = r.client.doJSON(ctx, http.MethodDelete, r.ep.Delete+strconv.FormatInt(id, 10), nil)
	}
	if err != nil {
		return fmt.Errorf("ошибка удаления записи %d: %w", id, err)
	}
	return nil
}

// withIDKey вкладывает идентификатор в JSON-тело черновика:
// PUT /inventory/equipment с {"equipment_id": 7, ...поля}.
func withIDKey(draft interface{}, key string, id int64) (map[string]json.RawMessage, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации черновика: %w", err)
	}
	body := map[string]json.RawMessage{}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("ошибка разбора черновика: %w", err)
	}
	idRaw, _ := json.Marshal(id)
	body[key] = idRaw
	return body, nil
}
