package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"bar-inventory/internal/dto"
	"bar-inventory/internal/entities"
)

// Конструкторы ресурсных клиентов. Таблица эндпоинтов бэкенда —
// единственное место, где пути и ключи записаны явно.

func Products(c *Client, logger *zap.Logger) *Resource[entities.Product, dto.CreateProductDTO] {
	return NewResource[entities.Product, dto.CreateProductDTO](c, Endpoints{
		List:   "/inventory/product-inventory",
		Create: "/inventory/product-inventory",
		Update: "/inventory/product-inventory",
		Delete: "/inventory/product-inventory",
		IDKey:  "product_id",
	}, logger.Named("products"))
}

func Equipment(c *Client, logger *zap.Logger) *Resource[entities.Equipment, dto.CreateEquipmentDTO] {
	return NewResource[entities.Equipment, dto.CreateEquipmentDTO](c, Endpoints{
		List:   "/inventory/equipment",
		Create: "/inventory/equipment",
		Update: "/inventory/equipment",
		Delete: "/inventory/equipment",
		IDKey:  "equipment_id",
	}, logger.Named("equipment"))
}

func Distributors(c *Client, logger *zap.Logger) *Resource[entities.Distributor, dto.CreateDistributorDTO] {
	return NewResource[entities.Distributor, dto.CreateDistributorDTO](c, Endpoints{
		List:   "/inventory/distributors",
		Create: "/inventory/distributors",
		Update: "/inventory/distributors",
		Delete: "/inventory/distributors",
		IDKey:  "distributor_id",
	}, logger.Named("distributors"))
}

func Reservations(c *Client, logger *zap.Logger) *Resource[entities.Reservation, dto.CreateReservationDTO] {
	return NewResource[entities.Reservation, dto.CreateReservationDTO](c, Endpoints{
		List:   "/inventory/reservations",
		Create: "/inventory/reservations",
		Update: "/inventory/reservations",
		Delete: "/inventory/reservations",
		IDKey:  "reservation_id",
	}, logger.Named("reservations"))
}

// WasteLog адресует записи суффиксом пути, а не ключом в теле.
func WasteLog(c *Client, logger *zap.Logger) *Resource[entities.WasteLogEntry, dto.CreateWasteLogDTO] {
	return NewResource[entities.WasteLogEntry, dto.CreateWasteLogDTO](c, Endpoints{
		List:   "/inventory/view-waste-log/",
		Create: "/inventory/add-waste-log-entry/",
		Update: "/inventory/update-waste-log-entry/",
		Delete: "/inventory/delete-waste-log-entry/",
	}, logger.Named("waste_log"))
}

// Notifications и MenuItems — ресурсы только для чтения.

func Notifications(c *Client, logger *zap.Logger) *Resource[entities.Notification, struct{}] {
	return NewResource[entities.Notification, struct{}](c, Endpoints{
		List: "/inventory/notifications",
	}, logger.Named("notifications"))
}

func MenuItems(c *Client, logger *zap.Logger) *Resource[entities.MenuItem, struct{}] {
	return NewResource[entities.MenuItem, struct{}](c, Endpoints{
		List: "/inventory/items",
	}, logger.Named("menu_items"))
}

// SalesClient - клиент продаж: список читается как у остальных,
// а создание уходит multipart-формой и отвечает конвертом {message}.
type SalesClient struct {
	list   *Resource[entities.SalesTransaction, struct{}]
	client *Client
	logger *zap.Logger
}

func Sales(c *Client, logger *zap.Logger) *SalesClient {
	salesLogger := logger.Named("sales")
	return &SalesClient{
		list: NewResource[entities.SalesTransaction, struct{}](c, Endpoints{
			List: "/inventory/sales-transaction",
		}, salesLogger),
		client: c,
		logger: salesLogger,
	}
}

func (s *SalesClient) List(ctx context.Context) ([]entities.SalesTransaction, error) {
	return s.list.List(ctx)
}

// CreateTransaction возвращает сообщение сервера — страница показывала
// именно его.
func (s *SalesClient) CreateTransaction(ctx context.Context, draft dto.CreateSalesTransactionDTO) (string, error) {
	raw, err := s.client.doForm(ctx, "/inventory/sales-transaction", map[string]string{
		"menu_item_id":     strconv.FormatInt(draft.MenuItemID, 10),
		"quantity":         strconv.Itoa(draft.Quantity),
		"transaction_date": draft.TransactionDate,
	})
	if err != nil {
		return "", fmt.Errorf("ошибка создания продажи: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", fmt.Errorf("ошибка парсинга ответа о продаже: %w", err)
	}
	return env.Message, nil
}
