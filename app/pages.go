// Файл: app/pages.go
//
// Сборка страниц: на каждый ресурс — один набор обобщённых контроллеров
// и описание колонок. Это всё, что осталось от десятка почти одинаковых
// страниц исходного фронтенда.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"

	"bar-inventory/internal/api"
	"bar-inventory/internal/controllers"
	"bar-inventory/internal/dto"
	"bar-inventory/internal/entities"
	"bar-inventory/internal/session"
	"bar-inventory/internal/ui"
	"bar-inventory/pkg/eventbus"

	"go.uber.org/zap"
)

type pageDeps struct {
	client    *api.Client
	logger    *zap.Logger
	bus       *eventbus.Bus
	validate  *validator.Validate
	session   *session.Session
	confirmer ui.Confirmer
	in        *bufio.Reader
	out       *os.File
}

type pageEntry struct {
	title string
	run   func(ctx context.Context)
}

func buildPages(d pageDeps) []pageEntry {
	return []pageEntry{
		productsPage(d),
		equipmentPage(d),
		distributorsPage(d),
		reservationsPage(d),
		salesPage(d),
		wasteLogPage(d),
		notificationsPage(d),
		menuItemsPage(d),
	}
}

func productsPage(d pageDeps) pageEntry {
	res := api.Products(d.client, d.logger)
	logger := d.logger.Named("products_page")

	list := controllers.NewListController[entities.Product](res, res, func(p entities.Product) string {
		return p.Name
	}, logger, d.bus)
	list.RegisterSortKey("name", controllers.StringKey(func(p entities.Product) string { return p.Name }))
	list.RegisterSortKey("stock_quantity", controllers.NumberKey(func(p entities.Product) float64 { return float64(p.StockQuantity) }))
	list.RegisterSortKey("price", controllers.NumberKey(func(p entities.Product) float64 { return p.Price }))
	list.RegisterSortKey("expiration_date", controllers.DateKey(func(p entities.Product) string { return p.ExpirationDate.String }))

	page := &ui.Page[entities.Product, dto.CreateProductDTO]{
		Title: "Products",
		Columns: []ui.Column[entities.Product]{
			{Title: "ID", Field: "product_id", Value: func(p entities.Product) string { return itoa(p.ID) }},
			{Title: "Name", Field: "name", Value: func(p entities.Product) string { return p.Name }},
			{Title: "Distributor", Field: "distributor", Value: func(p entities.Product) string { return p.Distributor }},
			{Title: "Stock", Field: "stock_quantity", Value: func(p entities.Product) string { return strconv.Itoa(p.StockQuantity) }},
			{Title: "Price", Field: "price", Value: func(p entities.Product) string { return ftoa(p.Price) }},
			{Title: "Min Threshold", Field: "minimum_threshold", Value: func(p entities.Product) string { return strconv.Itoa(p.MinimumThreshold) }},
			{Title: "Cost/Unit", Field: "cost_per_unit", Value: func(p entities.Product) string { return ftoa(p.CostPerUnit) }},
			{Title: "Expiration Date", Field: "expiration_date", Value: func(p entities.Product) string { return orNA(p.ExpirationDate) }},
			{Title: "Unit", Field: "unit_of_measurement", Value: func(p entities.Product) string { return orNA(p.UnitOfMeasurement) }},
			{Title: "Category", Field: "category", Value: func(p entities.Product) string { return orNA(p.Category) }},
			{Title: "Brand", Field: "brand", Value: func(p entities.Product) string { return orNA(p.Brand) }},
		},
		List:           list,
		Edit:           controllers.NewRowEditController[entities.Product](res, list, controllers.RefetchAfterSave, logger, d.bus),
		Create:         controllers.NewCreateFormController[entities.Product, dto.CreateProductDTO](res, list, d.validate, logger, d.bus),
		DeleteQuestion: "Удалить этот продукт?",
		Confirmer:      d.confirmer,
		Session:        d.session,
		Logger:         logger,
		In:             d.in,
		Out:            d.out,
	}
	return pageEntry{title: page.Title, run: func(ctx context.Context) { page.Run(ctx) }}
}

func equipmentPage(d pageDeps) pageEntry {
	res := api.Equipment(d.client, d.logger)
	logger := d.logger.Named("equipment_page")

	list := controllers.NewListController[entities.Equipment](res, res, func(e entities.Equipment) string {
		return fmt.Sprintf("%s %s %s", e.Name, e.Manufacturer, e.Distributor)
	}, logger, d.bus)
	list.RegisterSortKey("equipment_name", controllers.StringKey(func(e entities.Equipment) string { return e.Name }))
	list.RegisterSortKey("next_maintenance_date", controllers.DateKey(func(e entities.Equipment) string { return e.NextMaintenanceDate.String }))

	page := &ui.Page[entities.Equipment, dto.CreateEquipmentDTO]{
		Title: "Equipment",
		Columns: []ui.Column[entities.Equipment]{
			{Title: "ID", Field: "equipment_id", Value: func(e entities.Equipment) string { return itoa(e.ID) }},
			{Title: "Name", Field: "equipment_name", Value: func(e entities.Equipment) string { return e.Name }},
			{Title: "Model", Field: "model_number", Value: func(e entities.Equipment) string { return e.ModelNumber }},
			{Title: "Manufacturer", Field: "manufacturer", Value: func(e entities.Equipment) string { return e.Manufacturer }},
			{Title: "Distributor", Field: "distributor", Value: func(e entities.Equipment) string { return e.Distributor }},
			{Title: "Warranty Status", Field: "warranty_status", Value: func(e entities.Equipment) string { return e.WarrantyStatus }},
			{Title: "Next Maintenance", Field: "next_maintenance_date", Value: func(e entities.Equipment) string { return orNA(e.NextMaintenanceDate) }},
		},
		List:           list,
		Edit:           controllers.NewRowEditController[entities.Equipment](res, list, controllers.RefetchAfterSave, logger, d.bus),
		Create:         controllers.NewCreateFormController[entities.Equipment, dto.CreateEquipmentDTO](res, list, d.validate, logger, d.bus),
		DeleteQuestion: "Удалить это оборудование?",
		Confirmer:      d.confirmer,
		Session:        d.session,
		Logger:         logger,
		In:             d.in,
		Out:            d.out,
	}
	return pageEntry{title: page.Title, run: func(ctx context.Context) { page.Run(ctx) }}
}

func distributorsPage(d pageDeps) pageEntry {
	res := api.Distributors(d.client, d.logger)
	logger := d.logger.Named("distributors_page")

	list := controllers.NewListController[entities.Distributor](res, res, func(dist entities.Distributor) string {
		return fmt.Sprintf("%s %s %s", dist.Name, dist.Address, dist.Location)
	}, logger, d.bus)
	list.RegisterSortKey("name", controllers.StringKey(func(dist entities.Distributor) string { return dist.Name }))
	list.RegisterSortKey("location", controllers.StringKey(func(dist entities.Distributor) string { return dist.Location }))

	page := &ui.Page[entities.Distributor, dto.CreateDistributorDTO]{
		Title: "Distributors",
		Columns: []ui.Column[entities.Distributor]{
			{Title: "ID", Field: "distributor_id", Value: func(dist entities.Distributor) string { return itoa(dist.ID) }},
			{Title: "Name", Field: "name", Value: func(dist entities.Distributor) string { return dist.Name }},
			{Title: "Address", Field: "address", Value: func(dist entities.Distributor) string { return dist.Address }},
			{Title: "Location", Field: "location", Value: func(dist entities.Distributor) string { return dist.Location }},
			{Title: "Contact", Field: "person_of_contact", Value: func(dist entities.Distributor) string { return dist.PersonOfContact }},
			{Title: "Phone", Field: "phone_number", Value: func(dist entities.Distributor) string { return dist.PhoneNumber }},
		},
		List:           list,
		Edit:           controllers.NewRowEditController[entities.Distributor](res, list, controllers.RefetchAfterSave, logger, d.bus),
		Create:         controllers.NewCreateFormController[entities.Distributor, dto.CreateDistributorDTO](res, list, d.validate, logger, d.bus),
		DeleteQuestion: "Удалить этого поставщика?",
		ManagerOnly:    true,
		Confirmer:      d.confirmer,
		Session:        d.session,
		Logger:         logger,
		In:             d.in,
		Out:            d.out,
	}
	return pageEntry{title: page.Title, run: func(ctx context.Context) { page.Run(ctx) }}
}

func reservationsPage(d pageDeps) pageEntry {
	res := api.Reservations(d.client, d.logger)
	logger := d.logger.Named("reservations_page")

	list := controllers.NewListController[entities.Reservation](res, res, func(r entities.Reservation) string {
		return fmt.Sprintf("%s %s", r.CustomerFirstName, r.CustomerLastName)
	}, logger, d.bus)
	list.RegisterSortKey("reservation_date", controllers.DateKey(func(r entities.Reservation) string { return r.ReservationDate }))
	list.RegisterSortKey("number_of_guests", controllers.NumberKey(func(r entities.Reservation) float64 { return float64(r.NumberOfGuests) }))

	page := &ui.Page[entities.Reservation, dto.CreateReservationDTO]{
		Title: "Reservations",
		Columns: []ui.Column[entities.Reservation]{
			{Title: "ID", Field: "reservation_id", Value: func(r entities.Reservation) string { return itoa(r.ID) }},
			{Title: "Customer", Field: "customer_first_name", Value: func(r entities.Reservation) string {
				return r.CustomerFirstName + " " + r.CustomerLastName
			}},
			{Title: "Date", Field: "reservation_date", Value: func(r entities.Reservation) string { return r.ReservationDate }},
			{Title: "Time", Field: "reservation_time", Value: func(r entities.Reservation) string { return r.ReservationTime }},
			{Title: "Guests", Field: "number_of_guests", Value: func(r entities.Reservation) string { return strconv.Itoa(r.NumberOfGuests) }},
			{Title: "Status", Field: "reservation_status", Value: func(r entities.Reservation) string { return r.ReservationStatus }},
			{Title: "Check-in", Field: "check_in_status", Value: func(r entities.Reservation) string { return r.CheckInStatus }},
			{Title: "Requests", Field: "special_requests", Value: func(r entities.Reservation) string { return orNA(r.SpecialRequests) }},
		},
		List: list,
		// Резервы — единственный ресурс с оптимистичным слиянием
		// после сохранения, как и в исходнике.
		Edit:           controllers.NewRowEditController[entities.Reservation](res, list, controllers.OptimisticMerge, logger, d.bus),
		Create:         controllers.NewCreateFormController[entities.Reservation, dto.CreateReservationDTO](res, list, d.validate, logger, d.bus),
		DeleteQuestion: "Удалить этот резерв?",
		Confirmer:      d.confirmer,
		Session:        d.session,
		Logger:         logger,
		In:             d.in,
		Out:            d.out,
	}
	return pageEntry{title: page.Title, run: func(ctx context.Context) { page.Run(ctx) }}
}

// salesCreator адаптирует клиент продаж под контракт формы создания:
// сервер на POST отвечает конвертом message, а не сущностью.
type salesCreator struct {
	client *api.SalesClient
	logger *zap.Logger
}

func (s *salesCreator) Create(ctx context.Context, draft dto.CreateSalesTransactionDTO) (entities.SalesTransaction, error) {
	message, err := s.client.CreateTransaction(ctx, draft)
	if err != nil {
		return entities.SalesTransaction{}, err
	}
	s.logger.Info("Продажа записана", zap.String("message", message))
	return entities.SalesTransaction{ID: draft.MenuItemID}, nil
}

func salesPage(d pageDeps) pageEntry {
	res := api.Sales(d.client, d.logger)
	logger := d.logger.Named("sales_page")

	list := controllers.NewListController[entities.SalesTransaction](res, nil, func(t entities.SalesTransaction) string {
		return t.MenuItemName
	}, logger, d.bus)
	list.RegisterSortKey("menu_item_name", controllers.StringKey(func(t entities.SalesTransaction) string { return t.MenuItemName }))
	list.RegisterSortKey("quantity_purchased", controllers.NumberKey(func(t entities.SalesTransaction) float64 { return float64(t.QuantityPurchased) }))
	list.RegisterSortKey("transaction_date", controllers.DateKey(func(t entities.SalesTransaction) string { return t.TransactionDate }))
	// Страница продаж по умолчанию сортировала по дате.
	list.SetSort("transaction_date", controllers.SortAsc)

	page := &ui.Page[entities.SalesTransaction, dto.CreateSalesTransactionDTO]{
		Title: "Sales",
		Columns: []ui.Column[entities.SalesTransaction]{
			{Title: "ID", Field: "sales_transaction_id", Value: func(t entities.SalesTransaction) string { return itoa(t.ID) }},
			{Title: "Item", Field: "menu_item_name", Value: func(t entities.SalesTransaction) string { return t.MenuItemName }},
			{Title: "Quantity", Field: "quantity_purchased", Value: func(t entities.SalesTransaction) string { return strconv.Itoa(t.QuantityPurchased) }},
			{Title: "Date", Field: "transaction_date", Value: func(t entities.SalesTransaction) string { return t.TransactionDate }},
		},
		List: list,
		Create: controllers.NewCreateFormController[entities.SalesTransaction, dto.CreateSalesTransactionDTO](
			&salesCreator{client: res, logger: logger}, list, d.validate, logger, d.bus),
		SubmitQuestion: "Добавить эту продажу?",
		Confirmer:      d.confirmer,
		Session:        d.session,
		Logger:         logger,
		In:             d.in,
		Out:            d.out,
	}
	return pageEntry{title: page.Title, run: func(ctx context.Context) { page.Run(ctx) }}
}

func wasteLogPage(d pageDeps) pageEntry {
	res := api.WasteLog(d.client, d.logger)
	logger := d.logger.Named("waste_log_page")

	list := controllers.NewListController[entities.WasteLogEntry](res, res, func(w entities.WasteLogEntry) string {
		return fmt.Sprintf("%s %s %s", w.Product, w.WasteType, w.User)
	}, logger, d.bus)
	list.RegisterSortKey("waste_date", controllers.DateKey(func(w entities.WasteLogEntry) string { return w.WasteDate }))
	list.RegisterSortKey("quantity_waste", controllers.NumberKey(func(w entities.WasteLogEntry) float64 { return w.QuantityWaste }))

	page := &ui.Page[entities.WasteLogEntry, dto.CreateWasteLogDTO]{
		Title: "Waste Log",
		Columns: []ui.Column[entities.WasteLogEntry]{
			{Title: "ID", Field: "waste_log_id", Value: func(w entities.WasteLogEntry) string { return itoa(w.ID) }},
			{Title: "Type", Field: "waste_type", Value: func(w entities.WasteLogEntry) string { return w.WasteType }},
			{Title: "Product", Field: "product", Value: func(w entities.WasteLogEntry) string { return w.Product }},
			{Title: "Quantity", Field: "quantity_waste", Value: func(w entities.WasteLogEntry) string { return ftoa(w.QuantityWaste) }},
			{Title: "Date", Field: "waste_date", Value: func(w entities.WasteLogEntry) string { return w.WasteDate }},
			{Title: "Reason", Field: "reason", Value: func(w entities.WasteLogEntry) string { return w.Reason }},
			{Title: "User", Field: "user", Value: func(w entities.WasteLogEntry) string { return w.User }},
		},
		List:           list,
		Edit:           controllers.NewRowEditController[entities.WasteLogEntry](res, list, controllers.RefetchAfterSave, logger, d.bus),
		Create:         controllers.NewCreateFormController[entities.WasteLogEntry, dto.CreateWasteLogDTO](res, list, d.validate, logger, d.bus),
		DeleteQuestion: "Удалить эту запись о списании?",
		ManagerOnly:    true,
		Confirmer:      d.confirmer,
		Session:        d.session,
		Logger:         logger,
		In:             d.in,
		Out:            d.out,
	}
	return pageEntry{title: page.Title, run: func(ctx context.Context) { page.Run(ctx) }}
}

func notificationsPage(d pageDeps) pageEntry {
	res := api.Notifications(d.client, d.logger)
	logger := d.logger.Named("notifications_page")

	list := controllers.NewListController[entities.Notification](res, nil, func(n entities.Notification) string {
		return n.Message
	}, logger, d.bus)
	list.RegisterSortKey("created_at", controllers.DateKey(func(n entities.Notification) string { return n.CreatedAt }))

	page := &ui.Page[entities.Notification, struct{}]{
		Title: "Notifications",
		Columns: []ui.Column[entities.Notification]{
			{Title: "ID", Field: "notification_id", Value: func(n entities.Notification) string { return itoa(n.ID) }},
			{Title: "Type", Field: "notification_type", Value: func(n entities.Notification) string { return n.Type }},
			{Title: "Message", Field: "message", Value: func(n entities.Notification) string { return n.Message }},
			{Title: "Created", Field: "created_at", Value: func(n entities.Notification) string { return n.CreatedAt }},
		},
		List:      list,
		Confirmer: d.confirmer,
		Session:   d.session,
		Logger:    logger,
		In:        d.in,
		Out:       d.out,
	}
	return pageEntry{title: page.Title, run: func(ctx context.Context) { page.Run(ctx) }}
}

func menuItemsPage(d pageDeps) pageEntry {
	res := api.MenuItems(d.client, d.logger)
	logger := d.logger.Named("menu_items_page")

	list := controllers.NewListController[entities.MenuItem](res, nil, func(m entities.MenuItem) string {
		return m.Name
	}, logger, d.bus)
	list.RegisterSortKey("menu_item_name", controllers.StringKey(func(m entities.MenuItem) string { return m.Name }))
	list.RegisterSortKey("price", controllers.NumberKey(func(m entities.MenuItem) float64 { return m.Price }))

	page := &ui.Page[entities.MenuItem, struct{}]{
		Title: "Menu",
		Columns: []ui.Column[entities.MenuItem]{
			{Title: "ID", Field: "menu_item_id", Value: func(m entities.MenuItem) string { return itoa(m.ID) }},
			{Title: "Name", Field: "menu_item_name", Value: func(m entities.MenuItem) string { return m.Name }},
			{Title: "Category", Field: "category", Value: func(m entities.MenuItem) string { return orNA(m.Category) }},
			{Title: "Price", Field: "price", Value: func(m entities.MenuItem) string { return ftoa(m.Price) }},
		},
		List:      list,
		Confirmer: d.confirmer,
		Session:   d.session,
		Logger:    logger,
		In:        d.in,
		Out:       d.out,
	}
	return pageEntry{title: page.Title, run: func(ctx context.Context) { page.Run(ctx) }}
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// Страницы показывали "N/A" вместо пустых значений.
func orNA(s null.String) string {
	if s.Valid && s.String != "" {
		return s.String
	}
	return "N/A"
}
