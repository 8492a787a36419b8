package stub

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"bar-inventory/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Server — бэкенд-заглушка: реализует wire-контракт инвентарного API
// в памяти, без базы и без внешних сервисов. Нужна локальной разработке
// и тестам; настоящий бэкенд остаётся внешним.
type Server struct {
	echo      *echo.Echo
	logger    *zap.Logger
	validate  *validator.Validate
	jwtSecret string

	products     *store
	equipment    *store
	distributors *store
	reservations *store
	wasteLog     *store
	sales        *store
	menuItems    *store
	notes        *store

	users map[string]stubUser
}

type stubUser struct {
	PasswordHash []byte
	Manager      bool
}

func NewServer(jwtSecret string, logger *zap.Logger) *Server {
	s := &Server{
		echo:      echo.New(),
		logger:    logger.Named("stub"),
		validate:  validation.New(),
		jwtSecret: jwtSecret,

		products:     newStore("product_id"),
		equipment:    newStore("equipment_id"),
		distributors: newStore("distributor_id"),
		reservations: newStore("reservation_id"),
		wasteLog:     newStore("waste_log_id"),
		sales:        newStore("sales_transaction_id"),
		menuItems:    newStore("menu_item_id"),
		notes:        newStore("notification_id"),

		users: make(map[string]stubUser),
	}

	s.echo.HideBanner = true
	s.echo.Use(middleware.Recover())

	s.routes()
	s.seedDemoData()
	return s
}

func (s *Server) routes() {
	e := s.echo

	e.POST("/login/", s.handleLogin)
	e.POST("/inventory/login/", s.handleLogin)

	s.crudRoutes("/inventory/product-inventory", s.products, func() interface{} {
		return new(createProductBody)
	})
	s.crudRoutes("/inventory/equipment", s.equipment, func() interface{} {
		return new(createEquipmentBody)
	})
	s.crudRoutes("/inventory/distributors", s.distributors, func() interface{} {
		return new(createDistributorBody)
	})
	s.crudRoutes("/inventory/reservations", s.reservations, func() interface{} {
		return new(createReservationBody)
	})

	// Журнал списаний адресует записи суффиксом пути.
	e.GET("/inventory/view-waste-log/", s.handleList(s.wasteLog))
	e.POST("/inventory/add-waste-log-entry/", s.handleCreate(s.wasteLog, func() interface{} {
		return new(createWasteBody)
	}))
	e.PUT("/inventory/update-waste-log-entry/:id", s.handleUpdateByPath(s.wasteLog))
	e.DELETE("/inventory/delete-waste-log-entry/:id", s.handleDeleteByPath(s.wasteLog))

	e.GET("/inventory/sales-transaction", s.handleList(s.sales))
	e.POST("/inventory/sales-transaction", s.handleCreateSale)
	e.GET("/inventory/items", s.handleList(s.menuItems))
	e.GET("/inventory/notifications", s.handleList(s.notes))
}

// crudRoutes вешает четыре глагола на один путь: идентификатор для
// PUT/DELETE приходит в теле запроса, как у настоящего бэкенда.
func (s *Server) crudRoutes(path string, st *store, newBody func() interface{}) {
	e := s.echo
	e.GET(path, s.handleList(st))
	e.POST(path, s.handleCreate(st, newBody))
	e.PUT(path, s.handleUpdateByBody(st))
	e.DELETE(path, s.handleDeleteByBody(st))
}

// Handler отдаёт сервер как http.Handler — так его поднимают тесты
// через httptest.
func (s *Server) Handler() http.Handler { return s.echo }

// Start блокирует, обслуживая порт; для cmd/stubserver.
func (s *Server) Start(port string) error {
	s.logger.Info("Заглушка инвентарного API запущена", zap.String("port", port))
	return s.echo.Start(":" + port)
}
