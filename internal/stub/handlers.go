package stub

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bar-inventory/internal/dto"
	"bar-inventory/internal/session"
)

// Тела создания совпадают с черновиками клиента — заглушка проверяет
// их теми же правилами валидатора.
type (
	createProductBody     = dto.CreateProductDTO
	createEquipmentBody   = dto.CreateEquipmentDTO
	createDistributorBody = dto.CreateDistributorDTO
	createReservationBody = dto.CreateReservationDTO
	createWasteBody       = dto.CreateWasteLogDTO
)

func (s *Server) handleList(st *store) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, st.list())
	}
}

func (s *Server) handleCreate(st *store, newBody func() interface{}) echo.HandlerFunc {
	return func(c echo.Context) error {
		payload, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "не удалось прочитать тело запроса"})
		}

		body := newBody()
		if err := json.Unmarshal(payload, body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "неверный формат данных в теле запроса"})
		}
		if err := s.validate.Struct(body); err != nil {
			s.logger.Warn("Создание отклонено валидатором", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "не заполнены обязательные поля"})
		}

		var r row
		if err := json.Unmarshal(payload, &r); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "неверный формат данных в теле запроса"})
		}
		return c.JSON(http.StatusOK, st.create(r))
	}
}

func (s *Server) handleUpdateByBody(st *store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var r row
		if err := c.Bind(&r); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "неверный формат данных в теле запроса"})
		}

		id, ok := bodyID(r, st.idKey)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "в теле запроса нет " + st.idKey})
		}
		updated, found := st.update(id, r)
		if !found {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "запись не найдена"})
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func (s *Server) handleDeleteByBody(st *store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var r row
		if err := c.Bind(&r); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "неверный формат данных в теле запроса"})
		}

		id, ok := bodyID(r, st.idKey)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "в теле запроса нет " + st.idKey})
		}
		if !st.delete(id) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "запись не найдена"})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "запись удалена"})
	}
}

func (s *Server) handleUpdateByPath(st *store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "неверный формат идентификатора"})
		}

		var r row
		if err := c.Bind(&r); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "неверный формат данных в теле запроса"})
		}
		updated, found := st.update(id, r)
		if !found {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "запись не найдена"})
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func (s *Server) handleDeleteByPath(st *store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "неверный формат идентификатора"})
		}
		if !st.delete(id) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "запись не найдена"})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "запись удалена"})
	}
}

// handleCreateSale принимает multipart-форму с каноническими ключами
// (menu_item_id, quantity, transaction_date) и отвечает конвертом message.
func (s *Server) handleCreateSale(c echo.Context) error {
	menuItemID, err := strconv.ParseInt(c.FormValue("menu_item_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "неверный menu_item_id"})
	}
	quantity, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil || quantity < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "количество должно быть не меньше 1"})
	}
	date := c.FormValue("transaction_date")
	if date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "не указана дата продажи"})
	}

	item, found := s.menuItems.get(menuItemID)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "позиция меню не найдена"})
	}

	s.sales.create(row{
		"menu_item_id":       menuItemID,
		"menu_item_name":     item["menu_item_name"],
		"quantity_purchased": quantity,
		"transaction_date":   date,
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "Продажа записана."})
}

func (s *Server) handleLogin(c echo.Context) error {
	var creds dto.LoginDTO
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "неверный формат данных в теле запроса"})
	}

	user, found := s.users[creds.Username]
	if !found || bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(creds.Password)) != nil {
		s.logger.Warn("Отказ во входе", zap.String("username", creds.Username))
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "неверные учётные данные"})
	}

	claims := session.Claims{
		Username: creds.Username,
		Manager:  user.Manager,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		s.logger.Error("Не удалось подписать токен", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "внутренняя ошибка сервера"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Вход выполнен",
		"token":   token,
	})
}

// bodyID достаёт идентификатор из JSON-тела; после Unmarshal числа
// приходят как float64.
func bodyID(r row, key string) (int64, bool) {
	switch v := r[key].(type) {
	case float64:
		return int64(v), true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		return id, err == nil
	default:
		return 0, false
	}
}
