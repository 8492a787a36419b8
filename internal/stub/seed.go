package stub

import (
	"github.com/aarondl/null/v8"
	"golang.org/x/crypto/bcrypt"

	"bar-inventory/internal/entities"
)

// seedDemoData наполняет заглушку правдоподобным баром, чтобы клиент
// было на чем гонять без настоящего бэкенда.
func (s *Server) seedDemoData() {
	s.addUser("manager", "manager123", true)
	s.addUser("staff", "staff123", false)

	s.distributors.seed(entities.Distributor{
		Name:            "Bevco Wholesale",
		Address:         "12 Dockside Ave",
		Location:        "Portland",
		PaymentTerms:    "Net 30",
		PersonOfContact: "R. Alvarez",
		DeliveryTerms:   "Weekly, Tuesdays",
		PhoneNumber:     "555-0142",
	})
	s.distributors.seed(entities.Distributor{
		Name:            "Cascade Spirits",
		Address:         "400 Hilltop Rd",
		Location:        "Seattle",
		PaymentTerms:    "Net 15",
		PersonOfContact: "M. Chen",
		DeliveryTerms:   "On demand",
		PhoneNumber:     "555-0177",
	})

	s.products.seed(entities.Product{
		Name:              "Gin",
		Distributor:       "Bevco Wholesale",
		StockQuantity:     5,
		Price:             24.50,
		MinimumThreshold:  3,
		CostPerUnit:       16.00,
		UnitOfMeasurement: null.StringFrom("bottle"),
		Category:          null.StringFrom("Spirits"),
		Brand:             null.StringFrom("Juniper & Co"),
	})
	s.products.seed(entities.Product{
		Name:              "Tonic Water",
		Distributor:       "Cascade Spirits",
		StockQuantity:     48,
		Price:             2.20,
		MinimumThreshold:  24,
		CostPerUnit:       0.90,
		ExpirationDate:    null.StringFrom("2026-11-01"),
		UnitOfMeasurement: null.StringFrom("can"),
		Category:          null.StringFrom("Mixers"),
	})

	s.equipment.seed(entities.Equipment{
		Name:                   "Glass Washer",
		ModelNumber:            "GW-240",
		Manufacturer:           "Hobart",
		DateAcquired:           "2024-03-12",
		Distributor:            "Bevco Wholesale",
		DistributorID:          1,
		WarrantyStatus:         "Under Warranty",
		WarrantyExpirationDate: null.StringFrom("2027-03-12"),
		NextMaintenanceDate:    null.StringFrom("2026-10-01"),
	})

	s.reservations.seed(entities.Reservation{
		User:                "staff",
		CustomerFirstName:   "Dana",
		CustomerLastName:    "Whitfield",
		ReservationDate:     "2026-09-05",
		ReservationTime:     "2026-09-05T19:30:00Z",
		NumberOfGuests:      4,
		ReservationDuration: 90,
		ReservationStatus:   "Pending",
		CheckInStatus:       "Pending",
	})

	s.wasteLog.seed(entities.WasteLogEntry{
		WasteType:     "Spoilage",
		User:          "staff",
		WasteDate:     "2026-08-20",
		Reason:        "Past expiration",
		QuantityWaste: 2,
		Product:       "Lime Juice",
	})

	s.menuItems.seed(entities.MenuItem{
		Name:     "Negroni",
		Category: null.StringFrom("Cocktails"),
		Price:    12.00,
	})
	s.menuItems.seed(entities.MenuItem{
		Name:        "Margarita",
		Category:    null.StringFrom("Cocktails"),
		Description: null.StringFrom("Classic, on the rocks"),
		Price:       11.00,
	})

	s.notes.seed(entities.Notification{
		Type:      "low_stock",
		Message:   "Gin ниже минимального порога",
		CreatedAt: "2026-08-29T08:00:00Z",
	})
}

func (s *Server) addUser(username, password string, manager bool) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	s.users[username] = stubUser{PasswordHash: hash, Manager: manager}
}
