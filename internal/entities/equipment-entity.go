package entities

import (
	"github.com/aarondl/null/v8"
)

type Equipment struct {
	ID                     int64       `json:"equipment_id"`
	Name                   string      `json:"equipment_name"`
	ModelNumber            string      `json:"model_number"`
	Manufacturer           string      `json:"manufacturer"`
	DateAcquired           string      `json:"date_acquired"`
	Distributor            string      `json:"distributor"`
	DistributorID          int64       `json:"distributor_id"`
	WarrantyStatus         string      `json:"warranty_status"`
	WarrantyExpirationDate null.String `json:"warranty_expiration_date"`
	LastMaintenanceDate    null.String `json:"last_maintenance_date"`
	NextMaintenanceDate    null.String `json:"next_maintenance_date"`
	IncidentsReports       null.String `json:"incidents_reports"`
	Notes                  null.String `json:"notes"`
}

func (e Equipment) PrimaryKey() int64 { return e.ID }
