package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	Name          string `json:"equipment_name" validate:"required"`
	ModelNumber   string `json:"model_number" validate:"required"`
	Manufacturer  string `json:"manufacturer" validate:"required"`
	DateAcquired  string `json:"date_acquired" validate:"required"`
	DistributorID int64  `json:"distributor_id" validate:"required,gt=0"`

	// Значения как в селекте формы: Under Warranty / Out of Warranty / No Warranty
	WarrantyStatus string `json:"warranty_status" validate:"required,oneof='Under Warranty' 'Out of Warranty' 'No Warranty'"`

	WarrantyExpirationDate null.String `json:"warranty_expiration_date" validate:"omitempty"`
	LastMaintenanceDate    null.String `json:"last_maintenance_date" validate:"omitempty"`
	NextMaintenanceDate    null.String `json:"next_maintenance_date" validate:"omitempty"`
	IncidentsReports       null.String `json:"incidents_reports" validate:"omitempty"`
	Notes                  null.String `json:"notes" validate:"omitempty"`
}
