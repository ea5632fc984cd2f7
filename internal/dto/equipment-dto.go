package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	Name       string `json:"name" validate:"required,not_blank"`
	Category   string `json:"category"`
	Serial     string `json:"serial"`
	Employee   string `json:"employee"`
	Department string `json:"department"`
}

type UpdateEquipmentDTO struct {
	Name       null.String `json:"name" validate:"omitempty,not_blank"`
	Category   null.String `json:"category"`
	Serial     null.String `json:"serial"`
	Employee   null.String `json:"employee"`
	Department null.String `json:"department"`
}

type EquipmentDTO struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Serial     string `json:"serial"`
	Employee   string `json:"employee"`
	Department string `json:"department"`
}

// EquipmentDetailDTO is the equipment form: the record, its maintenance
// history and the form-only fields, which are never stored.
type EquipmentDetailDTO struct {
	EquipmentDTO
	Model            string       `json:"model"`
	Technician       string       `json:"technician"`
	Warranty         string       `json:"warranty"`
	Cost             float64      `json:"cost"`
	Company          string       `json:"company"`
	Description      string       `json:"description"`
	MaintenanceCount int          `json:"maintenanceCount"`
	RelatedRequests  []RequestDTO `json:"relatedRequests"`
}
