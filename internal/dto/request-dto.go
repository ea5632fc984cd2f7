package dto

import "github.com/aarondl/null/v8"

// RequestFormDTO is the editable request form. ScheduledDate, Duration and
// Notes exist on the form only and are never persisted.
type RequestFormDTO struct {
	ID                 uint64  `json:"id"`
	Subject            string  `json:"subject"`
	CreatedBy          string  `json:"createdBy"`
	MaintenanceFor     string  `json:"maintenanceFor" validate:"omitempty,maintenance_for"`
	SelectedEquipment  string  `json:"selectedEquipment"`
	SelectedWorkCenter string  `json:"selectedWorkCenter"`
	Category           string  `json:"category"`
	RequestDate        string  `json:"requestDate" validate:"omitempty,iso_date"`
	Type               string  `json:"type" validate:"omitempty,maintenance_type"`
	Team               string  `json:"team"`
	Technician         string  `json:"technician"`
	ScheduledDate      string  `json:"scheduledDate"`
	Duration           float64 `json:"duration" validate:"gte=0"`
	Priority           int     `json:"priority" validate:"gte=0,lte=3"`
	Company            string  `json:"company"`
	Stage              string  `json:"stage" validate:"omitempty,request_stage"`
	Notes              string  `json:"notes"`
}

// UpdateRequestDTO is a partial update; absent or null fields stay unchanged.
type UpdateRequestDTO struct {
	Subject        null.String `json:"subject" validate:"omitempty,not_blank"`
	MaintenanceFor null.String `json:"maintenanceFor" validate:"omitempty,maintenance_for"`
	TargetID       null.String `json:"targetId"`
	Technician     null.String `json:"technician"`
	Category       null.String `json:"category"`
	Priority       null.Int    `json:"priority" validate:"omitempty,gte=0,lte=3"`
	Stage          null.String `json:"stage" validate:"omitempty,request_stage"`
	Company        null.String `json:"company"`
	Team           null.String `json:"team"`
	Type           null.String `json:"type" validate:"omitempty,maintenance_type"`
	RequestDate    null.String `json:"requestDate" validate:"omitempty,iso_date"`
}

type UpdateStageDTO struct {
	Stage string `json:"stage" validate:"required,request_stage"`
}

// RequestDTO is a stored request as returned by the API.
type RequestDTO struct {
	ID             uint64 `json:"id"`
	Subject        string `json:"subject"`
	MaintenanceFor string `json:"maintenanceFor"`
	TargetID       string `json:"targetId"`
	Technician     string `json:"technician"`
	Category       string `json:"category"`
	Priority       int    `json:"priority"`
	PriorityLabel  string `json:"priorityLabel"`
	Stage          string `json:"stage"`
	Company        string `json:"company"`
	Team           string `json:"team"`
	Type           string `json:"type"`
	RequestDate    string `json:"requestDate"`
	CreatedBy      string `json:"createdBy"`
}
