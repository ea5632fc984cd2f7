package dto

import "github.com/aarondl/null/v8"

type CreateTeamDTO struct {
	Name    string   `json:"name" validate:"required,not_blank"`
	Members []string `json:"members" validate:"omitempty,dive,not_blank"`
	Company string   `json:"company"`
}

type UpdateTeamDTO struct {
	Name    null.String `json:"name" validate:"omitempty,not_blank"`
	Members *[]string   `json:"members" validate:"omitempty,dive,not_blank"`
	Company null.String `json:"company"`
}

type TeamDTO struct {
	ID      uint64   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
	Company string   `json:"company"`
}
