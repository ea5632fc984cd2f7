package dto

import "github.com/aarondl/null/v8"

type WorkCenterFormDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Tag  string `json:"tag"`
}

type UpdateWorkCenterDTO struct {
	Name null.String `json:"name" validate:"omitempty,not_blank"`
	Code null.String `json:"code"`
	Tag  null.String `json:"tag"`
}

type WorkCenterDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Tag  string `json:"tag"`
}

type WorkCenterDetailDTO struct {
	WorkCenterDTO
	RelatedRequests []RequestDTO `json:"relatedRequests"`
}
