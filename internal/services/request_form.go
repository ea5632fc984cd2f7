package services

import (
	"strings"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
)

// blankRequestForm is the form shown for a new request.
func blankRequestForm(currentUser, today string) dto.RequestFormDTO {
	return dto.RequestFormDTO{
		ID:             0,
		CreatedBy:      currentUser,
		MaintenanceFor: constants.MaintenanceForEquipment,
		RequestDate:    today,
		Type:           constants.TypeCorrective,
		Team:           constants.DefaultTeam,
		Company:        constants.DefaultCompany,
		Stage:          constants.StageNewRequest,
	}
}

// requestToForm splits TargetID into the equipment or work center selector.
// Form-only fields start empty.
func requestToForm(r entities.Request, currentUser string) dto.RequestFormDTO {
	form := dto.RequestFormDTO{
		ID:             r.ID,
		Subject:        r.Subject,
		CreatedBy:      r.CreatedBy,
		MaintenanceFor: r.MaintenanceFor,
		Category:       r.Category,
		RequestDate:    r.RequestDate,
		Type:           r.Type,
		Team:           r.Team,
		Technician:     r.Technician,
		Priority:       r.Priority,
		Company:        r.Company,
		Stage:          r.Stage,
	}
	if form.CreatedBy == "" {
		form.CreatedBy = currentUser
	}
	if r.MaintenanceFor == constants.MaintenanceForEquipment {
		form.SelectedEquipment = r.TargetID
	} else {
		form.SelectedWorkCenter = r.TargetID
	}
	return form
}

func formToRequest(form dto.RequestFormDTO, currentUser string) entities.Request {
	target := form.SelectedWorkCenter
	if form.MaintenanceFor == constants.MaintenanceForEquipment {
		target = form.SelectedEquipment
	}

	createdBy := form.CreatedBy
	if createdBy == "" {
		createdBy = currentUser
	}
	if createdBy == "" {
		createdBy = constants.UnknownUser
	}

	return entities.Request{
		ID:             form.ID,
		Subject:        form.Subject,
		MaintenanceFor: form.MaintenanceFor,
		TargetID:       target,
		Technician:     form.Technician,
		Category:       form.Category,
		Priority:       form.Priority,
		Stage:          form.Stage,
		Company:        form.Company,
		Team:           form.Team,
		Type:           form.Type,
		RequestDate:    form.RequestDate,
		CreatedBy:      createdBy,
	}
}

// applyFormDefaults fills the enum fields a client may omit.
func applyFormDefaults(form *dto.RequestFormDTO, today string) {
	if form.MaintenanceFor == "" {
		form.MaintenanceFor = constants.MaintenanceForEquipment
	}
	if form.Stage == "" {
		form.Stage = constants.StageNewRequest
	}
	if form.Type == "" {
		form.Type = constants.TypeCorrective
	}
	if form.RequestDate == "" {
		form.RequestDate = today
	}
}

func hasSubject(form dto.RequestFormDTO) bool {
	return strings.TrimSpace(form.Subject) != ""
}

func requestToDTO(r entities.Request) dto.RequestDTO {
	return dto.RequestDTO{
		ID:             r.ID,
		Subject:        r.Subject,
		MaintenanceFor: r.MaintenanceFor,
		TargetID:       r.TargetID,
		Technician:     r.Technician,
		Category:       r.Category,
		Priority:       r.Priority,
		PriorityLabel:  constants.PriorityLabel(r.Priority),
		Stage:          r.Stage,
		Company:        r.Company,
		Team:           r.Team,
		Type:           r.Type,
		RequestDate:    r.RequestDate,
		CreatedBy:      r.CreatedBy,
	}
}

func requestsToDTO(requests []entities.Request) []dto.RequestDTO {
	out := make([]dto.RequestDTO, 0, len(requests))
	for _, r := range requests {
		out = append(out, requestToDTO(r))
	}
	return out
}
