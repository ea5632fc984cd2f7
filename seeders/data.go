package seeders

import (
	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
)

// Each Default* function returns a fresh slice so callers may mutate it.

func DefaultTeams() []entities.Team {
	return []entities.Team{
		{ID: 1, Name: constants.DefaultTeam, Members: []string{"Anas Makari", "Mitchell Admin"}, Company: constants.DefaultCompany},
		{ID: 2, Name: "Metrology", Members: []string{"Marc Demo"}, Company: constants.DefaultCompany},
	}
}

func DefaultEquipments() []entities.Equipment {
	return []entities.Equipment{
		{ID: 1, Name: "Acer Laptop/LP/203/19281928", Category: "Computers", Serial: "LP203", Employee: "Bhaumik P", Department: "IT"},
		{ID: 2, Name: "CNC Machine 01", Category: "Machinery", Serial: "CNC99", Employee: "Operator A", Department: "Production"},
	}
}

func DefaultWorkCenters() []entities.WorkCenter {
	return []entities.WorkCenter{
		{ID: 1, Name: "Assembly 1", Code: "WC001", Tag: "Main Line"},
		{ID: 2, Name: "Drill 1", Code: "DR001", Tag: "Machining"},
	}
}

func DefaultRequests() []entities.Request {
	return []entities.Request{
		{
			ID:             1,
			Subject:        "Test activity",
			MaintenanceFor: constants.MaintenanceForEquipment,
			TargetID:       "Acer Laptop/LP/203/19281928",
			Technician:     "Aka Foster",
			Category:       "Computers",
			Priority:       1,
			Stage:          constants.StageNewRequest,
			Company:        constants.DefaultCompany,
			Team:           constants.DefaultTeam,
			Type:           constants.TypeCorrective,
			RequestDate:    "2025-12-18",
			CreatedBy:      "Mitchell Admin",
		},
	}
}

func DefaultPortalUsers() []entities.PortalUser {
	return []entities.PortalUser{}
}
