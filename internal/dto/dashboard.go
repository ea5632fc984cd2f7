package dto

type KPICardDTO struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle"`
	Tone     string `json:"tone"`
}

// DashboardRequestRowDTO is one line of the dashboard request table with
// display fallbacks already applied.
type DashboardRequestRowDTO struct {
	ID                uint64 `json:"id"`
	Subject           string `json:"subject"`
	Employee          string `json:"employee"`
	Technician        string `json:"technician"`
	TechnicianInitial string `json:"technicianInitial"`
	Category          string `json:"category"`
	Stage             string `json:"stage"`
	StageColor        string `json:"stageColor"`
	Company           string `json:"company"`
}

type DashboardDTO struct {
	Cards    []KPICardDTO             `json:"cards"`
	Requests []DashboardRequestRowDTO `json:"requests"`
}
