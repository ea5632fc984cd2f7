package dto

type ReportKPIDTO struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Trend     string `json:"trend"`
	Direction string `json:"direction"`
}

type CategoryFailureDTO struct {
	Label   string `json:"label"`
	Percent string `json:"percent"`
	Value   string `json:"value"`
}

type StatusShareDTO struct {
	Stage   string `json:"stage"`
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}

type StatusDistributionDTO struct {
	Total  int              `json:"total"`
	Shares []StatusShareDTO `json:"shares"`
}

type ReportDTO struct {
	Period             string                `json:"period"`
	PeriodLabel        string                `json:"periodLabel"`
	KPIs               []ReportKPIDTO        `json:"kpis"`
	FailuresByCategory []CategoryFailureDTO  `json:"failuresByCategory"`
	StatusDistribution StatusDistributionDTO `json:"statusDistribution"`
}
