package entities

// Request is a maintenance request. TargetID holds the name of the equipment
// or work center it refers to, not a numeric id.
type Request struct {
	ID             uint64 `json:"id"`
	Subject        string `json:"subject"`
	MaintenanceFor string `json:"maintenanceFor"`
	TargetID       string `json:"targetId"`
	Technician     string `json:"technician"`
	Category       string `json:"category"`
	Priority       int    `json:"priority"`
	Stage          string `json:"stage"`
	Company        string `json:"company"`
	Team           string `json:"team"`
	Type           string `json:"type"`
	RequestDate    string `json:"requestDate"`
	CreatedBy      string `json:"createdBy"`
}

// RequestPatch is a partial update; nil fields are left untouched.
type RequestPatch struct {
	Subject        *string
	MaintenanceFor *string
	TargetID       *string
	Technician     *string
	Category       *string
	Priority       *int
	Stage          *string
	Company        *string
	Team           *string
	Type           *string
	RequestDate    *string
	CreatedBy      *string
}

func (p RequestPatch) Apply(r *Request) {
	setIfPresent(&r.Subject, p.Subject)
	setIfPresent(&r.MaintenanceFor, p.MaintenanceFor)
	setIfPresent(&r.TargetID, p.TargetID)
	setIfPresent(&r.Technician, p.Technician)
	setIfPresent(&r.Category, p.Category)
	setIfPresent(&r.Priority, p.Priority)
	setIfPresent(&r.Stage, p.Stage)
	setIfPresent(&r.Company, p.Company)
	setIfPresent(&r.Team, p.Team)
	setIfPresent(&r.Type, p.Type)
	setIfPresent(&r.RequestDate, p.RequestDate)
	setIfPresent(&r.CreatedBy, p.CreatedBy)
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
