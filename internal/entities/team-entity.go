package entities

type Team struct {
	ID      uint64   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
	Company string   `json:"company"`
}

type TeamPatch struct {
	Name    *string
	Members *[]string
	Company *string
}

func (p TeamPatch) Apply(t *Team) {
	setIfPresent(&t.Name, p.Name)
	if p.Members != nil {
		t.Members = append([]string(nil), (*p.Members)...)
	}
	setIfPresent(&t.Company, p.Company)
}
