package entities

type Equipment struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Serial     string `json:"serial"`
	Employee   string `json:"employee"`
	Department string `json:"department"`
}

type EquipmentPatch struct {
	Name       *string
	Category   *string
	Serial     *string
	Employee   *string
	Department *string
}

func (p EquipmentPatch) Apply(e *Equipment) {
	setIfPresent(&e.Name, p.Name)
	setIfPresent(&e.Category, p.Category)
	setIfPresent(&e.Serial, p.Serial)
	setIfPresent(&e.Employee, p.Employee)
	setIfPresent(&e.Department, p.Department)
}
