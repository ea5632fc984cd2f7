package entities

type WorkCenter struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Tag  string `json:"tag"`
}

type WorkCenterPatch struct {
	Name *string
	Code *string
	Tag  *string
}

func (p WorkCenterPatch) Apply(w *WorkCenter) {
	setIfPresent(&w.Name, p.Name)
	setIfPresent(&w.Code, p.Code)
	setIfPresent(&w.Tag, p.Tag)
}
