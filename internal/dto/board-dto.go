package dto

type BoardCardDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Equipment string `json:"equipment"`
	Priority  string `json:"priority"`
	User      string `json:"user"`
}

type BoardColumnDTO struct {
	Title string         `json:"title"`
	Color string         `json:"color"`
	Count int            `json:"count"`
	Cards []BoardCardDTO `json:"cards"`
}

type BoardDTO struct {
	Columns []BoardColumnDTO `json:"columns"`
}

type CalendarDayDTO struct {
	Date     string       `json:"date"`
	Requests []RequestDTO `json:"requests"`
}

type CalendarDTO struct {
	Month string           `json:"month"`
	Days  []CalendarDayDTO `json:"days"`
}
