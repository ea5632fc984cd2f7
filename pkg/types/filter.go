package types

// Filter represents query parameters for filtering and pagination.
type Filter struct {
	Search         string                 `json:"search,omitempty"`
	Sort           map[string]string      `json:"sort,omitempty"`
	Filter         map[string]interface{} `json:"filter,omitempty"`
	Limit          int                    `json:"limit"`
	Offset         int                    `json:"offset"`
	Page           int                    `json:"page"`
	WithPagination bool                   `json:"with_pagination"`
}

// Pagination represents pagination metadata.
type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}

// FilterValue returns filter[field] as a string, or "" when absent.
func (f Filter) FilterValue(field string) string {
	v, ok := f.Filter[field]
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// http://localhost:8080/api/requests?search=laptop&sort[request_date]=desc&filter[stage]=New Request&limit=10&withPagination=true
