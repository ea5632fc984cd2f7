package entities

// PortalUser is a dashboard account. Password holds a bcrypt hash; it is
// persisted with the record but never leaves the service layer.
type PortalUser struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
