package models

// User is the authenticated principal reconstructed from JWT claims.
type User struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	IsActive  bool    `json:"is_active"`
	Roles     []*Role `json:"roles,omitempty"`
}

// Role names a portal role such as bursar or admin.
type Role struct {
	Name string `json:"name"`
}
