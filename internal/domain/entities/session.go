package entities

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Session is the authenticated caller of a request.
//
// It is rebuilt from the bearer token on every request and travels through the
// request context; nothing caches it between requests.
type Session struct {
	UserID string
	Email  string
	Role   Role
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
