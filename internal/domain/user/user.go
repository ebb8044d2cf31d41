package user

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAgent      Role = "agent"
	RoleSupervisor Role = "supervisor"
)

// User is the authenticated identity held by the session service.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Role    Role   `json:"role"`
	Avatar  string `json:"avatar,omitempty"`
}

// DemoUsers are the built-in demo identities, keyed by email. IDs are
// assigned at login time.
func DemoUsers() map[string]User {
	return map[string]User{
		"demo@gnp.com": {
			Name:    "Juan Pérez",
			Email:   "demo@gnp.com",
			Company: "GNP",
			Role:    RoleAgent,
		},
		"demo@axa.com": {
			Name:    "María García",
			Email:   "demo@axa.com",
			Company: "AXA",
			Role:    RoleAgent,
		},
		"demo@banorte.com": {
			Name:    "Carlos López",
			Email:   "demo@banorte.com",
			Company: "Banorte",
			Role:    RoleSupervisor,
		},
	}
}
