package domain

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User is an operator account on the dashboard.
type User struct {
	UserID       string       `json:"userID"` // Primary Key (UUID)
	Username     string       `json:"username"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	AuthProvider AuthProvider `json:"authProvider"`
	// ProviderUserID is the identity provider's stable id for the user
	// (Google's 'sub' claim); empty for local accounts.
	ProviderUserID string `json:"-"`
	EmailVerified  bool   `json:"emailVerified"`
	AuditFields
}
