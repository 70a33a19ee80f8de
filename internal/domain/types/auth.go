package types

// RegisterInput is the request body for creating a user and their accounts.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginInput is the request body for authenticating an existing user.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LogoutInput carries the token pair the backend should invalidate.
type LogoutInput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse is returned by login and register: a fresh token pair plus
// the authenticated user.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}
