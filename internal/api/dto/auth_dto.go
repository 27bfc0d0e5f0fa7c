package dto

// RegisterRequest payload for new accountant users.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Phone     string `json:"phoneNumber"`
}

// RegisterResponse reports registration outcome.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginRequest payload for accountant login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the minted token on success. On failure the token
// is empty and the message is generic.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ClientLoginRequest payload for client portal login.
type ClientLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ClientLoginResponse adds the client business key to the login result.
type ClientLoginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Token    string `json:"token"`
	ClientID string `json:"clientId"`
}

// AccountantDetailsResponse carries profile data for the settings view.
type AccountantDetailsResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	ID       int64  `json:"id"`
}
