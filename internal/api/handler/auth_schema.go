package handler

// registerRequest is the payload for POST /auth/register. No role field is
// accepted: every account registers as a customer.
type registerRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginRequest is the payload for POST /auth/login. The username field is
// matched against the email column — a long-standing wire contract inherited
// from the OAuth2 password form, kept for client compatibility.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
