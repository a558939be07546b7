package auth

// TokenRequest is the request body for issuing a bearer token.
type TokenRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries the serialized bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
