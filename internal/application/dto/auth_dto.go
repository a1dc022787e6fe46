package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthUserResponse datos mínimos del usuario autenticado que el cliente
// necesita para decidir a qué módulo navegar.
type AuthUserResponse struct {
	ID           int64  `json:"id"`
	DealershipID int64  `json:"dealership_id"`
	Role         string `json:"role"`
	FullName     string `json:"full_name"`
}

// LoginResponse token + usuario.
type LoginResponse struct {
	Token string           `json:"token"`
	User  AuthUserResponse `json:"user"`
}
