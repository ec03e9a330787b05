package dto

import "time"

// LoginRequest entrada para login. Username admite email o username.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest entrada para registro de clientes del storefront.
// FullName es opcional: si falta se deriva del email.
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"omitempty,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Address  string `json:"address" validate:"omitempty,max=300"`
}

// UserResponse salida de un usuario (nunca incluye password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse salida de login y registro: usuario + token de sesión.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
