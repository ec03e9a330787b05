package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
	RoleClient   = "CLIENT"
)

// User representa un usuario del sistema. Los registrados vía storefront
// siempre nacen con rol CLIENT; el ADMIN es una identidad reservada.
// Lleva tags JSON porque se serializa tal cual al snapshot local
// (claves currentUser y users).
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName,omitempty"`
	Role      string    `json:"role"` // ADMIN, EMPLOYEE, CLIENT
	CreatedAt time.Time `json:"createdAt"`
}

// Account entrada de la lista persistida de usuarios registrados
// (solo la usa la ruta mock de credenciales; nunca guarda password plano).
type Account struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password"` // bcrypt hash
	User         User   `json:"user"`
}

// Session par usuario autenticado + token, vigente entre login y logout.
type Session struct {
	User  User
	Token string
}
