package dto

import "time"

// LoginRequest entrada para login por cédula.
type LoginRequest struct {
	Cedula   string `json:"cedula" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest entrada para registro (el rol siempre inicia como ejecutivo).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Cedula   string `json:"cedula" validate:"required,min=5,max=20"`
	Password string `json:"password" validate:"required,min=8"`
}

// ResetPasswordRequest restablecimiento directo: prueba de cédula + contraseña nueva.
type ResetPasswordRequest struct {
	Cedula               string `json:"cedula" validate:"required"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Cedula    string    `json:"cedula"`
	Role      int       `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
