package dto

import "github.com/tu-usuario/admin-revendedores/internal/domain/entity"

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest alta de usuario. Role se fija en el registro; para
// revendedores se acompaña de la categoría de precios.
type RegisterRequest struct {
	Name     string                  `json:"name"`
	Email    string                  `json:"email"`
	Password string                  `json:"password"`
	Phone    string                  `json:"phone"`
	Role     entity.Role             `json:"role"`
	Category entity.ResellerCategory `json:"resellerCategory,omitempty"`
}

// CredentialsResponse respuesta de login/registro. El cliente exige que Role
// venga presente; una respuesta 200 sin rol se trata como fallo.
type CredentialsResponse struct {
	UserID   string                  `json:"userId"`
	Name     string                  `json:"name"`
	Email    string                  `json:"email"`
	Role     entity.Role             `json:"role"`
	Category entity.ResellerCategory `json:"resellerCategory,omitempty"`
	Token    string                  `json:"token"`
}

// ForgotPasswordRequest solicitud de correo de recuperación.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest cambio de contraseña con token de recuperación.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// MessageResponse respuesta plana con un mensaje para el usuario.
type MessageResponse struct {
	Message string `json:"message"`
}
