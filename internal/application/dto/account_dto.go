package dto

// RegisterRequest entrada para registro público: crea una cuenta sin verificar con rol user.
type RegisterRequest struct {
	FirstName string `json:"first" validate:"required"`
	LastName  string `json:"last"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest entrada para login (email + password en texto plano, demo).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT de sesión y la cuenta autenticada.
type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// EditProfileRequest entrada para editar el perfil de la cuenta en sesión.
type EditProfileRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// ResetPasswordRequest entrada para restablecer la contraseña de una cuenta (admin).
type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SaveAccountRequest entrada para alta o edición de cuenta desde el panel admin.
// Una contraseña vacía en alta usa el valor por defecto del demo.
type SaveAccountRequest struct {
	FirstName string `json:"first" validate:"required"`
	LastName  string `json:"last"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

// AccountResponse salida de una cuenta (sin password) con los campos de presentación
// que usa el listado: nombre completo y clase del badge de rol.
type AccountResponse struct {
	FirstName string `json:"first"`
	LastName  string `json:"last"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	RoleClass string `json:"roleClass"`
	Verified  bool   `json:"verified"`
}

// AccountListResponse listado completo de cuentas.
type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
}

// RoleBadge clase de badge para el rol (rojo para admin, gris para el resto).
func RoleBadge(role string) string {
	if role == "admin" {
		return "bg-danger"
	}
	return "bg-secondary"
}
