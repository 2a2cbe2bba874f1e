package entity

// Roles válidos para Account.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account representa una cuenta del portal. El email es la clave única de la colección.
// La contraseña se guarda en texto plano: es un demo sin requisitos de seguridad y los
// tags JSON replican el layout persistido original (first, last, email, ...).
type Account struct {
	FirstName string `json:"first"`
	LastName  string `json:"last"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"` // admin, user
	Verified  bool   `json:"verified"`
}

// IsAdmin indica si la cuenta tiene rol administrador.
func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// FullName nombre para mostrar.
func (a Account) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
