package repository

import "github.com/jhoicas/Intranet-api/internal/domain/entity"

// Claves del layout persistido: un registro con la base completa y dos claves
// auxiliares con strings planos.
const (
	KeyDatabase        = "ipt_demo_v1"
	KeyAuthToken       = "auth_token"
	KeyUnverifiedEmail = "unverified_email"
)

// DataStore puerto de persistencia del portal. View/Update dan acceso exclusivo a la
// base en memoria; Update re-serializa el objeto completo al finalizar sin error
// (memoria y disco en lockstep). Las claves auxiliares se leen/escriben directo.
type DataStore interface {
	// View ejecuta fn con acceso de solo lectura a la base.
	View(fn func(db *entity.Database) error) error
	// Update ejecuta fn con acceso de escritura y persiste la base completa si fn
	// no retorna error. Si fn falla no se persiste nada.
	Update(fn func(db *entity.Database) error) error
	// GetValue devuelve el valor de una clave auxiliar ("" si no existe).
	GetValue(key string) (string, error)
	// SetValue escribe una clave auxiliar.
	SetValue(key, value string) error
	// DeleteValue elimina una clave auxiliar.
	DeleteValue(key string) error
}
