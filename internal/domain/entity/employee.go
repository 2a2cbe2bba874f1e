package entity

// Employee representa un registro de empleado. El email debe corresponder a una Account
// existente; ID es una etiqueta secuencial ("EMP-101", ...) salvo que el admin la indique.
// No existe operación de edición: solo alta y baja.
type Employee struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"dept"`
	HireDate   string `json:"hireDate"`
}
