package dto

// CreateEmployeeRequest entrada para alta de empleado (solo admin). ID vacío genera
// una etiqueta secuencial. El email debe corresponder a una cuenta existente.
type CreateEmployeeRequest struct {
	ID       string `json:"id"`
	Email    string `json:"email" validate:"required,email"`
	Position string `json:"position" validate:"required"`
	Dept     string `json:"dept" validate:"required"`
	HireDate string `json:"hireDate" validate:"required"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Position string `json:"position"`
	Dept     string `json:"dept"`
	HireDate string `json:"hireDate"`
}

// EmployeeListResponse listado completo de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
}
