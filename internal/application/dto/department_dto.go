package dto

// SaveDepartmentRequest entrada para alta o edición de departamento.
type SaveDepartmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// DepartmentResponse salida de un departamento. Description ya viene con el texto de
// presentación por defecto cuando el dato guardado está vacío.
type DepartmentResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DepartmentListResponse listado completo de departamentos.
type DepartmentListResponse struct {
	Items []DepartmentResponse `json:"items"`
}
