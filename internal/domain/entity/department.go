package entity

// Department representa un departamento. El nombre se usa como referencia libre desde
// Employee.Department; no se valida unicidad.
type Department struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
