package entity

// Estados válidos para Request. Approved y Rejected son terminales.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// RequestItem un renglón de la solicitud: nombre del artículo y cantidad.
type RequestItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Request solicitud de insumos/equipos enviada por una cuenta autenticada.
// EmployeeEmail es el email de la cuenta que la creó.
type Request struct {
	ID            string        `json:"id,omitempty"`
	Type          string        `json:"type"`
	Items         []RequestItem `json:"items"`
	Status        string        `json:"status"` // Pending, Approved, Rejected
	Date          string        `json:"date"`
	EmployeeEmail string        `json:"employeeEmail"`
}

// Closed indica si la solicitud está en estado terminal.
func (r Request) Closed() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}
