package dto

// RequestItemInput un renglón del formulario de solicitud. Los renglones con nombre
// vacío se descartan en silencio.
type RequestItemInput struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// CreateRequestRequest entrada para enviar una solicitud de insumos/equipos.
type CreateRequestRequest struct {
	Type  string             `json:"type" validate:"required"`
	Items []RequestItemInput `json:"items" validate:"required,min=1"`
}

// UpdateRequestStatusRequest entrada para aprobar o rechazar (solo admin).
type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected"`
}

// RequestItemView renglón tal como se muestra.
type RequestItemView struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// RequestResponse salida de una solicitud con los campos de presentación del listado:
// resumen de ítems, clase del badge de estado y si el espectador puede resolverla
// (solo admin y solo mientras esté Pending).
type RequestResponse struct {
	ID            string            `json:"id,omitempty"`
	Type          string            `json:"type"`
	Items         []RequestItemView `json:"items"`
	ItemsSummary  string            `json:"itemsSummary"`
	Date          string            `json:"date"`
	Status        string            `json:"status"`
	StatusClass   string            `json:"statusClass"`
	EmployeeEmail string            `json:"employeeEmail"`
	CanDecide     bool              `json:"canDecide"`
}

// RequestListResponse listado de solicitudes visibles para el espectador.
type RequestListResponse struct {
	Items []RequestResponse `json:"items"`
}

// StatusBadge clase de badge para el estado de una solicitud.
func StatusBadge(status string) string {
	switch status {
	case "Approved":
		return "bg-success"
	case "Rejected":
		return "bg-danger"
	default:
		return "bg-warning text-dark"
	}
}
