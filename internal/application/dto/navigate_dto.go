package dto

// NavigateResponse resultado del resolver de navegación: la página a activar, o el
// fragmento al que redirigir si un guard lo impide.
type NavigateResponse struct {
	Page     string `json:"page,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}
