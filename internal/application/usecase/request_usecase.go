package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Intranet-api/internal/application/dto"
	"github.com/jhoicas/Intranet-api/internal/domain"
	"github.com/jhoicas/Intranet-api/internal/domain/entity"
	"github.com/jhoicas/Intranet-api/internal/domain/repository"
)

// RequestUseCase solicitudes de insumos/equipos: alta por cualquier cuenta autenticada,
// listado filtrado por rol y resolución (aprobar/rechazar) solo por admin.
type RequestUseCase struct {
	store repository.DataStore
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(store repository.DataStore) *RequestUseCase {
	return &RequestUseCase{store: store}
}

// Create registra una solicitud Pending a nombre de la cuenta actora. Los renglones
// con nombre vacío se descartan en silencio; los restantes exigen cantidad positiva y
// debe sobrevivir al menos uno.
func (uc *RequestUseCase) Create(actorEmail string, in dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	items := make([]entity.RequestItem, 0, len(in.Items))
	for _, it := range in.Items {
		if strings.TrimSpace(it.Name) == "" {
			continue
		}
		if it.Qty < 1 {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.RequestItem{Name: it.Name, Qty: it.Qty})
	}
	if len(items) == 0 {
		return nil, domain.ErrNoItems
	}
	req := entity.Request{
		ID:            uuid.New().String(),
		Type:          in.Type,
		Items:         items,
		Status:        entity.StatusPending,
		Date:          time.Now().Format("2006-01-02"),
		EmployeeEmail: actorEmail,
	}
	err := uc.store.Update(func(db *entity.Database) error {
		db.Requests = append(db.Requests, req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toRequestResponse(req, false)
	return &resp, nil
}

// List devuelve todas las solicitudes para un admin y solo las propias para el resto.
func (uc *RequestUseCase) List(actorEmail, actorRole string) (*dto.RequestListResponse, error) {
	isAdmin := actorRole == entity.RoleAdmin
	out := &dto.RequestListResponse{Items: []dto.RequestResponse{}}
	err := uc.store.View(func(db *entity.Database) error {
		for _, r := range db.Requests {
			if !isAdmin && r.EmployeeEmail != actorEmail {
				continue
			}
			out.Items = append(out.Items, toRequestResponse(r, isAdmin))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus resuelve la solicitud del índice indicado. Solo admin; las únicas
// transiciones válidas son Pending→Approved y Pending→Rejected, y los estados
// terminales no vuelven a cambiar.
func (uc *RequestUseCase) UpdateStatus(actorRole string, index int, in dto.UpdateRequestStatusRequest) (*dto.RequestResponse, error) {
	if actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if in.Status != entity.StatusApproved && in.Status != entity.StatusRejected {
		return nil, domain.ErrInvalidInput
	}
	var updated entity.Request
	err := uc.store.Update(func(db *entity.Database) error {
		if index < 0 || index >= len(db.Requests) {
			return domain.ErrNotFound
		}
		if db.Requests[index].Closed() {
			return domain.ErrRequestClosed
		}
		db.Requests[index].Status = in.Status
		updated = db.Requests[index]
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toRequestResponse(updated, true)
	return &resp, nil
}

// toRequestResponse proyección de solo lectura de una solicitud para el espectador:
// resumen "Nombre (qty), ...", badge según estado y controles de resolución visibles
// únicamente para admin sobre filas Pending.
func toRequestResponse(r entity.Request, viewerIsAdmin bool) dto.RequestResponse {
	items := make([]dto.RequestItemView, 0, len(r.Items))
	parts := make([]string, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.RequestItemView{Name: it.Name, Qty: it.Qty})
		parts = append(parts, fmt.Sprintf("%s (%d)", it.Name, it.Qty))
	}
	return dto.RequestResponse{
		ID:            r.ID,
		Type:          r.Type,
		Items:         items,
		ItemsSummary:  strings.Join(parts, ", "),
		Date:          r.Date,
		Status:        r.Status,
		StatusClass:   dto.StatusBadge(r.Status),
		EmployeeEmail: r.EmployeeEmail,
		CanDecide:     viewerIsAdmin && r.Status == entity.StatusPending,
	}
}
