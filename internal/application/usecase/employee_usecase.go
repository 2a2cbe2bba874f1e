package usecase

import (
	"strconv"

	"github.com/jhoicas/Intranet-api/internal/application/dto"
	"github.com/jhoicas/Intranet-api/internal/domain"
	"github.com/jhoicas/Intranet-api/internal/domain/entity"
	"github.com/jhoicas/Intranet-api/internal/domain/repository"
)

// EmployeeUseCase alta, listado y baja de empleados (no hay edición).
type EmployeeUseCase struct {
	store repository.DataStore
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(store repository.DataStore) *EmployeeUseCase {
	return &EmployeeUseCase{store: store}
}

// List devuelve el listado completo de empleados.
func (uc *EmployeeUseCase) List() (*dto.EmployeeListResponse, error) {
	out := &dto.EmployeeListResponse{Items: []dto.EmployeeResponse{}}
	err := uc.store.View(func(db *entity.Database) error {
		for _, e := range db.Employees {
			out.Items = append(out.Items, toEmployeeResponse(e))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create agrega un empleado. El email debe corresponder a una cuenta existente; si no
// llega ID se genera la etiqueta secuencial EMP-<n>.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	var emp entity.Employee
	err := uc.store.Update(func(db *entity.Database) error {
		if db.FindAccount(in.Email) == nil {
			return domain.ErrAccountNotFound
		}
		id := in.ID
		if id == "" {
			id = "EMP-" + strconv.Itoa(len(db.Employees)+101)
		}
		emp = entity.Employee{
			ID:         id,
			Email:      in.Email,
			Position:   in.Position,
			Department: in.Dept,
			HireDate:   in.HireDate,
		}
		db.Employees = append(db.Employees, emp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(emp)
	return &resp, nil
}

// Delete elimina el empleado del índice indicado.
func (uc *EmployeeUseCase) Delete(index int) error {
	return uc.store.Update(func(db *entity.Database) error {
		if index < 0 || index >= len(db.Employees) {
			return domain.ErrNotFound
		}
		db.Employees = append(db.Employees[:index], db.Employees[index+1:]...)
		return nil
	})
}

func toEmployeeResponse(e entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:       e.ID,
		Email:    e.Email,
		Position: e.Position,
		Dept:     e.Department,
		HireDate: e.HireDate,
	}
}
