package usecase

import (
	"github.com/jhoicas/Intranet-api/internal/application/dto"
	"github.com/jhoicas/Intranet-api/internal/domain"
	"github.com/jhoicas/Intranet-api/internal/domain/entity"
	"github.com/jhoicas/Intranet-api/internal/domain/repository"
)

// DefaultDescription descripción guardada cuando el formulario la deja vacía.
const DefaultDescription = "No description"

// DepartmentUseCase CRUD de departamentos para el panel admin.
type DepartmentUseCase struct {
	store repository.DataStore
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(store repository.DataStore) *DepartmentUseCase {
	return &DepartmentUseCase{store: store}
}

// List devuelve el listado completo de departamentos.
func (uc *DepartmentUseCase) List() (*dto.DepartmentListResponse, error) {
	out := &dto.DepartmentListResponse{Items: []dto.DepartmentResponse{}}
	err := uc.store.View(func(db *entity.Database) error {
		for _, d := range db.Departments {
			out.Items = append(out.Items, toDepartmentResponse(d))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create agrega un departamento. No se valida unicidad del nombre.
func (uc *DepartmentUseCase) Create(in dto.SaveDepartmentRequest) (*dto.DepartmentResponse, error) {
	dept := departmentFromInput(in)
	err := uc.store.Update(func(db *entity.Database) error {
		db.Departments = append(db.Departments, dept)
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toDepartmentResponse(dept)
	return &resp, nil
}

// Update reemplaza el departamento en el índice indicado.
func (uc *DepartmentUseCase) Update(index int, in dto.SaveDepartmentRequest) (*dto.DepartmentResponse, error) {
	dept := departmentFromInput(in)
	err := uc.store.Update(func(db *entity.Database) error {
		if index < 0 || index >= len(db.Departments) {
			return domain.ErrNotFound
		}
		db.Departments[index] = dept
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toDepartmentResponse(dept)
	return &resp, nil
}

// Delete elimina el departamento del índice indicado. Los empleados que lo referencien
// por nombre quedan con la referencia colgante, igual que el comportamiento original.
func (uc *DepartmentUseCase) Delete(index int) error {
	return uc.store.Update(func(db *entity.Database) error {
		if index < 0 || index >= len(db.Departments) {
			return domain.ErrNotFound
		}
		db.Departments = append(db.Departments[:index], db.Departments[index+1:]...)
		return nil
	})
}

func departmentFromInput(in dto.SaveDepartmentRequest) entity.Department {
	desc := in.Description
	if desc == "" {
		desc = DefaultDescription
	}
	return entity.Department{Name: in.Name, Description: desc}
}

func toDepartmentResponse(d entity.Department) dto.DepartmentResponse {
	desc := d.Description
	if desc == "" {
		// Datos antiguos pueden traer la descripción vacía.
		desc = "General Department"
	}
	return dto.DepartmentResponse{Name: d.Name, Description: desc}
}
