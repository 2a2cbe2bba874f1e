package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Intranet-api/internal/application/dto"
	"github.com/jhoicas/Intranet-api/internal/application/usecase"
	"github.com/jhoicas/Intranet-api/internal/domain"
	"github.com/jhoicas/Intranet-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Departamentos
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: crear "Sales" con descripción vacía → el listado pasa de 2 a 3 y la
// descripción guardada es la por defecto.
func TestDepartmentCreate_DescripcionVacia_UsaLaPorDefecto(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewDepartmentUseCase(store)

	out, err := uc.Create(dto.SaveDepartmentRequest{Name: "Sales"})
	require.NoError(t, err)
	assert.Equal(t, usecase.DefaultDescription, out.Description)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "Engineering", list.Items[0].Name)
	assert.Equal(t, "HR", list.Items[1].Name)
	assert.Equal(t, "Sales", list.Items[2].Name)
}

func TestDepartmentUpdate_ReemplazaEnElIndice(t *testing.T) {
	uc := usecase.NewDepartmentUseCase(newTestStore(t))

	out, err := uc.Update(1, dto.SaveDepartmentRequest{Name: "People", Description: "Gente y cultura"})
	require.NoError(t, err)
	assert.Equal(t, "People", out.Name)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "People", list.Items[1].Name)
	assert.Equal(t, "Gente y cultura", list.Items[1].Description)
}

func TestDepartmentUpdate_IndiceFueraDeRango_Retorna404(t *testing.T) {
	uc := usecase.NewDepartmentUseCase(newTestStore(t))
	_, err := uc.Update(9, dto.SaveDepartmentRequest{Name: "Nada"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Eliminar un departamento no toca a los empleados que lo referencian por nombre:
// la referencia queda colgante a propósito.
func TestDepartmentDelete_DejaReferenciasColgantes(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewDepartmentUseCase(store)

	err := store.Update(func(db *entity.Database) error {
		db.Employees = append(db.Employees, entity.Employee{
			ID: "EMP-101", Email: "admin@example.com", Position: "Dev", Department: "Engineering",
		})
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(0)) // Engineering

	err = store.View(func(db *entity.Database) error {
		require.Len(t, db.Departments, 1)
		assert.Equal(t, "HR", db.Departments[0].Name)
		require.Len(t, db.Employees, 1)
		assert.Equal(t, "Engineering", db.Employees[0].Department)
		return nil
	})
	require.NoError(t, err)
}

// Descripción vacía en datos antiguos se muestra con el fallback de pantalla.
func TestDepartmentList_DescripcionVaciaEnDatosViejos_Fallback(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewDepartmentUseCase(store)

	err := store.Update(func(db *entity.Database) error {
		db.Departments = append(db.Departments, entity.Department{Name: "Legacy"})
		return nil
	})
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "General Department", list.Items[2].Description)
}
