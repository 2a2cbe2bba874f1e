package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/jhoicas/Intranet-api/internal/domain"
	"github.com/jhoicas/Intranet-api/internal/domain/entity"
	"github.com/jhoicas/Intranet-api/internal/domain/repository"
	"github.com/jhoicas/Intranet-api/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newStoreAt(t *testing.T, path string) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(path)
	require.NoError(t, err, "el store debe abrir sin error")
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "intranet.db")
}

// writeRawPayload escribe un blob arbitrario bajo una clave, simulando datos
// persistidos por una versión anterior (o corruptos).
func writeRawPayload(t *testing.T, path, key string, payload []byte) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS state (key TEXT PRIMARY KEY, payload BLOB NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO state(key, payload) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
		key, payload,
	)
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Seed y carga
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: primer arranque con almacenamiento vacío → seed con 1 cuenta admin,
// 2 departamentos, 0 empleados y 0 solicitudes.
func TestOpen_SinDatos_InstalaSeed(t *testing.T) {
	s := newStoreAt(t, testPath(t))

	err := s.View(func(db *entity.Database) error {
		require.Len(t, db.Accounts, 1)
		assert.Equal(t, "admin@example.com", db.Accounts[0].Email)
		assert.Equal(t, entity.RoleAdmin, db.Accounts[0].Role)
		assert.True(t, db.Accounts[0].Verified, "la cuenta seed debe estar verificada")
		assert.Len(t, db.Departments, 2)
		assert.Empty(t, db.Employees)
		assert.Empty(t, db.Requests)
		return nil
	})
	require.NoError(t, err)
}

// Guardar y volver a cargar debe dar un store estructuralmente igual.
func TestStore_RoundTrip(t *testing.T) {
	path := testPath(t)
	s := newStoreAt(t, path)

	err := s.Update(func(db *entity.Database) error {
		db.Departments = append(db.Departments, entity.Department{Name: "Sales", Description: "Ventas"})
		db.Requests = append(db.Requests, entity.Request{
			Type:          "Supplies",
			Items:         []entity.RequestItem{{Name: "Laptop", Qty: 1}},
			Status:        entity.StatusPending,
			Date:          "2026-08-30",
			EmployeeEmail: "admin@example.com",
		})
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened := newStoreAt(t, path)
	err = reopened.View(func(db *entity.Database) error {
		assert.Len(t, db.Accounts, 1)
		assert.Len(t, db.Departments, 3)
		assert.Len(t, db.Requests, 1)
		assert.Equal(t, "Laptop", db.Requests[0].Items[0].Name)
		assert.Equal(t, 1, db.Requests[0].Items[0].Qty)
		assert.Equal(t, "admin@example.com", db.Requests[0].EmployeeEmail)
		return nil
	})
	require.NoError(t, err)
}

// Datos antiguos sin alguna colección → se rellena con slice vacío al cargar.
func TestOpen_ColeccionesFaltantes_SeRellenan(t *testing.T) {
	path := testPath(t)
	old := []byte(`{"accounts":[{"first":"Ana","last":"Ruiz","email":"ana@x.com","password":"secret1","role":"user","verified":true}]}`)
	writeRawPayload(t, path, repository.KeyDatabase, old)

	s := newStoreAt(t, path)
	err := s.View(func(db *entity.Database) error {
		require.Len(t, db.Accounts, 1)
		assert.Equal(t, "ana@x.com", db.Accounts[0].Email)
		assert.NotNil(t, db.Departments)
		assert.NotNil(t, db.Employees)
		assert.NotNil(t, db.Requests)
		assert.Empty(t, db.Departments)
		return nil
	})
	require.NoError(t, err)
}

// Blob corrupto → warning y re-seed (el demo arranca siempre).
func TestOpen_DatoCorrupto_ReSiembra(t *testing.T) {
	path := testPath(t)
	writeRawPayload(t, path, repository.KeyDatabase, []byte(`{esto no es json`))

	s := newStoreAt(t, path)
	err := s.View(func(db *entity.Database) error {
		require.Len(t, db.Accounts, 1)
		assert.Equal(t, "admin@example.com", db.Accounts[0].Email)
		return nil
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update y claves auxiliares
// ──────────────────────────────────────────────────────────────────────────────

// Si la función de Update falla, no se persiste nada.
func TestUpdate_ConError_NoPersiste(t *testing.T) {
	path := testPath(t)
	s := newStoreAt(t, path)

	err := s.Update(func(db *entity.Database) error {
		return domain.ErrInvalidInput
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, s.Close())
	reopened := newStoreAt(t, path)
	err = reopened.View(func(db *entity.Database) error {
		assert.Len(t, db.Accounts, 1, "el seed debe seguir intacto")
		return nil
	})
	require.NoError(t, err)
}

func TestClavesAuxiliares_SetGetDelete(t *testing.T) {
	s := newStoreAt(t, testPath(t))

	// Ausente → "" sin error
	v, err := s.GetValue(repository.KeyAuthToken)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.SetValue(repository.KeyAuthToken, "bob@x.com"))
	v, err = s.GetValue(repository.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "bob@x.com", v)

	require.NoError(t, s.DeleteValue(repository.KeyAuthToken))
	v, err = s.GetValue(repository.KeyAuthToken)
	require.NoError(t, err)
	assert.Empty(t, v)
}

// Las claves auxiliares no pisan el blob de la base.
func TestClavesAuxiliares_NoInterfierenConLaBase(t *testing.T) {
	s := newStoreAt(t, testPath(t))
	require.NoError(t, s.SetValue(repository.KeyUnverifiedEmail, "bob@x.com"))

	err := s.View(func(db *entity.Database) error {
		assert.Len(t, db.Accounts, 1)
		return nil
	})
	require.NoError(t, err)
}
