package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // driver sqlite puro Go

	"github.com/jhoicas/Intranet-api/internal/domain/entity"
	"github.com/jhoicas/Intranet-api/internal/domain/repository"
)

var _ repository.DataStore = (*Store)(nil)

// Store persistencia embebida del portal: una tabla clave→blob donde la base completa
// vive serializada como JSON bajo una clave fija, más claves auxiliares planas.
// La base se carga una vez al abrir y se mantiene en memoria; cada Update exitoso
// re-serializa el objeto completo dentro de la misma sección crítica.
type Store struct {
	db  *sql.DB
	mu  sync.Mutex
	mem *entity.Database
}

// Open abre (o crea) el archivo SQLite y carga la base. Si no hay dato persistido se
// instala el seed; si el blob está corrupto se descarta y se re-siembra con un warning.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "intranet.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("crear directorio del store: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("crear tabla state: %w", err)
	}
	s := &Store{db: db}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load lee el blob de la base; ausente → seed, presente → deserializa y normaliza
// colecciones faltantes (migración defensiva de formas antiguas).
func (s *Store) load() error {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM state WHERE key = ?`, repository.KeyDatabase).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.mem = entity.Seed()
		return s.persist()
	case err != nil:
		return fmt.Errorf("leer base: %w", err)
	}

	var mem entity.Database
	if err := json.Unmarshal(payload, &mem); err != nil {
		// Dato ilegible: para un demo vale más una base utilizable que un arranque
		// fallido. Se descarta el blob y se instala el seed.
		log.Warn().Err(err).Msg("base persistida corrupta, re-sembrando")
		s.mem = entity.Seed()
		return s.persist()
	}
	mem.Normalize()
	s.mem = &mem
	return nil
}

// persist serializa la base completa y sobreescribe el blob. Sin escrituras parciales.
func (s *Store) persist() error {
	payload, err := json.Marshal(s.mem)
	if err != nil {
		return fmt.Errorf("serializar base: %w", err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO state(key, payload) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
		repository.KeyDatabase, payload,
	); err != nil {
		return fmt.Errorf("guardar base: %w", err)
	}
	return nil
}

// View ejecuta fn con acceso de solo lectura bajo el lock del store.
func (s *Store) View(fn func(db *entity.Database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.mem)
}

// Update ejecuta fn bajo el lock y persiste la base completa si fn no falla.
func (s *Store) Update(fn func(db *entity.Database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.mem); err != nil {
		return err
	}
	return s.persist()
}

// GetValue lee una clave auxiliar; devuelve "" si no existe.
func (s *Store) GetValue(key string) (string, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM state WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("leer clave %s: %w", key, err)
	}
	return string(payload), nil
}

// SetValue escribe una clave auxiliar plana.
func (s *Store) SetValue(key, value string) error {
	if _, err := s.db.Exec(
		`INSERT INTO state(key, payload) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
		key, []byte(value),
	); err != nil {
		return fmt.Errorf("guardar clave %s: %w", key, err)
	}
	return nil
}

// DeleteValue elimina una clave auxiliar.
func (s *Store) DeleteValue(key string) error {
	if _, err := s.db.Exec(`DELETE FROM state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("eliminar clave %s: %w", key, err)
	}
	return nil
}

// Close cierra el archivo subyacente.
func (s *Store) Close() error {
	return s.db.Close()
}
