package entity

// Database agrupa las cuatro colecciones del portal. Es la única fuente de verdad en
// memoria durante la vida del proceso; se serializa completa tras cada mutación.
type Database struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
}

// Normalize garantiza que las cuatro colecciones existan aunque el dato persistido
// venga de una versión anterior con colecciones ausentes.
func (db *Database) Normalize() {
	if db.Accounts == nil {
		db.Accounts = []Account{}
	}
	if db.Departments == nil {
		db.Departments = []Department{}
	}
	if db.Employees == nil {
		db.Employees = []Employee{}
	}
	if db.Requests == nil {
		db.Requests = []Request{}
	}
}

// FindAccount devuelve un puntero a la cuenta con ese email, o nil si no existe.
func (db *Database) FindAccount(email string) *Account {
	for i := range db.Accounts {
		if db.Accounts[i].Email == email {
			return &db.Accounts[i]
		}
	}
	return nil
}

// AccountIndex devuelve el índice de la cuenta con ese email, o -1.
func (db *Database) AccountIndex(email string) int {
	for i := range db.Accounts {
		if db.Accounts[i].Email == email {
			return i
		}
	}
	return -1
}

// Seed construye la base de datos inicial: una cuenta admin verificada y dos
// departamentos, sin empleados ni solicitudes.
func Seed() *Database {
	return &Database{
		Accounts: []Account{{
			FirstName: "Admin",
			LastName:  "User",
			Email:     "admin@example.com",
			Password:  "Password123!",
			Role:      RoleAdmin,
			Verified:  true,
		}},
		Departments: []Department{
			{Name: "Engineering", Description: "Tech team"},
			{Name: "HR", Description: "People ops"},
		},
		Employees: []Employee{},
		Requests:  []Request{},
	}
}
