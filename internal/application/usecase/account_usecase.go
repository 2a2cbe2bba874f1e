package usecase

import (
	"strings"

	"github.com/jhoicas/Intranet-api/internal/application/dto"
	"github.com/jhoicas/Intranet-api/internal/domain"
	"github.com/jhoicas/Intranet-api/internal/domain/entity"
	"github.com/jhoicas/Intranet-api/internal/domain/repository"
)

// DefaultPassword contraseña que recibe una cuenta creada por admin sin contraseña.
const DefaultPassword = "Password123!"

// AccountUseCase CRUD de cuentas para el panel admin.
type AccountUseCase struct {
	store repository.DataStore
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(store repository.DataStore) *AccountUseCase {
	return &AccountUseCase{store: store}
}

// List devuelve el listado completo de cuentas.
func (uc *AccountUseCase) List() (*dto.AccountListResponse, error) {
	out := &dto.AccountListResponse{Items: []dto.AccountResponse{}}
	err := uc.store.View(func(db *entity.Database) error {
		for _, a := range db.Accounts {
			out.Items = append(out.Items, toAccountResponse(a))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create agrega una cuenta. Contraseña vacía usa el valor por defecto del demo; el
// email debe ser único en la colección.
func (uc *AccountUseCase) Create(in dto.SaveAccountRequest) (*dto.AccountResponse, error) {
	acct := accountFromInput(in)
	err := uc.store.Update(func(db *entity.Database) error {
		if db.FindAccount(acct.Email) != nil {
			return domain.ErrEmailAlreadyExists
		}
		db.Accounts = append(db.Accounts, acct)
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toAccountResponse(acct)
	return &resp, nil
}

// Update reemplaza la cuenta en el índice indicado (el "editing index" del formulario
// admin vive en el cliente; aquí llega explícito).
func (uc *AccountUseCase) Update(index int, in dto.SaveAccountRequest) (*dto.AccountResponse, error) {
	acct := accountFromInput(in)
	err := uc.store.Update(func(db *entity.Database) error {
		if index < 0 || index >= len(db.Accounts) {
			return domain.ErrNotFound
		}
		for i := range db.Accounts {
			if i != index && db.Accounts[i].Email == acct.Email {
				return domain.ErrEmailAlreadyExists
			}
		}
		db.Accounts[index] = acct
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toAccountResponse(acct)
	return &resp, nil
}

// Delete elimina la cuenta del índice indicado. La cuenta de la identidad en sesión no
// puede eliminarse a sí misma.
func (uc *AccountUseCase) Delete(actorEmail string, index int) error {
	return uc.store.Update(func(db *entity.Database) error {
		if index < 0 || index >= len(db.Accounts) {
			return domain.ErrNotFound
		}
		if db.Accounts[index].Email == actorEmail {
			return domain.ErrSelfDeletion
		}
		db.Accounts = append(db.Accounts[:index], db.Accounts[index+1:]...)
		return nil
	})
}

func accountFromInput(in dto.SaveAccountRequest) entity.Account {
	password := in.Password
	if password == "" {
		password = DefaultPassword
	}
	role := strings.ToLower(in.Role)
	if role == "" {
		role = entity.RoleUser
	}
	return entity.Account{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  password,
		Role:      role,
		Verified:  in.Verified,
	}
}

func toAccountResponse(a entity.Account) dto.AccountResponse {
	return dto.AccountResponse{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		FullName:  a.FullName(),
		Email:     a.Email,
		Role:      a.Role,
		RoleClass: dto.RoleBadge(a.Role),
		Verified:  a.Verified,
	}
}
