package auth

import (
	"strings"

	"github.com/jhoicas/Intranet-api/internal/application/dto"
	"github.com/jhoicas/Intranet-api/internal/domain"
	"github.com/jhoicas/Intranet-api/internal/domain/entity"
	"github.com/jhoicas/Intranet-api/internal/domain/repository"
	"github.com/jhoicas/Intranet-api/pkg/jwt"
)

// MinPasswordLen longitud mínima de contraseña (registro y reset).
const MinPasswordLen = 6

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de sesión: registro, verificación de email, login, logout,
// restauración de sesión, edición de perfil y reset de contraseña.
type AuthUseCase struct {
	store  repository.DataStore
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store repository.DataStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{store: store, jwtCfg: jwtCfg}
}

// Register crea una cuenta sin verificar con rol user y deja el email pendiente de
// verificación. Falla sin mutar nada si la contraseña es corta o el email ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AccountResponse, error) {
	if len(in.Password) < MinPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}
	acct := entity.Account{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Role:      entity.RoleUser,
		Verified:  false,
	}
	err := uc.store.Update(func(db *entity.Database) error {
		if db.FindAccount(in.Email) != nil {
			return domain.ErrEmailAlreadyExists
		}
		db.Accounts = append(db.Accounts, acct)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := uc.store.SetValue(repository.KeyUnverifiedEmail, in.Email); err != nil {
		return nil, err
	}
	resp := toAccountResponse(acct)
	return &resp, nil
}

// Verify marca como verificada la cuenta cuyo email quedó pendiente tras el registro.
func (uc *AuthUseCase) Verify() (*dto.AccountResponse, error) {
	email, err := uc.store.GetValue(repository.KeyUnverifiedEmail)
	if err != nil {
		return nil, err
	}
	if email == "" {
		return nil, domain.ErrNotFound
	}
	var verified entity.Account
	err = uc.store.Update(func(db *entity.Database) error {
		acct := db.FindAccount(email)
		if acct == nil {
			return domain.ErrNotFound
		}
		acct.Verified = true
		verified = *acct
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := uc.store.DeleteValue(repository.KeyUnverifiedEmail); err != nil {
		return nil, err
	}
	resp := toAccountResponse(verified)
	return &resp, nil
}

// Login autentica solo si existe una cuenta con email y password exactos y verified en
// true. Cualquier otra combinación falla con el mismo error, sin distinguir causa.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	var found *entity.Account
	err := uc.store.View(func(db *entity.Database) error {
		for i := range db.Accounts {
			a := &db.Accounts[i]
			if a.Email == in.Email && a.Password == in.Password && a.Verified {
				cp := *a
				found = &cp
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, found.Email, found.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.store.SetValue(repository.KeyAuthToken, found.Email); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Account: toAccountResponse(*found)}, nil
}

// Logout descarta el token de sesión persistido. El cliente olvida el JWT por su cuenta.
func (uc *AuthUseCase) Logout() error {
	return uc.store.DeleteValue(repository.KeyAuthToken)
}

// RestoreSession resuelve la identidad para un email ya validado por token, sin
// re-verificar la contraseña.
func (uc *AuthUseCase) RestoreSession(email string) (*dto.AccountResponse, error) {
	var found *entity.Account
	err := uc.store.View(func(db *entity.Database) error {
		if a := db.FindAccount(email); a != nil {
			cp := *a
			found = &cp
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, domain.ErrNotFound
	}
	resp := toAccountResponse(*found)
	return &resp, nil
}

// EditProfile muta email y rol de la cuenta en sesión, actualiza el token persistido y
// emite un JWT nuevo (el token lleva el email). El email nuevo debe ser único.
func (uc *AuthUseCase) EditProfile(email string, in dto.EditProfileRequest) (*dto.LoginResponse, error) {
	newRole := strings.ToLower(in.Role)
	var updated entity.Account
	err := uc.store.Update(func(db *entity.Database) error {
		idx := db.AccountIndex(email)
		if idx < 0 {
			return domain.ErrNotFound
		}
		if in.Email != email && db.FindAccount(in.Email) != nil {
			return domain.ErrEmailAlreadyExists
		}
		db.Accounts[idx].Email = in.Email
		db.Accounts[idx].Role = newRole
		updated = db.Accounts[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := uc.store.SetValue(repository.KeyAuthToken, updated.Email); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, updated.Email, updated.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Account: toAccountResponse(updated)}, nil
}

// ResetPassword sobreescribe la contraseña de la cuenta indicada (panel admin).
func (uc *AuthUseCase) ResetPassword(email string, in dto.ResetPasswordRequest) error {
	if len(in.Password) < MinPasswordLen {
		return domain.ErrPasswordTooShort
	}
	return uc.store.Update(func(db *entity.Database) error {
		acct := db.FindAccount(email)
		if acct == nil {
			return domain.ErrAccountNotFound
		}
		acct.Password = in.Password
		return nil
	})
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
