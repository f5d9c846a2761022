// internal/application/usecase/profile_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	userdom "zapateria/internal/domain/user"
)

// ProfileUsecase serves the "users" collection (profile management).
type ProfileUsecase struct {
	users userdom.RepositoryPort
	now   func() time.Time
}

func NewProfileUsecase(users userdom.RepositoryPort) *ProfileUsecase {
	return &ProfileUsecase{users: users, now: time.Now}
}

var ErrProfileNotConfigured = errors.New("profile: usecase is not configured")

// Get returns the stored profile, creating a default one on first access
// for an authenticated uid.
func (u *ProfileUsecase) Get(ctx context.Context, uid, nombre, correo string) (userdom.Perfil, error) {
	if u == nil || u.users == nil {
		return userdom.Perfil{}, ErrProfileNotConfigured
	}

	id := strings.TrimSpace(uid)
	p, err := u.users.GetByID(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, userdom.ErrNotFound) {
		return userdom.Perfil{}, ClassifyStoreError(err)
	}

	p, err = userdom.New(id, nombre, correo, u.now())
	if err != nil {
		return userdom.Perfil{}, err
	}
	if err := u.users.Upsert(ctx, p); err != nil {
		return userdom.Perfil{}, ClassifyStoreError(err)
	}
	return p, nil
}

// Update applies a partial profile patch.
func (u *ProfileUsecase) Update(ctx context.Context, uid string, patch userdom.Patch) (userdom.Perfil, error) {
	if u == nil || u.users == nil {
		return userdom.Perfil{}, ErrProfileNotConfigured
	}

	p, err := u.users.GetByID(ctx, strings.TrimSpace(uid))
	if err != nil {
		return userdom.Perfil{}, ClassifyStoreError(err)
	}

	p.Apply(patch, u.now())
	if err := u.users.Upsert(ctx, p); err != nil {
		return userdom.Perfil{}, ClassifyStoreError(err)
	}
	return p, nil
}
