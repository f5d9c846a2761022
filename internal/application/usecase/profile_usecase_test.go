// internal/application/usecase/profile_usecase_test.go
package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdom "zapateria/internal/domain/user"
)

type fakeUserRepo struct {
	mu       sync.Mutex
	profiles map[string]userdom.Perfil
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{profiles: map[string]userdom.Perfil{}}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, uid string) (userdom.Perfil, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[uid]
	if !ok {
		return userdom.Perfil{}, userdom.ErrNotFound
	}
	return p, nil
}

func (r *fakeUserRepo) Upsert(ctx context.Context, p userdom.Perfil) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
	return nil
}

func TestProfileGet_CreatesDefaultOnFirstAccess(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewProfileUsecase(repo)

	p, err := uc.Get(context.Background(), "u1", "Ana", "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, "Ana", p.Nombre)
	assert.Equal(t, "ana@example.com", p.Correo)

	stored, err := repo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, p, stored, "the default profile must be persisted")
}

func TestProfileGet_ReturnsStoredProfileUnchanged(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewProfileUsecase(repo)

	first, err := uc.Get(context.Background(), "u1", "Ana", "ana@example.com")
	require.NoError(t, err)

	// Token claims changed since; the stored profile wins.
	again, err := uc.Get(context.Background(), "u1", "Ana María", "otra@example.com")
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestProfileUpdate_AppliesPartialPatch(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewProfileUsecase(repo)

	_, err := uc.Get(context.Background(), "u1", "Ana", "ana@example.com")
	require.NoError(t, err)

	tel := "5555-1234"
	dir := "Zona 1"
	p, err := uc.Update(context.Background(), "u1", userdom.Patch{Telefono: &tel, Direccion: &dir})
	require.NoError(t, err)

	assert.Equal(t, "5555-1234", p.Telefono)
	assert.Equal(t, "Zona 1", p.Direccion)
	assert.Equal(t, "Ana", p.Nombre, "unpatched fields stay put")
	assert.Equal(t, "ana@example.com", p.Correo)
}

func TestProfileUpdate_UnknownUser(t *testing.T) {
	uc := NewProfileUsecase(newFakeUserRepo())
	nombre := "Ana"
	_, err := uc.Update(context.Background(), "ghost", userdom.Patch{Nombre: &nombre})
	assert.ErrorIs(t, err, userdom.ErrNotFound)
}
