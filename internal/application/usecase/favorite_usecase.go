// internal/application/usecase/favorite_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	favdom "zapateria/internal/domain/favorite"
)

// FavoriteUsecase serves the (usuario, producto) membership set.
//
// Membership tests run against a locally cached favorite-id set that is
// fully re-fetched after every mutation (not live-subscribed, not
// incrementally patched) — the cache is a convenience, the store is the
// source of truth.
type FavoriteUsecase struct {
	repo favdom.RepositoryPort
	now  func() time.Time

	mu    sync.RWMutex
	cache map[string]map[string]struct{} // usuarioId -> set of productoId
}

func NewFavoriteUsecase(repo favdom.RepositoryPort) *FavoriteUsecase {
	return &FavoriteUsecase{
		repo:  repo,
		now:   time.Now,
		cache: map[string]map[string]struct{}{},
	}
}

var ErrFavoritesNotConfigured = errors.New("favorites: usecase is not configured")

// IsFavorite answers from the cached set, loading it on first use.
func (u *FavoriteUsecase) IsFavorite(ctx context.Context, usuarioID, productoID string) (bool, error) {
	if u == nil || u.repo == nil {
		return false, ErrFavoritesNotConfigured
	}

	uid := strings.TrimSpace(usuarioID)
	pid := strings.TrimSpace(productoID)

	u.mu.RLock()
	set, ok := u.cache[uid]
	u.mu.RUnlock()

	if !ok {
		var err error
		set, err = u.refresh(ctx, uid)
		if err != nil {
			return false, err
		}
	}

	_, fav := set[pid]
	return fav, nil
}

// Add writes the marker and re-fetches the user's set.
// Idempotent by construction: the deterministic composite key makes a
// repeated add overwrite the same document.
func (u *FavoriteUsecase) Add(ctx context.Context, usuarioID, productoID string) error {
	if u == nil || u.repo == nil {
		return ErrFavoritesNotConfigured
	}

	f, err := favdom.New(usuarioID, productoID, u.now())
	if err != nil {
		return err
	}
	if err := u.repo.Add(ctx, f); err != nil {
		return ClassifyStoreError(err)
	}

	_, err = u.refresh(ctx, f.UsuarioID)
	return err
}

// Remove deletes the marker and re-fetches the user's set.
// Removing an absent favorite is success (no error on the second call).
func (u *FavoriteUsecase) Remove(ctx context.Context, usuarioID, productoID string) error {
	if u == nil || u.repo == nil {
		return ErrFavoritesNotConfigured
	}

	uid := strings.TrimSpace(usuarioID)
	if err := u.repo.Remove(ctx, uid, strings.TrimSpace(productoID)); err != nil {
		return ClassifyStoreError(err)
	}

	_, err := u.refresh(ctx, uid)
	return err
}

// ListProductIDs returns the user's favorited product ids (store read).
func (u *FavoriteUsecase) ListProductIDs(ctx context.Context, usuarioID string) ([]string, error) {
	if u == nil || u.repo == nil {
		return nil, ErrFavoritesNotConfigured
	}
	return u.repo.ListProductIDsByUsuario(ctx, strings.TrimSpace(usuarioID))
}

// refresh replaces the cached set with a full re-fetch.
func (u *FavoriteUsecase) refresh(ctx context.Context, usuarioID string) (map[string]struct{}, error) {
	ids, err := u.repo.ListProductIDsByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, ClassifyStoreError(err)
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	u.mu.Lock()
	u.cache[usuarioID] = set
	u.mu.Unlock()

	return set, nil
}
