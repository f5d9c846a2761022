// internal/adapters/out/firestore/favorite_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	favdom "zapateria/internal/domain/favorite"
)

// FavoriteRepositoryFS implements favorite.RepositoryPort using Firestore.
//
// Collection design:
// - collection: favorites
// - docId: "${usuarioId}_${productoId}" (deterministic composite key)
// The deterministic key makes Add/Remove idempotent: Set overwrites,
// Delete on an absent doc succeeds.
type FavoriteRepositoryFS struct {
	Client *firestore.Client
}

func NewFavoriteRepositoryFS(client *firestore.Client) *FavoriteRepositoryFS {
	return &FavoriteRepositoryFS{Client: client}
}

func (r *FavoriteRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("favorites")
}

func (r *FavoriteRepositoryFS) Add(ctx context.Context, f favdom.Favorite) error {
	if r == nil || r.Client == nil {
		return errors.New("favorite_repository_fs: firestore client is nil")
	}

	docID := favdom.DocID(f.UsuarioID, f.ProductoID)
	_, err := r.col().Doc(docID).Set(ctx, favoriteDoc{
		ID:         docID,
		UsuarioID:  f.UsuarioID,
		ProductoID: f.ProductoID,
		AgregadoEn: f.AgregadoEn,
	})
	return err
}

func (r *FavoriteRepositoryFS) Remove(ctx context.Context, usuarioID, productoID string) error {
	if r == nil || r.Client == nil {
		return errors.New("favorite_repository_fs: firestore client is nil")
	}

	docID := favdom.DocID(usuarioID, productoID)
	if strings.Trim(docID, "_") == "" {
		return nil
	}

	_, err := r.col().Doc(docID).Delete(ctx)
	return err
}

func (r *FavoriteRepositoryFS) ListProductIDsByUsuario(ctx context.Context, usuarioID string) ([]string, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("favorite_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(usuarioID)
	if uid == "" {
		return nil, favdom.ErrInvalidUsuarioID
	}

	it := r.col().Where("usuarioId", "==", uid).Documents(ctx)
	defer it.Stop()

	var out []string
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		pid := strings.TrimSpace(asString(doc.Data()["productoId"]))
		if pid == "" {
			continue
		}
		out = append(out, pid)
	}
	return out, nil
}

type favoriteDoc struct {
	ID         string    `firestore:"id"`
	UsuarioID  string    `firestore:"usuarioId"`
	ProductoID string    `firestore:"productoId"`
	AgregadoEn time.Time `firestore:"agregadoEn"`
}
