// internal/adapters/out/firestore/review_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	reviewdom "zapateria/internal/domain/review"
)

// ReviewRepositoryFS implements review.RepositoryPort (collection: reviews).
type ReviewRepositoryFS struct {
	Client *firestore.Client
}

func NewReviewRepositoryFS(client *firestore.Client) *ReviewRepositoryFS {
	return &ReviewRepositoryFS{Client: client}
}

func (r *ReviewRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("reviews")
}

func (r *ReviewRepositoryFS) Create(ctx context.Context, rev reviewdom.Review) (reviewdom.Review, error) {
	if r == nil || r.Client == nil {
		return reviewdom.Review{}, errors.New("review_repository_fs: firestore client is nil")
	}

	if strings.TrimSpace(rev.ID) == "" {
		rev.ID = uuid.NewString()
	}

	_, err := r.col().Doc(rev.ID).Set(ctx, reviewDocFromDomain(rev))
	if err != nil {
		return reviewdom.Review{}, err
	}
	return rev, nil
}

func (r *ReviewRepositoryFS) ListByProducto(ctx context.Context, productoID string) ([]reviewdom.Review, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("review_repository_fs: firestore client is nil")
	}

	pid := strings.TrimSpace(productoID)
	if pid == "" {
		return nil, reviewdom.ErrInvalidProductoID
	}

	it := r.col().Where("productoId", "==", pid).Documents(ctx)
	defer it.Stop()

	var out []reviewdom.Review
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var d reviewDoc
		if err := doc.DataTo(&d); err != nil {
			continue
		}
		rev := d.toDomain()
		rev.ID = doc.Ref.ID
		out = append(out, rev)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Fecha.After(out[j].Fecha)
	})
	return out, nil
}

type reviewDoc struct {
	ID           string    `firestore:"id"`
	ProductoID   string    `firestore:"productoId"`
	UsuarioID    string    `firestore:"usuarioId"`
	Calificacion int       `firestore:"calificacion"`
	Comentario   string    `firestore:"comentario"`
	Fecha        time.Time `firestore:"fecha"`
}

func reviewDocFromDomain(r reviewdom.Review) reviewDoc {
	return reviewDoc(r)
}

func (d reviewDoc) toDomain() reviewdom.Review {
	return reviewdom.Review(d)
}
