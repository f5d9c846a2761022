// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "zapateria/internal/domain/cart"
)

// CartRepositoryFS implements cart.RepositoryPort using Firestore.
//
// Collection design:
// - collection: cart
// - one doc per line, docId = line id (uuid)
// - queried by usuarioId equality; Watch rides Query.Snapshots
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("cart")
}

func (r *CartRepositoryFS) Create(ctx context.Context, l cartdom.Line) (cartdom.Line, error) {
	if r == nil || r.Client == nil {
		return cartdom.Line{}, errors.New("cart_repository_fs: firestore client is nil")
	}

	if strings.TrimSpace(l.ID) == "" {
		l.ID = uuid.NewString()
	}

	_, err := r.col().Doc(l.ID).Set(ctx, lineDocFromDomain(l))
	if err != nil {
		return cartdom.Line{}, err
	}
	return l, nil
}

func (r *CartRepositoryFS) GetByID(ctx context.Context, id string) (cartdom.Line, error) {
	if r == nil || r.Client == nil {
		return cartdom.Line{}, errors.New("cart_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return cartdom.Line{}, cartdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return cartdom.Line{}, cartdom.ErrNotFound
		}
		return cartdom.Line{}, err
	}

	return lineFromSnapshot(snap), nil
}

func (r *CartRepositoryFS) UpdateCantidad(ctx context.Context, id string, cantidad int) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return cartdom.ErrNotFound
	}

	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "cantidad", Value: cantidad},
	})
	if status.Code(err) == codes.NotFound {
		return cartdom.ErrNotFound
	}
	return err
}

// Delete removes the line. A missing doc is success: Firestore deletes are
// idempotent, which is exactly the contract the checkout cleanup relies on.
func (r *CartRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	_, err := r.col().Doc(id).Delete(ctx)
	return err
}

func (r *CartRepositoryFS) ListByUsuario(ctx context.Context, usuarioID string) ([]cartdom.Line, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(usuarioID)
	if uid == "" {
		return nil, cartdom.ErrInvalidUsuarioID
	}

	it := r.col().Where("usuarioId", "==", uid).Documents(ctx)
	defer it.Stop()

	var out []cartdom.Line
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, lineFromSnapshot(doc))
	}
	return out, nil
}

// Watch streams the user's full line set on every collection change.
// The goroutine ends (and the channel closes) when ctx is cancelled; a
// stream error is delivered once and the channel closes — callers restart
// by watching again.
func (r *CartRepositoryFS) Watch(ctx context.Context, usuarioID string) (<-chan cartdom.Update, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(usuarioID)
	if uid == "" {
		return nil, cartdom.ErrInvalidUsuarioID
	}

	snaps := r.col().Where("usuarioId", "==", uid).Snapshots(ctx)
	ch := make(chan cartdom.Update, 1)

	go func() {
		defer close(ch)
		defer snaps.Stop()

		for {
			qs, err := snaps.Next()
			if err != nil {
				if ctx.Err() != nil || status.Code(err) == codes.Canceled {
					return
				}
				log.Printf("[cart_repository_fs] watch error usuario=%s err=%v", uid, err)
				select {
				case ch <- cartdom.Update{Err: err}:
				case <-ctx.Done():
				}
				return
			}

			docs, err := qs.Documents.GetAll()
			if err != nil {
				select {
				case ch <- cartdom.Update{Err: err}:
				case <-ctx.Done():
				}
				return
			}

			lines := make([]cartdom.Line, 0, len(docs))
			for _, d := range docs {
				lines = append(lines, lineFromSnapshot(d))
			}

			select {
			case ch <- cartdom.Update{Lines: lines}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type lineDoc struct {
	ID         string `firestore:"id"`
	UsuarioID  string `firestore:"usuarioId"`
	ProductoID string `firestore:"productoId"`

	Talla    string `firestore:"talla"`
	Cantidad int    `firestore:"cantidad"`

	Nombre    string  `firestore:"nombre"`
	Precio    float64 `firestore:"precio"`
	ImagenURL string  `firestore:"imagenUrl"`

	AgregadoEn time.Time `firestore:"agregadoEn"`
}

func lineDocFromDomain(l cartdom.Line) lineDoc {
	return lineDoc{
		ID:         l.ID,
		UsuarioID:  l.UsuarioID,
		ProductoID: l.ProductoID,
		Talla:      l.Talla,
		Cantidad:   l.Cantidad,
		Nombre:     l.Nombre,
		Precio:     l.Precio,
		ImagenURL:  l.ImagenURL,
		AgregadoEn: l.AgregadoEn,
	}
}

func lineFromSnapshot(snap *firestore.DocumentSnapshot) cartdom.Line {
	raw := snap.Data()
	if raw == nil {
		return cartdom.Line{ID: snap.Ref.ID}
	}

	l := cartdom.Line{
		ID:         snap.Ref.ID,
		UsuarioID:  strings.TrimSpace(asString(raw["usuarioId"])),
		ProductoID: strings.TrimSpace(asString(raw["productoId"])),
		Talla:      strings.TrimSpace(asString(raw["talla"])),
		Cantidad:   asInt(raw["cantidad"]),
		Nombre:     strings.TrimSpace(asString(raw["nombre"])),
		Precio:     asFloat(raw["precio"]),
		ImagenURL:  strings.TrimSpace(asString(raw["imagenUrl"])),
	}
	if l.Cantidad < 1 {
		l.Cantidad = 1
	}
	if t, ok := asTime(raw["agregadoEn"]); ok {
		l.AgregadoEn = t
	}
	return l
}
