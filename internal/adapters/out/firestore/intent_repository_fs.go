// internal/adapters/out/firestore/intent_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	intentdom "zapateria/internal/domain/intent"
)

// IntentRepositoryFS implements intent.RepositoryPort.
//
// Collection design:
// - collection: pending_intents
// - docId: usuarioId (the single slot)
//
// Consume runs read-then-delete inside RunTransaction so that two
// concurrent consumers cannot both observe the same intent.
type IntentRepositoryFS struct {
	Client *firestore.Client
}

func NewIntentRepositoryFS(client *firestore.Client) *IntentRepositoryFS {
	return &IntentRepositoryFS{Client: client}
}

func (r *IntentRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("pending_intents")
}

func (r *IntentRepositoryFS) Stage(ctx context.Context, i intentdom.PendingIntent) error {
	if r == nil || r.Client == nil {
		return errors.New("intent_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(i.UsuarioID)
	if uid == "" {
		return intentdom.ErrInvalidUsuarioID
	}

	_, err := r.col().Doc(uid).Set(ctx, intentDocFromDomain(i))
	return err
}

func (r *IntentRepositoryFS) Consume(ctx context.Context, usuarioID string) (*intentdom.PendingIntent, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("intent_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(usuarioID)
	if uid == "" {
		return nil, intentdom.ErrInvalidUsuarioID
	}

	ref := r.col().Doc(uid)

	var out *intentdom.PendingIntent
	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		out = nil

		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil // empty slot
			}
			return err
		}

		var doc intentDoc
		if err := snap.DataTo(&doc); err != nil {
			return err
		}

		i := doc.toDomain()
		i.UsuarioID = uid
		out = &i

		return tx.Delete(ref)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type intentDoc struct {
	UsuarioID  string    `firestore:"usuarioId"`
	ProductoID string    `firestore:"productoId"`
	Talla      string    `firestore:"talla"`
	Cantidad   int       `firestore:"cantidad"`
	RedirectTo string    `firestore:"redirectTo"`
	CreadoEn   time.Time `firestore:"creadoEn"`
}

func intentDocFromDomain(i intentdom.PendingIntent) intentDoc {
	return intentDoc(i)
}

func (d intentDoc) toDomain() intentdom.PendingIntent {
	return intentdom.PendingIntent(d)
}
