// internal/adapters/out/firestore/contact_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	contactdom "zapateria/internal/domain/contact"
)

// ContactRepositoryFS implements contact.RepositoryPort
// (collection: contact_messages, write-only sink).
type ContactRepositoryFS struct {
	Client *firestore.Client
}

func NewContactRepositoryFS(client *firestore.Client) *ContactRepositoryFS {
	return &ContactRepositoryFS{Client: client}
}

func (r *ContactRepositoryFS) Create(ctx context.Context, m contactdom.Mensaje) (contactdom.Mensaje, error) {
	if r == nil || r.Client == nil {
		return contactdom.Mensaje{}, errors.New("contact_repository_fs: firestore client is nil")
	}

	if strings.TrimSpace(m.ID) == "" {
		m.ID = uuid.NewString()
	}

	_, err := r.Client.Collection("contact_messages").Doc(m.ID).Set(ctx, contactDoc{
		ID:     m.ID,
		Nombre: m.Nombre,
		Correo: m.Correo,
		Texto:  m.Texto,
		Fecha:  m.Fecha,
	})
	if err != nil {
		return contactdom.Mensaje{}, err
	}
	return m, nil
}

type contactDoc struct {
	ID     string    `firestore:"id"`
	Nombre string    `firestore:"nombre"`
	Correo string    `firestore:"correo"`
	Texto  string    `firestore:"texto"`
	Fecha  time.Time `firestore:"fecha"`
}
