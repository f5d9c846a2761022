// internal/domain/contact/entity.go
package contact

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrInvalidMensaje = errors.New("contact: invalid mensaje")

// Mensaje is one document of the "contact_messages" collection.
// Pure write-only form sink, no logic behind it.
type Mensaje struct {
	ID     string    `json:"id" firestore:"id"`
	Nombre string    `json:"nombre" firestore:"nombre"`
	Correo string    `json:"correo" firestore:"correo"`
	Texto  string    `json:"texto" firestore:"texto"`
	Fecha  time.Time `json:"fecha" firestore:"fecha"`
}

func New(id, nombre, correo, texto string, now time.Time) (Mensaje, error) {
	if strings.TrimSpace(texto) == "" {
		return Mensaje{}, ErrInvalidMensaje
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	return Mensaje{
		ID:     strings.TrimSpace(id),
		Nombre: strings.TrimSpace(nombre),
		Correo: strings.TrimSpace(correo),
		Texto:  strings.TrimSpace(texto),
		Fecha:  now.UTC(),
	}, nil
}

// RepositoryPort is the persistence port for contact messages.
type RepositoryPort interface {
	Create(ctx context.Context, m Mensaje) (Mensaje, error)
}
