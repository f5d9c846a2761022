// internal/domain/conversation/entity.go
package conversation

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound         = errors.New("conversation: not found")
	ErrInvalidUsuarioID = errors.New("conversation: invalid usuarioId")
	ErrInvalidAutor     = errors.New("conversation: invalid autor")
	ErrInvalidTexto     = errors.New("conversation: invalid texto")
)

// Autor identifies which side of the support chat wrote a message.
type Autor string

const (
	AutorUsuario Autor = "usuario"
	AutorAdmin   Autor = "admin"
)

// Mensaje is one entry of the embedded append-only message array.
type Mensaje struct {
	Autor Autor     `json:"autor" firestore:"autor"`
	Texto string    `json:"texto" firestore:"texto"`
	Fecha time.Time `json:"fecha" firestore:"fecha"`
	Leido bool      `json:"leido" firestore:"leido"`
}

// Conversation is one document of the "conversations" collection:
// one support thread per user (docId = usuarioId), mutated by appending
// messages and by bulk-flipping read flags when the counterpart views it.
type Conversation struct {
	ID        string    `json:"id" firestore:"id"`
	UsuarioID string    `json:"usuarioId" firestore:"usuarioId"`
	Mensajes  []Mensaje `json:"mensajes" firestore:"mensajes"`

	CreadoEn      time.Time `json:"creadoEn" firestore:"creadoEn"`
	ActualizadoEn time.Time `json:"actualizadoEn" firestore:"actualizadoEn"`
}

// New creates an empty thread for a user.
func New(usuarioID string, now time.Time) (Conversation, error) {
	uid := strings.TrimSpace(usuarioID)
	if uid == "" {
		return Conversation{}, ErrInvalidUsuarioID
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	return Conversation{
		ID:            uid,
		UsuarioID:     uid,
		Mensajes:      []Mensaje{},
		CreadoEn:      now.UTC(),
		ActualizadoEn: now.UTC(),
	}, nil
}

// Append adds a message to the end of the thread (unread).
func (c *Conversation) Append(autor Autor, texto string, now time.Time) error {
	if c == nil {
		return ErrNotFound
	}
	if autor != AutorUsuario && autor != AutorAdmin {
		return ErrInvalidAutor
	}
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return ErrInvalidTexto
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	c.Mensajes = append(c.Mensajes, Mensaje{
		Autor: autor,
		Texto: texto,
		Fecha: now.UTC(),
		Leido: false,
	})
	c.ActualizadoEn = now.UTC()
	return nil
}

// MarkReadFor flips the read flag on every message written by the
// counterpart of viewer. Returns how many flags were flipped.
func (c *Conversation) MarkReadFor(viewer Autor) int {
	if c == nil {
		return 0
	}
	flipped := 0
	for i := range c.Mensajes {
		if c.Mensajes[i].Autor != viewer && !c.Mensajes[i].Leido {
			c.Mensajes[i].Leido = true
			flipped++
		}
	}
	return flipped
}

// UnreadCountFor counts messages addressed to viewer that are still unread.
func (c Conversation) UnreadCountFor(viewer Autor) int {
	n := 0
	for _, m := range c.Mensajes {
		if m.Autor != viewer && !m.Leido {
			n++
		}
	}
	return n
}
