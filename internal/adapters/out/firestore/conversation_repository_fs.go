// internal/adapters/out/firestore/conversation_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	convdom "zapateria/internal/domain/conversation"
)

// ConversationRepositoryFS implements conversation.RepositoryPort.
//
// Collection design:
// - collection: conversations
// - docId: usuarioId
// - mensajes: embedded array, rewritten whole on Upsert (append and bulk
//   read-flag flips both go through the full-document overwrite)
type ConversationRepositoryFS struct {
	Client *firestore.Client
}

func NewConversationRepositoryFS(client *firestore.Client) *ConversationRepositoryFS {
	return &ConversationRepositoryFS{Client: client}
}

func (r *ConversationRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("conversations")
}

func (r *ConversationRepositoryFS) GetByUsuario(ctx context.Context, usuarioID string) (convdom.Conversation, error) {
	if r == nil || r.Client == nil {
		return convdom.Conversation{}, errors.New("conversation_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(usuarioID)
	if uid == "" {
		return convdom.Conversation{}, convdom.ErrInvalidUsuarioID
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return convdom.Conversation{}, convdom.ErrNotFound
		}
		return convdom.Conversation{}, err
	}

	return conversationFromSnapshot(snap), nil
}

func (r *ConversationRepositoryFS) Upsert(ctx context.Context, c convdom.Conversation) error {
	if r == nil || r.Client == nil {
		return errors.New("conversation_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(c.UsuarioID)
	if uid == "" {
		return convdom.ErrInvalidUsuarioID
	}

	_, err := r.col().Doc(uid).Set(ctx, conversationDocFromDomain(c))
	return err
}

func (r *ConversationRepositoryFS) ListAll(ctx context.Context) ([]convdom.Conversation, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("conversation_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []convdom.Conversation
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, conversationFromSnapshot(doc))
	}
	return out, nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type mensajeDoc struct {
	Autor string    `firestore:"autor"`
	Texto string    `firestore:"texto"`
	Fecha time.Time `firestore:"fecha"`
	Leido bool      `firestore:"leido"`
}

type conversationDoc struct {
	ID        string       `firestore:"id"`
	UsuarioID string       `firestore:"usuarioId"`
	Mensajes  []mensajeDoc `firestore:"mensajes"`

	CreadoEn      time.Time `firestore:"creadoEn"`
	ActualizadoEn time.Time `firestore:"actualizadoEn"`
}

func conversationDocFromDomain(c convdom.Conversation) conversationDoc {
	msgs := make([]mensajeDoc, 0, len(c.Mensajes))
	for _, m := range c.Mensajes {
		msgs = append(msgs, mensajeDoc{
			Autor: string(m.Autor),
			Texto: m.Texto,
			Fecha: m.Fecha,
			Leido: m.Leido,
		})
	}
	return conversationDoc{
		ID:            c.ID,
		UsuarioID:     c.UsuarioID,
		Mensajes:      msgs,
		CreadoEn:      c.CreadoEn,
		ActualizadoEn: c.ActualizadoEn,
	}
}

func conversationFromSnapshot(snap *firestore.DocumentSnapshot) convdom.Conversation {
	raw := snap.Data()
	c := convdom.Conversation{
		ID:        snap.Ref.ID,
		UsuarioID: snap.Ref.ID,
		Mensajes:  []convdom.Mensaje{},
	}
	if raw == nil {
		return c
	}

	if t, ok := asTime(raw["creadoEn"]); ok {
		c.CreadoEn = t
	}
	if t, ok := asTime(raw["actualizadoEn"]); ok {
		c.ActualizadoEn = t
	}

	msgsRaw, ok := raw["mensajes"].([]any)
	if !ok {
		return c
	}
	for _, e := range msgsRaw {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		msg := convdom.Mensaje{
			Autor: convdom.Autor(strings.TrimSpace(asString(m["autor"]))),
			Texto: asString(m["texto"]),
		}
		if t, ok := asTime(m["fecha"]); ok {
			msg.Fecha = t
		}
		if b, ok := m["leido"].(bool); ok {
			msg.Leido = b
		}
		c.Mensajes = append(c.Mensajes, msg)
	}
	return c
}
