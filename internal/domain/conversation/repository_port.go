// internal/domain/conversation/repository_port.go
package conversation

import "context"

// RepositoryPort is the persistence port for the "conversations"
// collection (docId = usuarioId, embedded message array).
type RepositoryPort interface {
	// GetByUsuario returns (Conversation, ErrNotFound) when the thread
	// does not exist yet.
	GetByUsuario(ctx context.Context, usuarioID string) (Conversation, error)

	// Upsert overwrites the full thread document.
	Upsert(ctx context.Context, c Conversation) error

	// ListAll returns every thread (back-office inbox).
	ListAll(ctx context.Context) ([]Conversation, error)
}
