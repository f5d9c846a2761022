// internal/domain/intent/repository_port.go
package intent

import "context"

// RepositoryPort is the persistence port for the single-slot pending
// intent (collection: pending_intents, docId = usuarioId).
type RepositoryPort interface {
	// Stage overwrites the user's slot (a newer intent replaces an older
	// one; there is only ever one in flight).
	Stage(ctx context.Context, i PendingIntent) error

	// Consume reads AND clears the slot as one atomic step, guaranteeing
	// single consumption under concurrent callers.
	// Returns (nil, nil) when the slot is empty.
	Consume(ctx context.Context, usuarioID string) (*PendingIntent, error)
}
