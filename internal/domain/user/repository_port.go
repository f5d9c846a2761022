// internal/domain/user/repository_port.go
package user

import "context"

// RepositoryPort is the persistence port for the "users" collection.
type RepositoryPort interface {
	GetByID(ctx context.Context, uid string) (Perfil, error)
	Upsert(ctx context.Context, p Perfil) error
}

// AdminGatePort answers the back-office authorization question:
// does a document keyed by this uid exist in the "admins" collection?
type AdminGatePort interface {
	IsAdmin(ctx context.Context, uid string) (bool, error)
}
