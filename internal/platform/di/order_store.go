// internal/platform/di/order_store.go
package di

import (
	"context"
	"log"

	dbadapter "zapateria/internal/adapters/out/db"
	"zapateria/internal/domain/common"
	orderdom "zapateria/internal/domain/order"
)

// orderStore is the composite order repository. The document store is
// the system of record; Postgres is a mirrored read model that serves
// the back-office listing with indexed filters and real pagination.
//
// Mirror writes are best-effort: a Postgres failure is logged and never
// fails the flow that already committed to the document store. The
// listing falls back to the document scan when the read model is absent.
type orderStore struct {
	fs orderdom.RepositoryPort
	pg *dbadapter.OrderRepositoryPG // optional
}

func newOrderStore(fs orderdom.RepositoryPort, pg *dbadapter.OrderRepositoryPG) orderdom.RepositoryPort {
	return &orderStore{fs: fs, pg: pg}
}

func (s *orderStore) Create(ctx context.Context, o orderdom.Order) (orderdom.Order, error) {
	created, err := s.fs.Create(ctx, o)
	if err != nil {
		return orderdom.Order{}, err
	}
	if s.pg != nil {
		if _, err := s.pg.Create(ctx, created); err != nil {
			log.Printf("[order_store] WARN: read model insert failed order=%s err=%v", created.ID, err)
		}
	}
	return created, nil
}

func (s *orderStore) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	return s.fs.GetByID(ctx, id)
}

func (s *orderStore) ListByUsuario(ctx context.Context, usuarioID string) ([]orderdom.Order, error) {
	return s.fs.ListByUsuario(ctx, usuarioID)
}

func (s *orderStore) List(ctx context.Context, filter orderdom.Filter, sort common.Sort, page common.Page) (common.PageResult[orderdom.Order], error) {
	if s.pg != nil {
		res, err := s.pg.List(ctx, filter, sort, page)
		if err == nil {
			return res, nil
		}
		log.Printf("[order_store] WARN: read model listing failed, falling back to document store: %v", err)
	}
	return s.fs.List(ctx, filter, sort, page)
}

func (s *orderStore) SetEstado(ctx context.Context, id string, estado orderdom.Estado) error {
	if err := s.fs.SetEstado(ctx, id, estado); err != nil {
		return err
	}
	if s.pg != nil {
		if err := s.pg.SetEstado(ctx, id, estado); err != nil {
			log.Printf("[order_store] WARN: read model estado update failed order=%s err=%v", id, err)
		}
	}
	return nil
}
