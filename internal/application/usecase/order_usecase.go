// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"zapateria/internal/domain/common"
	orderdom "zapateria/internal/domain/order"
)

// OrderUsecase serves order reads and the staff status overwrite.
//
// Two listing paths exist behind the same port: the Firestore scan with
// client-side filtering (original semantics) and, when wired, the Postgres
// read model with indexed queries and pagination. Filter semantics are
// identical either way (see order.Filter).
type OrderUsecase struct {
	orders orderdom.RepositoryPort
}

func NewOrderUsecase(orders orderdom.RepositoryPort) *OrderUsecase {
	return &OrderUsecase{orders: orders}
}

var ErrOrdersNotConfigured = errors.New("orders: usecase is not configured")

func (u *OrderUsecase) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	if u == nil || u.orders == nil {
		return orderdom.Order{}, ErrOrdersNotConfigured
	}
	o, err := u.orders.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return orderdom.Order{}, ClassifyStoreError(err)
	}
	return o, nil
}

// ListMine returns the customer's own orders (user-id equality filter).
func (u *OrderUsecase) ListMine(ctx context.Context, usuarioID string) ([]orderdom.Order, error) {
	if u == nil || u.orders == nil {
		return nil, ErrOrdersNotConfigured
	}
	return u.orders.ListByUsuario(ctx, strings.TrimSpace(usuarioID))
}

// ListForStaff serves the back-office listing.
func (u *OrderUsecase) ListForStaff(ctx context.Context, filter orderdom.Filter, sort common.Sort, page common.Page) (common.PageResult[orderdom.Order], error) {
	if u == nil || u.orders == nil {
		return common.PageResult[orderdom.Order]{}, ErrOrdersNotConfigured
	}
	return u.orders.List(ctx, filter, sort, page)
}

// SetEstado overwrites the order status. Membership in the enum is
// validated; any transition is allowed.
func (u *OrderUsecase) SetEstado(ctx context.Context, orderID, estado string) error {
	if u == nil || u.orders == nil {
		return ErrOrdersNotConfigured
	}

	e, err := orderdom.ParseEstado(estado)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(orderID)
	if err := u.orders.SetEstado(ctx, id, e); err != nil {
		return ClassifyStoreError(err)
	}
	log.Printf("[order_uc] estado updated order=%s estado=%s", id, e)
	return nil
}
