// internal/application/usecase/fakes_test.go
package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	cartdom "zapateria/internal/domain/cart"
	"zapateria/internal/domain/common"
	orderdom "zapateria/internal/domain/order"
	productdom "zapateria/internal/domain/product"
)

// ============================================================
// In-memory fakes shared across usecase tests
// ============================================================

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]productdom.Product

	// hooks for interleaving control (optional)
	beforeSave func()
	afterGet   func()

	saveCount int
}

func newFakeProductRepo(ps ...productdom.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]productdom.Product{}}
	for _, p := range ps {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if strings.TrimSpace(p.ID) == "" {
		p.ID = fmt.Sprintf("prod-%d", len(r.products)+1)
	}
	r.products[p.ID] = p
	return p, nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	r.mu.Lock()
	p, ok := r.products[id]
	r.mu.Unlock()
	if !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	if r.afterGet != nil {
		r.afterGet()
	}
	return cloneProduct(p), nil
}

func (r *fakeProductRepo) Update(ctx context.Context, id string, patch productdom.Patch) (productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	if patch.Nombre != nil {
		p.Nombre = *patch.Nombre
	}
	if patch.Precio != nil {
		p.Precio = *patch.Precio
	}
	if patch.StockPorTalla != nil {
		p.StockPorTalla = *patch.StockPorTalla
		p.RecomputeStock()
	}
	r.products[id] = p
	return cloneProduct(p), nil
}

func (r *fakeProductRepo) Save(ctx context.Context, p productdom.Product) error {
	if r.beforeSave != nil {
		r.beforeSave()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCount++
	r.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter productdom.Filter, sort common.Sort, page common.Page) (common.PageResult[productdom.Product], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []productdom.Product
	for _, p := range r.products {
		items = append(items, cloneProduct(p))
	}
	return common.PageResult[productdom.Product]{
		Items:      items,
		TotalCount: len(items),
		TotalPages: 1,
		Page:       1,
		PerPage:    len(items),
	}, nil
}

func (r *fakeProductRepo) stockOf(id, talla string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id].StockPorTalla[talla]
}

func cloneProduct(p productdom.Product) productdom.Product {
	c := p
	c.StockPorTalla = make(map[string]int, len(p.StockPorTalla))
	for k, v := range p.StockPorTalla {
		c.StockPorTalla[k] = v
	}
	c.TallaDisponible = append([]string(nil), p.TallaDisponible...)
	c.Imagenes = append([]string(nil), p.Imagenes...)
	return c
}

// ------------------------------------------------------------

type fakeCartRepo struct {
	mu      sync.Mutex
	lines   map[string]cartdom.Line
	deleted []string
	nextID  int

	deleteErr error
}

func newFakeCartRepo(lines ...cartdom.Line) *fakeCartRepo {
	r := &fakeCartRepo{lines: map[string]cartdom.Line{}}
	for _, l := range lines {
		r.lines[l.ID] = l
	}
	return r
}

func (r *fakeCartRepo) Create(ctx context.Context, l cartdom.Line) (cartdom.Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if strings.TrimSpace(l.ID) == "" {
		r.nextID++
		l.ID = fmt.Sprintf("line-%d", r.nextID)
	}
	r.lines[l.ID] = l
	return l, nil
}

func (r *fakeCartRepo) GetByID(ctx context.Context, id string) (cartdom.Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lines[id]
	if !ok {
		return cartdom.Line{}, cartdom.ErrNotFound
	}
	return l, nil
}

func (r *fakeCartRepo) UpdateCantidad(ctx context.Context, id string, cantidad int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lines[id]
	if !ok {
		return cartdom.ErrNotFound
	}
	l.Cantidad = cantidad
	r.lines[id] = l
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.lines, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeCartRepo) ListByUsuario(ctx context.Context, usuarioID string) ([]cartdom.Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []cartdom.Line
	for _, l := range r.lines {
		if l.UsuarioID == usuarioID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeCartRepo) Watch(ctx context.Context, usuarioID string) (<-chan cartdom.Update, error) {
	ch := make(chan cartdom.Update, 1)
	lines, _ := r.ListByUsuario(ctx, usuarioID)
	ch <- cartdom.Update{Lines: lines}
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

// ------------------------------------------------------------

type fakeOrderRepo struct {
	mu      sync.Mutex
	orders  map[string]orderdom.Order
	nextID  int
	created []orderdom.Order

	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]orderdom.Order{}}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o orderdom.Order) (orderdom.Order, error) {
	if r.createErr != nil {
		return orderdom.Order{}, r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if strings.TrimSpace(o.ID) == "" {
		r.nextID++
		o.ID = fmt.Sprintf("order-%d", r.nextID)
	}
	r.orders[o.ID] = o
	r.created = append(r.created, o)
	return o, nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) ListByUsuario(ctx context.Context, usuarioID string) ([]orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []orderdom.Order
	for _, o := range r.orders {
		if o.UsuarioID == usuarioID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, filter orderdom.Filter, sort common.Sort, page common.Page) (common.PageResult[orderdom.Order], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []orderdom.Order
	for _, o := range r.orders {
		if filter.Matches(o) {
			items = append(items, o)
		}
	}
	return common.PageResult[orderdom.Order]{
		Items:      items,
		TotalCount: len(items),
		TotalPages: 1,
		Page:       1,
		PerPage:    len(items),
	}, nil
}

func (r *fakeOrderRepo) SetEstado(ctx context.Context, id string, estado orderdom.Estado) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return orderdom.ErrNotFound
	}
	o.Estado = estado
	r.orders[id] = o
	return nil
}

// ------------------------------------------------------------

type fakeNotifier struct {
	mu       sync.Mutex
	notified []orderdom.Order
	err      error
}

func (n *fakeNotifier) NotifyNewOrder(ctx context.Context, o orderdom.Order) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.notified = append(n.notified, o)
	return nil
}
