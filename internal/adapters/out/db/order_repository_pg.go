// internal/adapters/out/db/order_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"zapateria/internal/domain/common"
	orderdom "zapateria/internal/domain/order"
)

// OrderRepositoryPG is the Postgres read model behind the back-office
// order listing. Filtering and pagination run as indexed SQL instead of
// the document store's full-collection scan; writes mirror what checkout
// persists so both stores hold the same orders.
//
// Schema (migrations/001_orders.sql):
//
//	orders(
//	    id             TEXT PRIMARY KEY,
//	    usuario_id     TEXT NOT NULL,
//	    nombre         TEXT NOT NULL,
//	    direccion      TEXT NOT NULL,
//	    telefono       TEXT NOT NULL,
//	    correo         TEXT NOT NULL DEFAULT '',
//	    metodo_pago    TEXT NOT NULL,
//	    nota           TEXT NOT NULL DEFAULT '',
//	    items          JSONB NOT NULL,
//	    total          DOUBLE PRECISION NOT NULL,
//	    estado         TEXT NOT NULL,
//	    fecha_creacion TIMESTAMPTZ NOT NULL
//	)
type OrderRepositoryPG struct {
	DB *sql.DB
}

func NewOrderRepositoryPG(db *sql.DB) *OrderRepositoryPG {
	return &OrderRepositoryPG{DB: db}
}

const orderColumns = `id, usuario_id, nombre, direccion, telefono, correo, metodo_pago, nota, items, total, estado, fecha_creacion`

// ========================
// RepositoryPort impl
// ========================

func (r *OrderRepositoryPG) Create(ctx context.Context, o orderdom.Order) (orderdom.Order, error) {
	if r == nil || r.DB == nil {
		return orderdom.Order{}, errors.New("order_repository_pg: db is nil")
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return orderdom.Order{}, err
	}

	const q = `
INSERT INTO orders (` + orderColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = r.DB.ExecContext(ctx, q,
		o.ID, o.UsuarioID, o.Nombre, o.Direccion, o.Telefono, o.Correo,
		string(o.MetodoPago), o.Nota, items, o.Total, string(o.Estado), o.FechaCreacion,
	)
	if err != nil {
		return orderdom.Order{}, err
	}
	return o, nil
}

func (r *OrderRepositoryPG) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	if r == nil || r.DB == nil {
		return orderdom.Order{}, errors.New("order_repository_pg: db is nil")
	}

	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1`

	row := r.DB.QueryRowContext(ctx, q, strings.TrimSpace(id))
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return orderdom.Order{}, orderdom.ErrNotFound
		}
		return orderdom.Order{}, err
	}
	return o, nil
}

func (r *OrderRepositoryPG) ListByUsuario(ctx context.Context, usuarioID string) ([]orderdom.Order, error) {
	if r == nil || r.DB == nil {
		return nil, errors.New("order_repository_pg: db is nil")
	}

	uid := strings.TrimSpace(usuarioID)
	if uid == "" {
		return nil, orderdom.ErrInvalidUsuarioID
	}

	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE usuario_id = $1
ORDER BY fecha_creacion DESC`

	rows, err := r.DB.QueryContext(ctx, q, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []orderdom.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrderRepositoryPG) List(ctx context.Context, filter orderdom.Filter, sort common.Sort, page common.Page) (common.PageResult[orderdom.Order], error) {
	if r == nil || r.DB == nil {
		return common.PageResult[orderdom.Order]{}, errors.New("order_repository_pg: db is nil")
	}

	where, args := buildOrderWhere(filter)
	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}

	orderBy := buildOrderOrderBy(sort)

	pageNum, perPage, offset := common.NormalizePage(page.Number, page.PerPage, 20, 100)

	// Count
	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders "+whereSQL, args...).Scan(&total); err != nil {
		return common.PageResult[orderdom.Order]{}, err
	}

	// Data
	q := fmt.Sprintf(`
SELECT `+orderColumns+`
FROM orders
%s
%s
LIMIT $%d OFFSET $%d
`, whereSQL, orderBy, len(args)+1, len(args)+2)

	args = append(args, perPage, offset)
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return common.PageResult[orderdom.Order]{}, err
	}
	defer rows.Close()

	items := make([]orderdom.Order, 0, perPage)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return common.PageResult[orderdom.Order]{}, err
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return common.PageResult[orderdom.Order]{}, err
	}

	return common.PageResult[orderdom.Order]{
		Items:      items,
		TotalCount: total,
		TotalPages: common.TotalPages(total, perPage),
		Page:       pageNum,
		PerPage:    perPage,
	}, nil
}

func (r *OrderRepositoryPG) SetEstado(ctx context.Context, id string, estado orderdom.Estado) error {
	if r == nil || r.DB == nil {
		return errors.New("order_repository_pg: db is nil")
	}

	const q = `UPDATE orders SET estado = $2 WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, q, strings.TrimSpace(id), string(estado))
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return orderdom.ErrNotFound
	}
	return nil
}

// ========================
// helpers
// ========================

// buildOrderWhere maps the listing filter to SQL predicates.
// The date range compares calendar days, boundaries included.
func buildOrderWhere(f orderdom.Filter) ([]string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if v := strings.TrimSpace(f.UsuarioID); v != "" {
		add("usuario_id = $%d", v)
	}
	if v := strings.TrimSpace(f.IDContains); v != "" {
		add("id ILIKE '%%' || $%d || '%%'", v)
	}
	if v := strings.TrimSpace(string(f.Estado)); v != "" {
		add("estado = $%d", v)
	}
	if f.Desde != nil {
		add("fecha_creacion::date >= $%d::date", *f.Desde)
	}
	if f.Hasta != nil {
		add("fecha_creacion::date <= $%d::date", *f.Hasta)
	}
	return where, args
}

func buildOrderOrderBy(sort common.Sort) string {
	col := ""
	switch strings.TrimSpace(strings.ToLower(sort.Column)) {
	case "total":
		col = "total"
	case "estado":
		col = "estado"
	case "fechacreacion", "fecha_creacion":
		col = "fecha_creacion"
	}
	if col == "" {
		return "ORDER BY fecha_creacion DESC"
	}
	dir := "DESC"
	if sort.Order == common.SortAsc {
		dir = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s", col, dir)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (orderdom.Order, error) {
	var (
		o          orderdom.Order
		metodoPago string
		estado     string
		itemsRaw   []byte
		created    time.Time
	)
	err := row.Scan(
		&o.ID, &o.UsuarioID, &o.Nombre, &o.Direccion, &o.Telefono, &o.Correo,
		&metodoPago, &o.Nota, &itemsRaw, &o.Total, &estado, &created,
	)
	if err != nil {
		return orderdom.Order{}, err
	}

	o.MetodoPago = orderdom.MetodoPago(metodoPago)
	o.Estado = orderdom.Estado(estado)
	o.FechaCreacion = created

	if len(itemsRaw) > 0 {
		if err := json.Unmarshal(itemsRaw, &o.Items); err != nil {
			return orderdom.Order{}, fmt.Errorf("order_repository_pg: decode items: %w", err)
		}
	}
	return o, nil
}
