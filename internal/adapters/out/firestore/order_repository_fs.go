// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"zapateria/internal/domain/common"
	orderdom "zapateria/internal/domain/order"
)

// OrderRepositoryFS implements order.RepositoryPort using Firestore.
//
// List performs a full collection scan with client-side filtering and
// in-memory pagination — the original access pattern. The Postgres read
// model (adapters/out/db) serves the same port with indexed queries.
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("orders")
}

// Create writes the order as one new document. This is the only atomic
// step of the checkout sequence: the whole doc is written or nothing is.
func (r *OrderRepositoryFS) Create(ctx context.Context, o orderdom.Order) (orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return orderdom.Order{}, errors.New("order_repository_fs: firestore client is nil")
	}

	if strings.TrimSpace(o.ID) == "" {
		o.ID = uuid.NewString()
	}

	_, err := r.col().Doc(o.ID).Create(ctx, orderDocFromDomain(o))
	if err != nil {
		return orderdom.Order{}, err
	}
	return o, nil
}

func (r *OrderRepositoryFS) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return orderdom.Order{}, errors.New("order_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.Order{}, orderdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return orderdom.Order{}, orderdom.ErrNotFound
		}
		return orderdom.Order{}, err
	}

	return orderFromSnapshot(snap), nil
}

func (r *OrderRepositoryFS) ListByUsuario(ctx context.Context, usuarioID string) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(usuarioID)
	if uid == "" {
		return nil, orderdom.ErrInvalidUsuarioID
	}

	it := r.col().Where("usuarioId", "==", uid).Documents(ctx)
	defer it.Stop()

	var out []orderdom.Order
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, orderFromSnapshot(doc))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FechaCreacion.After(out[j].FechaCreacion)
	})
	return out, nil
}

func (r *OrderRepositoryFS) List(
	ctx context.Context,
	filter orderdom.Filter,
	sortSpec common.Sort,
	page common.Page,
) (common.PageResult[orderdom.Order], error) {
	if r == nil || r.Client == nil {
		return common.PageResult[orderdom.Order]{}, errors.New("order_repository_fs: firestore client is nil")
	}

	pageNum, perPage, offset := common.NormalizePage(page.Number, page.PerPage, 50, 200)

	it := r.col().Documents(ctx)
	defer it.Stop()

	var all []orderdom.Order
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return common.PageResult[orderdom.Order]{}, err
		}

		o := orderFromSnapshot(doc)
		if filter.Matches(o) {
			all = append(all, o)
		}
	}

	applyOrderSort(all, sortSpec)

	total := len(all)
	items := pageSlice(all, offset, perPage)

	return common.PageResult[orderdom.Order]{
		Items:      items,
		TotalCount: total,
		TotalPages: common.TotalPages(total, perPage),
		Page:       pageNum,
		PerPage:    perPage,
	}, nil
}

// SetEstado overwrites the status field only.
func (r *OrderRepositoryFS) SetEstado(ctx context.Context, id string, estado orderdom.Estado) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.ErrNotFound
	}

	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "estado", Value: string(estado)},
	})
	if status.Code(err) == codes.NotFound {
		return orderdom.ErrNotFound
	}
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type orderItemDoc struct {
	ProductoID string  `firestore:"productoId"`
	Cantidad   int     `firestore:"cantidad"`
	Talla      string  `firestore:"talla"`
	Nombre     string  `firestore:"nombre"`
	Precio     float64 `firestore:"precio"`
	ImagenURL  string  `firestore:"imagenUrl"`
}

type orderDoc struct {
	ID        string `firestore:"id"`
	UsuarioID string `firestore:"usuarioId"`

	Nombre    string `firestore:"nombre"`
	Direccion string `firestore:"direccion"`
	Telefono  string `firestore:"telefono"`
	Correo    string `firestore:"correo"`

	MetodoPago string `firestore:"metodoPago"`
	Nota       string `firestore:"nota"`

	Items []orderItemDoc `firestore:"items"`
	Total float64        `firestore:"total"`

	Estado        string    `firestore:"estado"`
	FechaCreacion time.Time `firestore:"fechaCreacion"`
}

func orderDocFromDomain(o orderdom.Order) orderDoc {
	items := make([]orderItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDoc{
			ProductoID: it.ProductoID,
			Cantidad:   it.Cantidad,
			Talla:      it.Talla,
			Nombre:     it.Nombre,
			Precio:     it.Precio,
			ImagenURL:  it.ImagenURL,
		})
	}

	return orderDoc{
		ID:        o.ID,
		UsuarioID: o.UsuarioID,

		Nombre:    o.Nombre,
		Direccion: o.Direccion,
		Telefono:  o.Telefono,
		Correo:    o.Correo,

		MetodoPago: string(o.MetodoPago),
		Nota:       o.Nota,

		Items: items,
		Total: o.Total,

		Estado:        string(o.Estado),
		FechaCreacion: o.FechaCreacion,
	}
}

func orderFromSnapshot(snap *firestore.DocumentSnapshot) orderdom.Order {
	raw := snap.Data()
	if raw == nil {
		return orderdom.Order{ID: snap.Ref.ID}
	}

	o := orderdom.Order{
		ID:        snap.Ref.ID,
		UsuarioID: strings.TrimSpace(asString(raw["usuarioId"])),

		Nombre:    strings.TrimSpace(asString(raw["nombre"])),
		Direccion: strings.TrimSpace(asString(raw["direccion"])),
		Telefono:  strings.TrimSpace(asString(raw["telefono"])),
		Correo:    strings.TrimSpace(asString(raw["correo"])),

		MetodoPago: orderdom.MetodoPago(strings.TrimSpace(asString(raw["metodoPago"]))),
		Nota:       asString(raw["nota"]),

		Total:  asFloat(raw["total"]),
		Estado: orderdom.Estado(strings.TrimSpace(asString(raw["estado"]))),
	}

	if t, ok := asTime(raw["fechaCreacion"]); ok {
		o.FechaCreacion = t
	}

	if itemsRaw, ok := raw["items"].([]any); ok {
		for _, e := range itemsRaw {
			m, ok := e.(map[string]any)
			if !ok {
				continue
			}
			o.Items = append(o.Items, orderdom.ItemSnapshot{
				ProductoID: strings.TrimSpace(asString(m["productoId"])),
				Cantidad:   asInt(m["cantidad"]),
				Talla:      strings.TrimSpace(asString(m["talla"])),
				Nombre:     strings.TrimSpace(asString(m["nombre"])),
				Precio:     asFloat(m["precio"]),
				ImagenURL:  strings.TrimSpace(asString(m["imagenUrl"])),
			})
		}
	}

	return o
}

func applyOrderSort(items []orderdom.Order, s common.Sort) {
	desc := s.Order == common.SortDesc
	switch s.Column {
	case "total":
		sort.SliceStable(items, func(i, j int) bool {
			if desc {
				return items[i].Total > items[j].Total
			}
			return items[i].Total < items[j].Total
		})
	case "estado":
		sort.SliceStable(items, func(i, j int) bool {
			if desc {
				return items[i].Estado > items[j].Estado
			}
			return items[i].Estado < items[j].Estado
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].FechaCreacion.After(items[j].FechaCreacion)
		})
	}
}
