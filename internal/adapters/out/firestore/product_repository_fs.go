// internal/adapters/out/firestore/product_repository_fs.go
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
	productdom "zapateria/internal/domain/product"
)

// ProductRepositoryFS implements product.RepositoryPort using Firestore.
//
// Collection design:
// - collection: products
// - docId: product id (uuid)
// - stockPorTalla is parsed from snap.Data() for backward compatibility
//   (older docs may carry counts as float64)
type ProductRepositoryFS struct {
	Client *firestore.Client
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("products")
}

func (r *ProductRepositoryFS) Create(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	if r == nil || r.Client == nil {
		return productdom.Product{}, errors.New("product_repository_fs: firestore client is nil")
	}

	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}

	_, err := r.col().Doc(p.ID).Set(ctx, productDocFromDomain(p))
	if err != nil {
		return productdom.Product{}, err
	}
	return p, nil
}

func (r *ProductRepositoryFS) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	if r == nil || r.Client == nil {
		return productdom.Product{}, errors.New("product_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, productdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, err
	}

	return productFromSnapshot(snap), nil
}

func (r *ProductRepositoryFS) Update(ctx context.Context, id string, patch productdom.Patch) (productdom.Product, error) {
	if r == nil || r.Client == nil {
		return productdom.Product{}, errors.New("product_repository_fs: firestore client is nil")
	}

	p, err := r.GetByID(ctx, id)
	if err != nil {
		return productdom.Product{}, err
	}

	if patch.Nombre != nil {
		p.Nombre = strings.TrimSpace(*patch.Nombre)
	}
	if patch.Descripcion != nil {
		p.Descripcion = strings.TrimSpace(*patch.Descripcion)
	}
	if patch.Precio != nil {
		p.Precio = *patch.Precio
	}
	if patch.Categoria != nil {
		p.Categoria = strings.TrimSpace(*patch.Categoria)
	}
	if patch.Genero != nil {
		p.Genero = strings.TrimSpace(*patch.Genero)
	}
	if patch.Material != nil {
		p.Material = strings.TrimSpace(*patch.Material)
	}
	if patch.TipoSuela != nil {
		p.TipoSuela = strings.TrimSpace(*patch.TipoSuela)
	}
	if patch.ImagenURL != nil {
		p.ImagenURL = strings.TrimSpace(*patch.ImagenURL)
	}
	if patch.Imagenes != nil {
		p.Imagenes = *patch.Imagenes
	}
	if patch.StockPorTalla != nil {
		p.StockPorTalla = map[string]int{}
		for k, v := range *patch.StockPorTalla {
			k = strings.TrimSpace(k)
			if k == "" {
				continue
			}
			if v < 0 {
				v = 0
			}
			p.StockPorTalla[k] = v
		}
		// the denormalized total and the offered-size list follow the map
		p.RecomputeStock()
		p.TallaDisponible = sortedKeys(p.StockPorTalla)
	}

	if err := r.Save(ctx, p); err != nil {
		return productdom.Product{}, err
	}
	return p, nil
}

// Save overwrites the full document. This is the write half of the
// inventory read-modify-write: last-writer-wins on the whole stock map.
func (r *ProductRepositoryFS) Save(ctx context.Context, p productdom.Product) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}
	if strings.TrimSpace(p.ID) == "" {
		return productdom.ErrInvalidID
	}

	_, err := r.col().Doc(p.ID).Set(ctx, productDocFromDomain(p))
	return err
}

func (r *ProductRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	_, err := r.col().Doc(id).Delete(ctx)
	return err
}

func (r *ProductRepositoryFS) List(
	ctx context.Context,
	filter productdom.Filter,
	sortSpec common.Sort,
	page common.Page,
) (common.PageResult[productdom.Product], error) {
	if r == nil || r.Client == nil {
		return common.PageResult[productdom.Product]{}, errors.New("product_repository_fs: firestore client is nil")
	}

	pageNum, perPage, offset := common.NormalizePage(page.Number, page.PerPage, 50, 200)

	q := r.col().Query
	if c := strings.TrimSpace(filter.Categoria); c != "" {
		q = q.Where("categoria", "==", c)
	}
	if g := strings.TrimSpace(filter.Genero); g != "" {
		q = q.Where("genero", "==", g)
	}

	it := q.Documents(ctx)
	defer it.Stop()

	search := strings.ToLower(strings.TrimSpace(filter.SearchQuery))

	var all []productdom.Product
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return common.PageResult[productdom.Product]{}, err
		}

		p := productFromSnapshot(doc)
		if search != "" && !strings.Contains(strings.ToLower(p.Nombre), search) {
			continue
		}
		if filter.OnlyInStock && p.Stock <= 0 {
			continue
		}
		all = append(all, p)
	}

	applyProductSort(all, sortSpec)

	total := len(all)
	items := pageSlice(all, offset, perPage)

	return common.PageResult[productdom.Product]{
		Items:      items,
		TotalCount: total,
		TotalPages: common.TotalPages(total, perPage),
		Page:       pageNum,
		PerPage:    perPage,
	}, nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type productDoc struct {
	ID          string  `firestore:"id"`
	Nombre      string  `firestore:"nombre"`
	Descripcion string  `firestore:"descripcion"`
	Precio      float64 `firestore:"precio"`

	Categoria string `firestore:"categoria"`
	Genero    string `firestore:"genero"`
	Material  string `firestore:"material"`
	TipoSuela string `firestore:"tipoSuela"`

	ImagenURL string   `firestore:"imagenUrl"`
	Imagenes  []string `firestore:"imagenes"`

	TallaDisponible []string       `firestore:"tallaDisponible"`
	StockPorTalla   map[string]int `firestore:"stockPorTalla"`
	Stock           int            `firestore:"stock"`

	CreadoPor     string    `firestore:"creadoPor"`
	FechaCreacion time.Time `firestore:"fechaCreacion"`
}

func productDocFromDomain(p productdom.Product) productDoc {
	return productDoc{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,

		Categoria: p.Categoria,
		Genero:    p.Genero,
		Material:  p.Material,
		TipoSuela: p.TipoSuela,

		ImagenURL: p.ImagenURL,
		Imagenes:  p.Imagenes,

		TallaDisponible: p.TallaDisponible,
		StockPorTalla:   p.StockPorTalla,
		Stock:           p.Stock,

		CreadoPor:     p.CreadoPor,
		FechaCreacion: p.FechaCreacion,
	}
}

// productFromSnapshot parses raw document data with defaulting at the
// boundary (missing fields become zero values, loose number types are
// tolerated in stockPorTalla and precio).
func productFromSnapshot(snap *firestore.DocumentSnapshot) productdom.Product {
	raw := snap.Data()
	if raw == nil {
		return productdom.Product{ID: snap.Ref.ID, StockPorTalla: map[string]int{}}
	}

	p := productdom.Product{
		// docId is the source of truth even when the id field is absent
		ID:          snap.Ref.ID,
		Nombre:      strings.TrimSpace(asString(raw["nombre"])),
		Descripcion: asString(raw["descripcion"]),
		Precio:      asFloat(raw["precio"]),

		Categoria: strings.TrimSpace(asString(raw["categoria"])),
		Genero:    strings.TrimSpace(asString(raw["genero"])),
		Material:  strings.TrimSpace(asString(raw["material"])),
		TipoSuela: strings.TrimSpace(asString(raw["tipoSuela"])),

		ImagenURL: strings.TrimSpace(asString(raw["imagenUrl"])),
		Imagenes:  asStringSlice(raw["imagenes"]),

		StockPorTalla: asIntMap(raw["stockPorTalla"]),

		CreadoPor: strings.TrimSpace(asString(raw["creadoPor"])),
	}

	if t, ok := asTime(raw["fechaCreacion"]); ok {
		p.FechaCreacion = t
	}

	if tallas := asStringSlice(raw["tallaDisponible"]); len(tallas) > 0 {
		p.TallaDisponible = tallas
	} else {
		p.TallaDisponible = sortedKeys(p.StockPorTalla)
	}

	// trust the stored denormalized total when present, else recompute
	if v, ok := raw["stock"]; ok {
		p.Stock = asInt(v)
	} else {
		p.RecomputeStock()
	}

	return p
}

// -----------------------------------------
// Helpers
// -----------------------------------------

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func applyProductSort(items []productdom.Product, s common.Sort) {
	desc := s.Order == common.SortDesc
	switch s.Column {
	case "precio":
		sort.SliceStable(items, func(i, j int) bool {
			if desc {
				return items[i].Precio > items[j].Precio
			}
			return items[i].Precio < items[j].Precio
		})
	case "nombre":
		sort.SliceStable(items, func(i, j int) bool {
			if desc {
				return items[i].Nombre > items[j].Nombre
			}
			return items[i].Nombre < items[j].Nombre
		})
	default:
		// newest first by default
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].FechaCreacion.After(items[j].FechaCreacion)
		})
	}
}

func pageSlice[T any](all []T, offset, perPage int) []T {
	if offset >= len(all) {
		return []T{}
	}
	end := offset + perPage
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
