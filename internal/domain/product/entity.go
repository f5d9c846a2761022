// internal/domain/product/entity.go
package product

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	ErrNotFound         = errors.New("product: not found")
	ErrInvalidID        = errors.New("product: invalid id")
	ErrInvalidNombre    = errors.New("product: invalid nombre")
	ErrInvalidPrecio    = errors.New("product: invalid precio")
	ErrInvalidStock     = errors.New("product: invalid stockPorTalla")
	ErrSizeNotTracked   = errors.New("product: size not tracked in stockPorTalla")
	ErrInvalidCreatedAt = errors.New("product: invalid fechaCreacion")
)

// Product represents one document of the "products" collection.
//
// Invariant: Stock SHOULD equal the sum of StockPorTalla values at all times.
// The store does not enforce this transactionally; it is recomputed and
// rewritten on every stock-affecting write (see RecomputeStock).
type Product struct {
	ID          string  `json:"id" firestore:"id"`
	Nombre      string  `json:"nombre" firestore:"nombre"`
	Descripcion string  `json:"descripcion" firestore:"descripcion"`
	Precio      float64 `json:"precio" firestore:"precio"`

	Categoria string `json:"categoria" firestore:"categoria"`
	Genero    string `json:"genero" firestore:"genero"`
	Material  string `json:"material" firestore:"material"`
	TipoSuela string `json:"tipoSuela" firestore:"tipoSuela"`

	ImagenURL string   `json:"imagenUrl" firestore:"imagenUrl"`
	Imagenes  []string `json:"imagenes" firestore:"imagenes"`

	// TallaDisponible lists the size labels currently offered.
	TallaDisponible []string `json:"tallaDisponible" firestore:"tallaDisponible"`

	// StockPorTalla maps size label -> remaining unit count (never negative).
	StockPorTalla map[string]int `json:"stockPorTalla" firestore:"stockPorTalla"`

	// Stock is the denormalized sum of StockPorTalla.
	Stock int `json:"stock" firestore:"stock"`

	CreadoPor     string    `json:"creadoPor" firestore:"creadoPor"`
	FechaCreacion time.Time `json:"fechaCreacion" firestore:"fechaCreacion"`
}

// New creates a product. id may be empty (repo assigns one on Create).
func New(
	id string,
	nombre string,
	descripcion string,
	precio float64,
	categoria string,
	genero string,
	material string,
	tipoSuela string,
	imagenURL string,
	imagenes []string,
	stockPorTalla map[string]int,
	creadoPor string,
	now time.Time,
) (Product, error) {
	if now.IsZero() {
		now = time.Now().UTC()
	}

	p := Product{
		ID:          strings.TrimSpace(id),
		Nombre:      strings.TrimSpace(nombre),
		Descripcion: strings.TrimSpace(descripcion),
		Precio:      precio,

		Categoria: strings.TrimSpace(categoria),
		Genero:    strings.TrimSpace(genero),
		Material:  strings.TrimSpace(material),
		TipoSuela: strings.TrimSpace(tipoSuela),

		ImagenURL: strings.TrimSpace(imagenURL),
		Imagenes:  normalizeStrings(imagenes),

		StockPorTalla: normalizeStockMap(stockPorTalla),

		CreadoPor:     strings.TrimSpace(creadoPor),
		FechaCreacion: now.UTC(),
	}

	p.TallaDisponible = tallasFromStock(p.StockPorTalla)
	p.RecomputeStock()

	if err := p.validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// HasSize reports whether the size label is tracked in StockPorTalla.
func (p *Product) HasSize(talla string) bool {
	if p == nil || p.StockPorTalla == nil {
		return false
	}
	_, ok := p.StockPorTalla[strings.TrimSpace(talla)]
	return ok
}

// DecrementSize applies one inventory adjustment:
// newSizeStock = max(0, current - qty), then the denormalized total is
// recomputed as the sum across all sizes.
//
// It never produces a negative count. It does NOT guard against concurrent
// writers; the caller's read-modify-write is last-writer-wins on the map.
func (p *Product) DecrementSize(talla string, qty int) error {
	if p == nil {
		return ErrInvalidStock
	}
	t := strings.TrimSpace(talla)
	if !p.HasSize(t) {
		return ErrSizeNotTracked
	}
	if qty < 0 {
		qty = 0
	}

	cur := p.StockPorTalla[t]
	next := cur - qty
	if next < 0 {
		next = 0
	}
	p.StockPorTalla[t] = next

	p.RecomputeStock()
	return nil
}

// RecomputeStock rewrites the denormalized total from StockPorTalla and
// returns the new value.
func (p *Product) RecomputeStock() int {
	sum := 0
	for _, n := range p.StockPorTalla {
		if n > 0 {
			sum += n
		}
	}
	p.Stock = sum
	return sum
}

func (p Product) validate() error {
	if p.Nombre == "" {
		return ErrInvalidNombre
	}
	if p.Precio < 0 {
		return ErrInvalidPrecio
	}
	for _, n := range p.StockPorTalla {
		if n < 0 {
			return ErrInvalidStock
		}
	}
	if p.FechaCreacion.IsZero() {
		return ErrInvalidCreatedAt
	}
	return nil
}

// ----------------------------
// Helpers
// ----------------------------

func normalizeStrings(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// normalizeStockMap trims keys, drops empties, and floors counts at 0.
func normalizeStockMap(raw map[string]int) map[string]int {
	out := map[string]int{}
	for k, v := range raw {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if v < 0 {
			v = 0
		}
		out[k] = v
	}
	return out
}

func tallasFromStock(stock map[string]int) []string {
	out := make([]string, 0, len(stock))
	for k := range stock {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
