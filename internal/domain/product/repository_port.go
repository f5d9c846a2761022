// internal/domain/product/repository_port.go
package product

import (
	"context"

	"zapateria/internal/domain/common"
)

// Patch represents partial updates to Product fields.
// A nil field means "no change".
type Patch struct {
	Nombre      *string
	Descripcion *string
	Precio      *float64
	Categoria   *string
	Genero      *string
	Material    *string
	TipoSuela   *string
	ImagenURL   *string
	Imagenes    *[]string

	// StockPorTalla replaces the whole map; the implementation must
	// recompute and rewrite the denormalized stock alongside it.
	StockPorTalla *map[string]int
}

// Filter is the storefront catalog filter.
type Filter struct {
	Categoria   string
	Genero      string
	SearchQuery string // substring match on nombre, case-insensitive
	OnlyInStock bool
}

// RepositoryPort is the persistence port for the "products" collection.
type RepositoryPort interface {
	// Create saves a new product. If p.ID is empty, the implementation
	// assigns a document id and returns it.
	Create(ctx context.Context, p Product) (Product, error)

	GetByID(ctx context.Context, id string) (Product, error)

	Update(ctx context.Context, id string, patch Patch) (Product, error)

	// Save overwrites the full document (used by the inventory adjustment
	// read-modify-write; last-writer-wins on the whole stock map).
	Save(ctx context.Context, p Product) error

	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter Filter, sort common.Sort, page common.Page) (common.PageResult[Product], error)
}
