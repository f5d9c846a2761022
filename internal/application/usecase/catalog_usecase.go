// internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"zapateria/internal/domain/common"
	contactdom "zapateria/internal/domain/contact"
	productdom "zapateria/internal/domain/product"
	reviewdom "zapateria/internal/domain/review"
)

// CatalogUsecase serves storefront product browsing, back-office product
// management, product reviews, and the contact-form sink.
type CatalogUsecase struct {
	products productdom.RepositoryPort
	reviews  reviewdom.RepositoryPort
	contacts contactdom.RepositoryPort
	now      func() time.Time
}

func NewCatalogUsecase(
	products productdom.RepositoryPort,
	reviews reviewdom.RepositoryPort,
	contacts contactdom.RepositoryPort,
) *CatalogUsecase {
	return &CatalogUsecase{products: products, reviews: reviews, contacts: contacts, now: time.Now}
}

var ErrCatalogNotConfigured = errors.New("catalog: usecase is not configured")

func (u *CatalogUsecase) GetProduct(ctx context.Context, id string) (productdom.Product, error) {
	if u == nil || u.products == nil {
		return productdom.Product{}, ErrCatalogNotConfigured
	}
	p, err := u.products.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return productdom.Product{}, ClassifyStoreError(err)
	}
	return p, nil
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, filter productdom.Filter, sort common.Sort, page common.Page) (common.PageResult[productdom.Product], error) {
	if u == nil || u.products == nil {
		return common.PageResult[productdom.Product]{}, ErrCatalogNotConfigured
	}
	return u.products.List(ctx, filter, sort, page)
}

// CreateProduct is the back-office product registration.
type CreateProductInput struct {
	Nombre        string
	Descripcion   string
	Precio        float64
	Categoria     string
	Genero        string
	Material      string
	TipoSuela     string
	ImagenURL     string
	Imagenes      []string
	StockPorTalla map[string]int
	CreadoPor     string
}

func (u *CatalogUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (productdom.Product, error) {
	if u == nil || u.products == nil {
		return productdom.Product{}, ErrCatalogNotConfigured
	}

	p, err := productdom.New(
		"",
		in.Nombre,
		in.Descripcion,
		in.Precio,
		in.Categoria,
		in.Genero,
		in.Material,
		in.TipoSuela,
		in.ImagenURL,
		in.Imagenes,
		in.StockPorTalla,
		in.CreadoPor,
		u.now(),
	)
	if err != nil {
		return productdom.Product{}, err
	}

	created, err := u.products.Create(ctx, p)
	if err != nil {
		return productdom.Product{}, ClassifyStoreError(err)
	}
	return created, nil
}

func (u *CatalogUsecase) UpdateProduct(ctx context.Context, id string, patch productdom.Patch) (productdom.Product, error) {
	if u == nil || u.products == nil {
		return productdom.Product{}, ErrCatalogNotConfigured
	}
	p, err := u.products.Update(ctx, strings.TrimSpace(id), patch)
	if err != nil {
		return productdom.Product{}, ClassifyStoreError(err)
	}
	return p, nil
}

func (u *CatalogUsecase) DeleteProduct(ctx context.Context, id string) error {
	if u == nil || u.products == nil {
		return ErrCatalogNotConfigured
	}
	if err := u.products.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return ClassifyStoreError(err)
	}
	return nil
}

// AddReview records a product review after checking the product exists.
func (u *CatalogUsecase) AddReview(ctx context.Context, productoID, usuarioID string, calificacion int, comentario string) (reviewdom.Review, error) {
	if u == nil || u.products == nil || u.reviews == nil {
		return reviewdom.Review{}, ErrCatalogNotConfigured
	}

	if _, err := u.products.GetByID(ctx, strings.TrimSpace(productoID)); err != nil {
		return reviewdom.Review{}, ClassifyStoreError(err)
	}

	r, err := reviewdom.New("", productoID, usuarioID, calificacion, comentario, u.now())
	if err != nil {
		return reviewdom.Review{}, err
	}

	created, err := u.reviews.Create(ctx, r)
	if err != nil {
		return reviewdom.Review{}, ClassifyStoreError(err)
	}
	return created, nil
}

func (u *CatalogUsecase) ListReviews(ctx context.Context, productoID string) ([]reviewdom.Review, error) {
	if u == nil || u.reviews == nil {
		return nil, ErrCatalogNotConfigured
	}
	return u.reviews.ListByProducto(ctx, strings.TrimSpace(productoID))
}

// SubmitContactMessage is the contact-form sink (write only).
func (u *CatalogUsecase) SubmitContactMessage(ctx context.Context, nombre, correo, texto string) error {
	if u == nil || u.contacts == nil {
		return ErrCatalogNotConfigured
	}
	m, err := contactdom.New("", nombre, correo, texto, u.now())
	if err != nil {
		return err
	}
	if _, err := u.contacts.Create(ctx, m); err != nil {
		return ClassifyStoreError(err)
	}
	return nil
}
