// internal/application/usecase/intent_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	cartdom "zapateria/internal/domain/cart"
	intentdom "zapateria/internal/domain/intent"
)

// IntentUsecase owns the single-slot pending purchase intent staged across
// the login redirect boundary.
type IntentUsecase struct {
	repo intentdom.RepositoryPort
	cart *CartUsecase
	now  func() time.Time
}

func NewIntentUsecase(repo intentdom.RepositoryPort, cart *CartUsecase) *IntentUsecase {
	return &IntentUsecase{repo: repo, cart: cart, now: time.Now}
}

var ErrIntentNotConfigured = errors.New("intent: usecase is not configured")

// StageInput mirrors what the storefront stages before bouncing the
// visitor to the login page.
type StageInput struct {
	UsuarioID  string
	ProductoID string
	Talla      string
	Cantidad   int
	RedirectTo string
}

// Stage overwrites the user's slot with a fresh intent.
func (u *IntentUsecase) Stage(ctx context.Context, in StageInput) error {
	if u == nil || u.repo == nil {
		return ErrIntentNotConfigured
	}

	i, err := intentdom.New(in.UsuarioID, in.ProductoID, in.Talla, in.Cantidad, in.RedirectTo, u.now())
	if err != nil {
		return err
	}
	if err := u.repo.Stage(ctx, i); err != nil {
		return ClassifyStoreError(err)
	}
	return nil
}

// LoginResult is what CompleteLogin hands back to the auth callback.
type LoginResult struct {
	RedirectTo string
	AddedLine  *cartdom.Line
}

// CompleteLogin consumes the slot (read-then-clear, single consumption)
// and replays the staged cart item, if any. A failed replay is logged and
// does not fail the login; the intent is gone either way.
func (u *IntentUsecase) CompleteLogin(ctx context.Context, usuarioID string) (LoginResult, error) {
	if u == nil || u.repo == nil {
		return LoginResult{}, ErrIntentNotConfigured
	}

	i, err := u.repo.Consume(ctx, strings.TrimSpace(usuarioID))
	if err != nil {
		return LoginResult{}, ClassifyStoreError(err)
	}
	if i == nil {
		return LoginResult{}, nil
	}

	res := LoginResult{RedirectTo: i.RedirectTo}

	if i.HasCartItem() && u.cart != nil {
		line, addErr := u.cart.AddLine(ctx, AddLineInput{
			UsuarioID:  usuarioID,
			ProductoID: i.ProductoID,
			Talla:      i.Talla,
			Cantidad:   i.Cantidad,
		})
		if addErr != nil {
			log.Printf("[intent_uc] WARN: staged cart item could not be replayed usuario=%s producto=%s err=%v",
				usuarioID, i.ProductoID, addErr)
		} else {
			res.AddedLine = &line
		}
	}

	return res, nil
}
