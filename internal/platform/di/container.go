// internal/platform/di/container.go
package di

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"zapateria/internal/adapters/in/http/middleware"
	"zapateria/internal/adapters/in/http/shop"
	shopHandler "zapateria/internal/adapters/in/http/shop/handler"
	dbadapter "zapateria/internal/adapters/out/db"
	fsadapter "zapateria/internal/adapters/out/firestore"
	gcsadapter "zapateria/internal/adapters/out/gcs"
	mailadapter "zapateria/internal/adapters/out/mail"
	usecase "zapateria/internal/application/usecase"
	"zapateria/internal/infra/config"
	"zapateria/internal/infra/database"
	firestoreinfra "zapateria/internal/infra/firestore"
	"zapateria/internal/infra/secrets"
)

// Container bundles everything main needs: the ready-to-serve handler
// plus the owned resources to close on shutdown.
type Container struct {
	Config  *config.Config
	Handler http.Handler

	fs      *firestoreinfra.ClientWrapper
	gcs     *storage.Client
	pg      *database.DB
	secrets *secrets.Provider
}

// Close releases owned resources. Safe to call once, best-effort.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.fs != nil {
		_ = c.fs.Close()
	}
	if c.gcs != nil {
		_ = c.gcs.Close()
	}
	if c.pg != nil {
		_ = c.pg.Close()
	}
	if c.secrets != nil {
		_ = c.secrets.Close()
	}
	return nil
}

// Build wires clients, repositories, usecases and handlers.
//
// Firestore is strict (no store, no service). Firebase Auth, GCS,
// Postgres, Secret Manager and SendGrid are best-effort: a failure logs
// a WARN and disables only the features that need them.
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("di: config is nil")
	}

	c := &Container{Config: cfg}

	// ------------------------------------------------------------
	// 1. External clients
	// ------------------------------------------------------------

	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds)
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
	}

	// Firestore (strict)
	fsw, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, credFile)
	if err != nil {
		return nil, fmt.Errorf("di: firestore init failed: %w", err)
	}
	c.fs = fsw

	// Firebase Auth (best-effort; auth routes 503 without it)
	var fbAuth *middleware.FirebaseAuthClient
	{
		fbCfg := &firebase.Config{ProjectID: cfg.FirebaseProjectID}
		var fbApp *firebase.App
		if len(clientOpts) > 0 {
			fbApp, err = firebase.NewApp(ctx, fbCfg, clientOpts...)
		} else {
			fbApp, err = firebase.NewApp(ctx, fbCfg)
		}
		if err != nil {
			log.Printf("[di] WARN: firebase app init failed: %v", err)
		} else if fbAuth, err = fbApp.Auth(ctx); err != nil {
			log.Printf("[di] WARN: firebase auth init failed: %v", err)
			fbAuth = nil
		} else {
			log.Printf("[di] Firebase Auth initialized")
		}
	}

	// GCS (best-effort; image upload disabled without it)
	{
		var gcsClient *storage.Client
		if len(clientOpts) > 0 {
			gcsClient, err = storage.NewClient(ctx, clientOpts...)
		} else {
			gcsClient, err = storage.NewClient(ctx)
		}
		if err != nil {
			log.Printf("[di] WARN: storage.NewClient failed: %v (image upload disabled)", err)
		} else {
			c.gcs = gcsClient
		}
	}

	// Postgres read model (optional by config)
	if cfg.OrdersReadModelEnabled() {
		pg, err := database.NewConnection(cfg.PGHost, cfg.PGPort, cfg.PGUser, cfg.PGPassword, cfg.PGDatabase)
		if err != nil {
			log.Printf("[di] WARN: postgres init failed: %v (order listing falls back to document store)", err)
		} else {
			c.pg = pg
		}
	}

	// Secret Manager (optional; only for the SendGrid key)
	if sp, err := secrets.NewProvider(ctx); err != nil {
		log.Printf("[di] WARN: secret manager init failed: %v", err)
	} else {
		c.secrets = sp
	}

	// ------------------------------------------------------------
	// 2. Outbound adapters
	// ------------------------------------------------------------

	productRepo := fsadapter.NewProductRepositoryFS(fsw.Client)
	cartRepo := fsadapter.NewCartRepositoryFS(fsw.Client)
	orderRepoFS := fsadapter.NewOrderRepositoryFS(fsw.Client)
	favoriteRepo := fsadapter.NewFavoriteRepositoryFS(fsw.Client)
	conversationRepo := fsadapter.NewConversationRepositoryFS(fsw.Client)
	userRepo := fsadapter.NewUserRepositoryFS(fsw.Client)
	adminGate := fsadapter.NewAdminGateFS(fsw.Client)
	intentRepo := fsadapter.NewIntentRepositoryFS(fsw.Client)
	reviewRepo := fsadapter.NewReviewRepositoryFS(fsw.Client)
	contactRepo := fsadapter.NewContactRepositoryFS(fsw.Client)

	orderRepo := newOrderStore(orderRepoFS, orderRepoPG(c.pg))

	var images *gcsadapter.ImageRepositoryGCS
	if c.gcs != nil && strings.TrimSpace(cfg.GCSBucket) != "" {
		images = gcsadapter.NewImageRepositoryGCS(c.gcs, cfg.GCSBucket)
	}

	notifier := buildOrderNotifier(ctx, cfg, c.secrets)

	// ------------------------------------------------------------
	// 3. Usecases
	// ------------------------------------------------------------

	inventoryUC := usecase.NewInventoryUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(orderRepo, cartRepo, inventoryUC, notifier)
	catalogUC := usecase.NewCatalogUsecase(productRepo, reviewRepo, contactRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo)
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo)
	conversationUC := usecase.NewConversationUsecase(conversationRepo)
	profileUC := usecase.NewProfileUsecase(userRepo)
	intentUC := usecase.NewIntentUsecase(intentRepo, cartUC)

	// ------------------------------------------------------------
	// 4. Inbound handlers + middleware chains
	// ------------------------------------------------------------

	authMW := &middleware.AuthMiddleware{FirebaseAuth: fbAuth}
	adminMW := &middleware.AdminMiddleware{Gate: adminGate}

	authed := func(h http.Handler) http.Handler { return authMW.Handler(h) }
	admin := func(h http.Handler) http.Handler { return authMW.Handler(adminMW.Handler(h)) }

	var photoUploader shopHandler.PhotoUploader
	var imageUploader shopHandler.ProductImageUploader
	if images != nil {
		photoUploader = images
		imageUploader = images
	}

	deps := shop.Deps{
		Product: authMW.OptionalHandler(shopHandler.NewProductHandler(catalogUC)),
		Contact: shopHandler.NewContactHandler(catalogUC),

		Cart:         authed(shopHandler.NewCartHandler(cartUC)),
		Checkout:     authed(shopHandler.NewCheckoutHandler(checkoutUC, cartUC)),
		Order:        authed(shopHandler.NewOrderHandler(orderUC)),
		Favorite:     authed(shopHandler.NewFavoriteHandler(favoriteUC)),
		Conversation: authed(shopHandler.NewConversationHandler(conversationUC)),
		Profile:      authed(shopHandler.NewProfileHandler(profileUC, photoUploader)),
		Intent:       authed(shopHandler.NewIntentHandler(intentUC)),

		AdminProduct:      admin(shopHandler.NewAdminProductHandler(catalogUC, imageUploader)),
		AdminOrder:        admin(shopHandler.NewAdminOrderHandler(orderUC)),
		AdminConversation: admin(shopHandler.NewAdminConversationHandler(conversationUC)),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	shop.Register(mux, deps)

	cors := middleware.CORS(cfg.AllowedOrigin)
	c.Handler = cors(middleware.Recover(mux))

	return c, nil
}

// buildOrderNotifier resolves the SendGrid key (env first, then Secret
// Manager) and returns the operator mailer, or nil when mail is not
// configured. Checkout treats a nil notifier as "skip the mail".
func buildOrderNotifier(ctx context.Context, cfg *config.Config, sp *secrets.Provider) usecase.OrderNotifier {
	key := strings.TrimSpace(cfg.SendGridAPIKey)
	if key == "" && sp != nil && strings.TrimSpace(cfg.SendGridSecretName) != "" {
		v, err := sp.Access(ctx, cfg.FirestoreProjectID, cfg.SendGridSecretName)
		if err != nil {
			log.Printf("[di] WARN: sendgrid key secret access failed: %v", err)
		} else {
			key = strings.TrimSpace(v)
		}
	}
	if key == "" || strings.TrimSpace(cfg.OperatorEmail) == "" {
		log.Printf("[di] order mail notifier not configured (missing key or operator address)")
		return nil
	}

	from := strings.TrimSpace(cfg.SendGridFromEmail)
	if from == "" {
		from = cfg.OperatorEmail
	}
	return mailadapter.NewOrderMailer(mailadapter.NewSendGridClient(key), from, cfg.OperatorEmail)
}

func orderRepoPG(pg *database.DB) *dbadapter.OrderRepositoryPG {
	if pg == nil || pg.Client == nil {
		return nil
	}
	return dbadapter.NewOrderRepositoryPG(pg.Client)
}
