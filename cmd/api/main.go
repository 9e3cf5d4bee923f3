package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/catalog-admin/internal/application/auth"
	"github.com/jhoicas/catalog-admin/internal/application/usecase"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/media"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/memory"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/catalog-admin/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/catalog-admin/internal/interfaces/http"
	"github.com/jhoicas/catalog-admin/pkg/config"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// repositories puertos de persistencia según STORE_DRIVER.
type repositories struct {
	users      repository.UserRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	tx         usecase.CatalogTxRunner
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer repos.close()

	var revoker auth.SessionRevoker
	if cfg.Redis.URL != "" {
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		revoker = infraredis.NewSessionRevoker(client)
		log.Info().Msg("revocación de sesiones en Redis habilitada")
	}

	userUC := usecase.NewUserUseCase(repos.users, log)
	categoryUC := usecase.NewCategoryUseCase(repos.categories, repos.tx, log)
	productUC := usecase.NewProductUseCase(repos.products, repos.categories)
	authUC := auth.NewAuthUseCase(repos.users, revoker, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	if cfg.Admin.Enabled() {
		admin, created, err := userUC.EnsureSuperuser(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			log.Fatal().Err(err).Msg("superusuario inicial")
		}
		log.Info().Str("username", admin.Username).Bool("created", created).Msg("superusuario inicial listo")
	}

	if err := os.MkdirAll(cfg.Media.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Media.Dir).Msg("directorio de media")
	}

	app, err := httpRouter.NewApp(httpRouter.ServerOptions{
		AppName:     cfg.App.Name,
		CSRFEnabled: cfg.Session.CSRFEnabled,
		MediaDir:    cfg.Media.Dir,
	}, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		Images:     media.NewImageStore(cfg.Media.Dir),
		Revoker:    revoker,
		Session: httpRouter.SessionConfig{
			JWTSecret:  cfg.JWT.Secret,
			CookieName: cfg.Session.CookieName,
			Secure:     cfg.Session.Secure,
		},
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("construir servidor HTTP")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openRepositories(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repositories, error) {
	if cfg.Store.Driver == config.StoreMemory {
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &repositories{
			users:      store.Users(),
			categories: store.Categories(),
			products:   store.Products(),
			tx:         store.TxRunner(),
			close:      func() {},
		}, nil
	}

	if cfg.DB.AutoMigrate {
		version, err := postgres.Migrate(cfg.DB)
		if err != nil {
			return nil, err
		}
		log.Info().Uint("version", version).Msg("migraciones aplicadas")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &repositories{
		users:      postgres.NewUserRepository(pool),
		categories: postgres.NewCategoryRepository(pool),
		products:   postgres.NewProductRepository(pool),
		tx:         postgres.NewTxRunner(pool),
		close:      pool.Close,
	}, nil
}
