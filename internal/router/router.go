package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "dogs-registry/docs"
	"dogs-registry/internal/adapters/cache/rediscache"
	mem "dogs-registry/internal/adapters/storage/memory"
	pg "dogs-registry/internal/adapters/storage/postgres"
	"dogs-registry/internal/domain/catalog"
	"dogs-registry/internal/domain/dogs"
	"dogs-registry/internal/domain/owners"
	"dogs-registry/internal/domain/users"
	"dogs-registry/internal/middleware"
	"dogs-registry/internal/platform/logger"
	"dogs-registry/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // nil = modo dev (X-Debug-User-ID)
	TokenIssuer  auth.TokenIssuer  // nil = /api/auth/login responde 503

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB pg.DBTX

	// Opcional: cache del catálogo.
	Redis      *redis.Client
	CatalogTTL time.Duration

	Logger logger.Logger
}

// Services agrupa los servicios de dominio ya cableados a sus repos.
type Services struct {
	Catalog *catalog.Service
	Owners  *owners.Service
	Dogs    *dogs.Service
	Users   *users.Service
}

func NewServices(opts Options) *Services {
	var (
		catalogRepo catalog.Repository
		ownerRepo   owners.Repository
		dogRepo     dogs.Repository
		userRepo    users.Repository
	)

	if opts.DB != nil {
		catalogRepo = pg.NewCatalogRepo(opts.DB)
		ownerRepo = pg.NewOwnersRepo(opts.DB)
		dogRepo = pg.NewDogsRepo(opts.DB)
		userRepo = pg.NewUsersRepo(opts.DB)
	} else {
		// Un solo store: borrar un owner tiene que borrar sus perros.
		st := mem.NewStore()
		catalogRepo = mem.NewCatalogRepo(st)
		ownerRepo = mem.NewOwnerRepo(st)
		dogRepo = mem.NewDogRepo(st)
		userRepo = mem.NewUserRepo(st)
	}

	if opts.Redis != nil {
		catalogRepo = rediscache.NewCatalogRepo(catalogRepo, opts.Redis, opts.CatalogTTL, opts.Logger)
	}

	catalogSvc := catalog.NewService(catalogRepo)
	ownersSvc := owners.NewService(ownerRepo)

	return &Services{
		Catalog: catalogSvc,
		Owners:  ownersSvc,
		Dogs:    dogs.NewService(dogRepo, ownersSvc, catalogSvc),
		Users:   users.NewService(userRepo, opts.TokenIssuer),
	}
}

func NewRouter(opts Options) http.Handler {
	return NewHandler(NewServices(opts), opts)
}

// NewHandler monta middlewares y rutas sobre servicios ya construidos.
func NewHandler(svcs *Services, opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	// /api/dogs/ y /api/dogs son la misma ruta.
	r.Use(chimw.StripSlashes)

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	users.RegisterRoutes(r, svcs.Users, log)
	catalog.RegisterRoutes(r, svcs.Catalog, log)
	owners.RegisterRoutes(r, svcs.Owners, log)
	dogs.RegisterRoutes(r, svcs.Dogs, log)

	return r
}
