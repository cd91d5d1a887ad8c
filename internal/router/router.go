package router

import (
	"database/sql"
	"net/http"
	"time"

	"my-pets-api/internal/adapters/auth/jwtauth"
	mailmem "my-pets-api/internal/adapters/mail/memory"
	mediamem "my-pets-api/internal/adapters/media/memory"
	mem "my-pets-api/internal/adapters/storage/memory"
	pg "my-pets-api/internal/adapters/storage/postgres"
	"my-pets-api/internal/domain/attachments"
	"my-pets-api/internal/domain/dewormings"
	"my-pets-api/internal/domain/medical"
	"my-pets-api/internal/domain/ownership"
	"my-pets-api/internal/domain/pets"
	"my-pets-api/internal/domain/users"
	"my-pets-api/internal/domain/vaccinations"
	"my-pets-api/internal/middleware"
	"my-pets-api/internal/platform/logger"
	"my-pets-api/internal/ports/mail"
	"my-pets-api/internal/ports/media"

	_ "my-pets-api/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si viene nil se usa un secret de dev (solo para local/tests).
	Tokens *jwtauth.Service

	// Opcional: store de objetos. Nil = store in-memory.
	Media media.Store

	// Opcional: sender de mails. Nil = buzón in-memory.
	Mailer mail.Sender

	Logger logger.Logger

	CORSOrigins    []string
	MaxUploadBytes int64
	FrontendURL    string
	ResetTokenTTL  time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	tokens := opts.Tokens
	if tokens == nil {
		tokens = jwtauth.New("dev-secret-change-me", 168*time.Hour)
	}

	store := opts.Media
	if store == nil {
		store = mediamem.NewStore()
	}

	mailer := opts.Mailer
	if mailer == nil {
		mailer = mailmem.NewSender()
	}

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://localhost:5174"}
	}

	maxUpload := opts.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 5 << 20
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.AuthContext(tokens))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		userRepo users.Repository
		petRepo  pets.Repository
		vacRepo  vaccinations.Repository
		dewRepo  dewormings.Repository
		medRepo  medical.Repository
		attRepo  attachments.Repository
		resolver ownership.Resolver
	)

	if opts.DB != nil {
		userRepo = pg.NewUsersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
		vacRepo = pg.NewVaccinationsRepo(opts.DB)
		dewRepo = pg.NewDewormingsRepo(opts.DB)
		medRepo = pg.NewMedicalRepo(opts.DB)
		attRepo = pg.NewAttachmentsRepo(opts.DB)
		resolver = pg.NewOwnershipResolver(opts.DB)
	} else {
		s := mem.NewStore()
		userRepo = s.Users()
		petRepo = s.Pets()
		vacRepo = s.Vaccinations()
		dewRepo = s.Dewormings()
		medRepo = s.Medical()
		attRepo = s.Attachments()
		resolver = s.Ownership()
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo, tokens, users.Options{
		Mailer:      mailer,
		Logger:      log,
		FrontendURL: opts.FrontendURL,
		ResetTTL:    opts.ResetTokenTTL,
	})
	attSvc := attachments.NewService(attRepo, resolver, attachments.ServiceOptions{
		Store:  store,
		Logger: log,
	})
	petsSvc := pets.NewService(petRepo, pets.ServiceOptions{
		Store:       store,
		Attachments: attSvc,
		Logger:      log,
	})
	vacSvc := vaccinations.NewService(vacRepo, resolver)
	dewSvc := dewormings.NewService(dewRepo, resolver)
	medSvc := medical.NewService(medRepo, resolver)

	// /auth es público; /auth/me valida el token por su cuenta.
	users.RegisterRoutes(r, usersSvc)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		pets.RegisterRoutes(protected, petsSvc, pets.HandlerOptions{
			Vaccinations:   vacSvc,
			Dewormings:     dewSvc,
			Medical:        medSvc,
			Attachments:    attSvc,
			MaxUploadBytes: maxUpload,
		})
		vaccinations.RegisterRoutes(protected, vacSvc)
		dewormings.RegisterRoutes(protected, dewSvc)
		medical.RegisterRoutes(protected, medSvc)
		attachments.RegisterRoutes(protected, attSvc, maxUpload)
	})

	return r
}
