package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/campus-league/internal/config"
	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	"github.com/riskibarqy/campus-league/internal/domain/news"
	"github.com/riskibarqy/campus-league/internal/domain/player"
	"github.com/riskibarqy/campus-league/internal/domain/standing"
	"github.com/riskibarqy/campus-league/internal/domain/stats"
	"github.com/riskibarqy/campus-league/internal/domain/team"
	"github.com/riskibarqy/campus-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/campus-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/campus-league/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/campus-league/internal/platform/id"
	"github.com/riskibarqy/campus-league/internal/platform/logging"
	"github.com/riskibarqy/campus-league/internal/platform/session"
	"github.com/riskibarqy/campus-league/internal/usecase"
	"golang.org/x/crypto/bcrypt"
)

// Repositories is the storage side of the service, backed by Postgres or
// by the in-memory store.
type Repositories struct {
	Teams     team.Repository
	Players   player.Repository
	Fixtures  fixture.Repository
	News      news.Repository
	Standings standing.Repository
	Stats     stats.Counter
}

// NewRepositories builds the store selected by APP_STORE. The returned
// close func releases the database pool.
func NewRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (Repositories, func() error, error) {
	if cfg.Store == config.StoreMemory {
		logger.WarnContext(ctx, "using in-memory store; data is lost on restart")
		store := memory.NewSeededStore()
		return Repositories{
			Teams:     memory.NewTeamRepository(store),
			Players:   memory.NewPlayerRepository(store),
			Fixtures:  memory.NewFixtureRepository(store),
			News:      memory.NewNewsRepository(store),
			Standings: memory.NewStandingRepository(store),
			Stats:     memory.NewStatsRepository(store),
		}, func() error { return nil }, nil
	}

	db, err := OpenDB(ctx, cfg, logger)
	if err != nil {
		return Repositories{}, nil, err
	}
	return Repositories{
		Teams:     postgres.NewTeamRepository(db),
		Players:   postgres.NewPlayerRepository(db),
		Fixtures:  postgres.NewFixtureRepository(db),
		News:      postgres.NewNewsRepository(db),
		Standings: postgres.NewStandingRepository(db),
		Stats:     postgres.NewStatsRepository(db),
	}, db.Close, nil
}

// AdminCredential resolves the configured admin login. A plain
// ADMIN_PASSWORD is hashed once at startup.
func AdminCredential(cfg config.Config) (usecase.AdminCredential, error) {
	hash := strings.TrimSpace(cfg.AdminPasswordHash)
	if hash == "" {
		generated, err := usecase.HashPassword(cfg.AdminPassword)
		if err != nil {
			return usecase.AdminCredential{}, crerr.Wrap(err, "hash ADMIN_PASSWORD")
		}
		hash = generated
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return usecase.AdminCredential{}, crerr.Wrap(err, "ADMIN_PASSWORD_HASH is not a bcrypt hash")
	}

	return usecase.AdminCredential{
		Username:     cfg.AdminUsername,
		PasswordHash: []byte(hash),
	}, nil
}

// NewHTTPServer wires repositories, use cases and the router into a server.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	credential, err := AdminCredential(cfg)
	if err != nil {
		return nil, nil, err
	}

	repos, closeRepos, err := NewRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	authSvc := usecase.NewAuthService(credential, session.NewStore(cfg.SessionTTL), idgen.NewRandomGenerator())
	handler := httpapi.NewHandler(httpapi.Services{
		Standings: usecase.NewStandingService(repos.Standings),
		Teams:     usecase.NewTeamService(repos.Teams, repos.Players),
		Players:   usecase.NewPlayerService(repos.Players, repos.Teams),
		Fixtures:  usecase.NewFixtureService(repos.Fixtures, repos.Teams),
		News:      usecase.NewNewsService(repos.News),
		Stats:     usecase.NewStatsService(repos.Stats),
		Auth:      authSvc,
	}, httpapi.Options{
		CookieSecure:        cfg.SessionCookieSecure,
		UploadDir:           cfg.UploadDir,
		UploadMaxBytes:      cfg.UploadMaxBytes,
		UploadPublicBaseURL: cfg.UploadPublicBaseURL,
	}, logger)

	var metrics *httpapi.Metrics
	if cfg.MetricsEnabled {
		metrics = httpapi.NewMetrics()
	}
	router := httpapi.NewRouter(handler, authSvc, logger, cfg.CORSAllowedOrigins, metrics)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closeRepos, nil
}
