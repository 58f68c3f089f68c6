package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	crerr "github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/riskibarqy/campus-league/internal/platform/logging"
)

type globals struct {
	DBURL         string `name:"db-url" env:"DB_URL" required:"" help:"Postgres connection URL."`
	MigrationsDir string `name:"dir" env:"MIGRATIONS_DIR" help:"Directory holding the *.sql migrations."`
	LogLevel      string `name:"log-level" env:"APP_LOG_LEVEL" default:"info"`

	logger *logging.Logger
}

type upCmd struct{}

type downCmd struct {
	Steps int `arg:"" optional:"" default:"1" help:"Number of migrations to roll back."`
}

type versionCmd struct{}

type forceCmd struct {
	Version int `arg:"" help:"Version to mark as applied, clearing the dirty flag."`
}

type gotoCmd struct {
	Version uint `arg:"" help:"Target version."`
}

var cli struct {
	globals

	Up      upCmd      `cmd:"" help:"Apply all pending migrations."`
	Down    downCmd    `cmd:"" help:"Roll back migrations."`
	Version versionCmd `cmd:"" help:"Print the current schema version."`
	Force   forceCmd   `cmd:"" help:"Force the schema version."`
	Goto    gotoCmd    `cmd:"" aliases:"migrate" help:"Migrate up or down to a version."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("migration"),
		kong.Description("Schema migrations for the campus league database."),
		kong.UsageOnError(),
	)

	g := &cli.globals
	g.logger = logging.New(logging.Options{
		Level:       logging.ParseLevel(g.LogLevel),
		ServiceName: "campus-league-migration",
		Output:      os.Stderr,
	})
	defer func() { _ = g.logger.Sync() }()

	if err := ctx.Run(g); err != nil {
		g.logger.Error("migration failed", "command", ctx.Command(), "error", err)
		_ = g.logger.Sync()
		os.Exit(1)
	}
}

func (c *upCmd) Run(g *globals) error {
	return g.withMigrator(func(m *migrate.Migrate) error {
		if err := ignoreNoChange(g, m.Up()); err != nil {
			return err
		}
		g.logger.Info("migrations applied")
		return nil
	})
}

func (c *downCmd) Run(g *globals) error {
	if c.Steps <= 0 {
		return fmt.Errorf("down steps must be > 0")
	}
	return g.withMigrator(func(m *migrate.Migrate) error {
		if err := ignoreNoChange(g, m.Steps(-c.Steps)); err != nil {
			return err
		}
		g.logger.Info("migrations rolled back", "steps", c.Steps)
		return nil
	})
}

func (c *versionCmd) Run(g *globals) error {
	return g.withMigrator(func(m *migrate.Migrate) error {
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("version: none")
			fmt.Println("dirty: false")
			return nil
		}
		if err != nil {
			return crerr.Wrap(err, "read version")
		}
		fmt.Printf("version: %d\n", version)
		fmt.Printf("dirty: %t\n", dirty)
		return nil
	})
}

func (c *forceCmd) Run(g *globals) error {
	if c.Version < -1 {
		return fmt.Errorf("version must be >= -1")
	}
	return g.withMigrator(func(m *migrate.Migrate) error {
		if err := m.Force(c.Version); err != nil {
			return crerr.Wrapf(err, "force version %d", c.Version)
		}
		g.logger.Info("schema version forced", "version", c.Version)
		return nil
	})
}

func (c *gotoCmd) Run(g *globals) error {
	return g.withMigrator(func(m *migrate.Migrate) error {
		if err := ignoreNoChange(g, m.Migrate(c.Version)); err != nil {
			return err
		}
		g.logger.Info("schema migrated", "version", c.Version)
		return nil
	})
}

func (g *globals) withMigrator(fn func(m *migrate.Migrate) error) error {
	dir, err := resolveMigrationsDir(g.MigrationsDir)
	if err != nil {
		return err
	}

	sourceURL := "file://" + filepath.ToSlash(dir)
	m, err := migrate.New(sourceURL, migrationDBURL(g.DBURL))
	if err != nil {
		return crerr.Wrap(err, "create migrator")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			g.logger.Warn("close migration source", "error", srcErr)
		}
		if dbErr != nil {
			g.logger.Warn("close migration db", "error", dbErr)
		}
	}()

	g.logger.Debug("migrator ready", "source", sourceURL)
	return fn(m)
}

func ignoreNoChange(g *globals, err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		g.logger.Info("no migration changes")
		return nil
	}
	return err
}

func resolveMigrationsDir(explicit string) (string, error) {
	candidates := []string{
		strings.TrimSpace(explicit),
		strings.TrimSpace(os.Getenv("MIGRATIONS_PATH")),
		"./db/migrations",
		"/app/db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", crerr.New("migration directory not found (checked --dir/MIGRATIONS_DIR, MIGRATIONS_PATH, ./db/migrations, /app/db/migrations)")
}

// migrationDBURL drops pgx-only query flags that the lib/pq based migrate
// driver would forward to the server.
func migrationDBURL(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" {
		return raw
	}
	query := parsed.Query()
	query.Del("disable_prepared_binary_result")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
