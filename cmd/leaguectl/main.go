package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/riskibarqy/campus-league/internal/app"
	"github.com/riskibarqy/campus-league/internal/config"
	"github.com/riskibarqy/campus-league/internal/domain/standing"
	"github.com/riskibarqy/campus-league/internal/platform/logging"
	"github.com/riskibarqy/campus-league/internal/usecase"
)

type runEnv struct {
	ctx    context.Context
	out    io.Writer
	logger *logging.Logger
}

type standingsCmd struct{}

type seedCmd struct {
	File    string `short:"f" required:"" type:"existingfile" help:"YAML seed file."`
	Workers int    `default:"4" help:"Concurrent writers for players, fixtures and news."`
}

type hashPasswordCmd struct {
	Password string `arg:"" help:"Plain password to hash for ADMIN_PASSWORD_HASH."`
}

var cli struct {
	Standings    standingsCmd    `cmd:"" help:"Print the league table."`
	Seed         seedCmd         `cmd:"" help:"Load teams, players, fixtures and news from a YAML file."`
	HashPassword hashPasswordCmd `cmd:"" name:"hash-password" help:"Print a bcrypt hash for the admin password."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("leaguectl"),
		kong.Description("Operator tool for the campus league service."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env := &runEnv{ctx: ctx, out: os.Stdout}
	err := kctx.Run(env)
	if env.logger != nil {
		_ = env.logger.Sync()
	}
	kctx.FatalIfErrorf(err)
}

// repositories loads the service config and opens the configured store.
func (env *runEnv) repositories() (app.Repositories, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return app.Repositories{}, nil, fmt.Errorf("load config: %w", err)
	}
	env.logger = logging.New(logging.Options{
		Level:          cfg.LogLevel,
		ServiceName:    "leaguectl",
		ServiceVersion: cfg.ServiceVersion,
		Output:         os.Stderr,
	})
	return app.NewRepositories(env.ctx, cfg, env.logger)
}

func (c *standingsCmd) Run(env *runEnv) error {
	repos, closeRepos, err := env.repositories()
	if err != nil {
		return err
	}
	defer func() { _ = closeRepos() }()

	rows, err := usecase.NewStandingService(repos.Standings).List(env.ctx)
	if err != nil {
		return err
	}
	renderStandings(env.out, rows)
	return nil
}

func (c *seedCmd) Run(env *runEnv) error {
	file, err := loadSeedFile(c.File)
	if err != nil {
		return err
	}

	repos, closeRepos, err := env.repositories()
	if err != nil {
		return err
	}
	defer func() { _ = closeRepos() }()

	seeder := newSeeder(repos, c.Workers, env.logger)
	summary, err := seeder.Run(env.ctx, file)
	if err != nil {
		return err
	}
	renderSeedSummary(env.out, summary)
	if summary.Failed > 0 {
		return fmt.Errorf("%d seed rows failed", summary.Failed)
	}
	return nil
}

func (c *hashPasswordCmd) Run(env *runEnv) error {
	hash, err := usecase.HashPassword(c.Password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.out, hash)
	return err
}

func renderStandings(out io.Writer, rows []standing.Standing) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"#", "Team", "MP", "W", "D", "L", "GF", "GA", "GD", "Pts"})
	for _, row := range rows {
		t.AppendRow(table.Row{
			row.Position, row.TeamName, row.MatchesPlayed,
			row.Won, row.Drawn, row.Lost,
			row.GoalsFor, row.GoalsAgainst, fmt.Sprintf("%+d", row.GoalDifference), row.Points,
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 10, Align: text.AlignRight},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func renderSeedSummary(out io.Writer, summary seedSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Kind", "Name", "Status", "Message"})
	for _, row := range summary.Rows {
		t.AppendRow(table.Row{row.Kind, row.Name, row.Status, row.Message})
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d ok", summary.Created), fmt.Sprintf("%d failed", summary.Failed)})
	t.SetStyle(table.StyleLight)
	t.Render()
}
