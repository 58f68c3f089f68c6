package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/campus-league/internal/app"
	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	"github.com/riskibarqy/campus-league/internal/domain/news"
	"github.com/riskibarqy/campus-league/internal/domain/player"
	"github.com/riskibarqy/campus-league/internal/domain/team"
	"github.com/riskibarqy/campus-league/internal/platform/logging"
	"github.com/riskibarqy/campus-league/internal/usecase"
	"gopkg.in/yaml.v3"
)

const (
	seedKindTeam    = "team"
	seedKindPlayer  = "player"
	seedKindFixture = "fixture"
	seedKindNews    = "news"

	seedStatusCreated = "created"
	seedStatusFailed  = "failed"
)

type seedFile struct {
	Teams    []seedTeam    `yaml:"teams"`
	Players  []seedPlayer  `yaml:"players"`
	Fixtures []seedFixture `yaml:"fixtures"`
	News     []seedArticle `yaml:"news"`
}

type seedTeam struct {
	Name       string `yaml:"name"`
	University string `yaml:"university"`
	City       string `yaml:"city"`
	Founded    string `yaml:"founded"`
	Coach      string `yaml:"coach"`
	Stadium    string `yaml:"stadium"`
	LogoURL    string `yaml:"logo_url"`
}

type seedPlayer struct {
	Name         string   `yaml:"name"`
	Team         string   `yaml:"team"`
	Position     string   `yaml:"position"`
	JerseyNumber *int     `yaml:"jersey_number"`
	Age          *int     `yaml:"age"`
	Nationality  string   `yaml:"nationality"`
	Height       *float64 `yaml:"height"`
	Weight       *float64 `yaml:"weight"`
	PhotoURL     string   `yaml:"photo_url"`
}

type seedFixture struct {
	Home      string `yaml:"home"`
	Away      string `yaml:"away"`
	Date      string `yaml:"date"`
	Time      string `yaml:"time"`
	Venue     string `yaml:"venue"`
	HomeScore *int   `yaml:"home_score"`
	AwayScore *int   `yaml:"away_score"`
}

type seedArticle struct {
	Title     string `yaml:"title"`
	Content   string `yaml:"content"`
	Author    string `yaml:"author"`
	Category  string `yaml:"category"`
	ImageURL  string `yaml:"image_url"`
	Published *bool  `yaml:"published"`
}

type seedRow struct {
	Kind    string
	Name    string
	Status  string
	Message string
}

type seedSummary struct {
	Rows    []seedRow
	Created int
	Failed  int
}

func loadSeedFile(path string) (seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return seedFile{}, crerr.Wrapf(err, "read seed file %q", path)
	}
	return parseSeed(raw)
}

func parseSeed(raw []byte) (seedFile, error) {
	var out seedFile
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return seedFile{}, crerr.Wrap(err, "decode seed yaml")
	}
	for i, fx := range out.Fixtures {
		if (fx.HomeScore == nil) != (fx.AwayScore == nil) {
			return seedFile{}, fmt.Errorf("fixture #%d (%s vs %s): home_score and away_score must be set together", i+1, fx.Home, fx.Away)
		}
	}
	return out, nil
}

type seeder struct {
	teams    *usecase.TeamService
	players  *usecase.PlayerService
	fixtures *usecase.FixtureService
	news     *usecase.NewsService
	workers  int
	logger   *logging.Logger
}

func newSeeder(repos app.Repositories, workers int, logger *logging.Logger) *seeder {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &seeder{
		teams:    usecase.NewTeamService(repos.Teams, repos.Players),
		players:  usecase.NewPlayerService(repos.Players, repos.Teams),
		fixtures: usecase.NewFixtureService(repos.Fixtures, repos.Teams),
		news:     usecase.NewNewsService(repos.News),
		workers:  workers,
		logger:   logger,
	}
}

// Run creates teams first so later rows can refer to them by name, then
// writes players, fixtures and news concurrently. Row failures are reported
// in the summary; only infrastructure errors abort the run.
func (s *seeder) Run(ctx context.Context, file seedFile) (seedSummary, error) {
	var rows []seedRow
	for _, item := range file.Teams {
		rows = append(rows, s.createTeam(ctx, item))
	}

	teamIDs, err := s.teamIndex(ctx)
	if err != nil {
		return seedSummary{}, err
	}

	var tasks []func() seedRow
	for _, item := range file.Players {
		tasks = append(tasks, func() seedRow { return s.createPlayer(ctx, teamIDs, item) })
	}
	for _, item := range file.Fixtures {
		tasks = append(tasks, func() seedRow { return s.createFixture(ctx, teamIDs, item) })
	}
	for _, item := range file.News {
		tasks = append(tasks, func() seedRow { return s.createArticle(ctx, item) })
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return seedSummary{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]seedRow, len(tasks))
	var workers sync.WaitGroup
	for i, task := range tasks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results[i] = task()
		}); err != nil {
			workers.Done()
			workers.Wait()
			return seedSummary{}, fmt.Errorf("submit seed task: %w", err)
		}
	}
	workers.Wait()

	rows = append(rows, results...)
	return summarize(rows), nil
}

func (s *seeder) teamIndex(ctx context.Context) (map[string]int64, error) {
	items, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	out := make(map[string]int64, len(items))
	for _, item := range items {
		out[teamKey(item.Name)] = item.ID
	}
	return out, nil
}

func (s *seeder) createTeam(ctx context.Context, item seedTeam) seedRow {
	_, err := s.teams.Create(ctx, team.Team{
		Name:       item.Name,
		University: item.University,
		City:       item.City,
		Founded:    item.Founded,
		Coach:      item.Coach,
		Stadium:    item.Stadium,
		LogoURL:    item.LogoURL,
	})
	return s.row(ctx, seedKindTeam, item.Name, err)
}

func (s *seeder) createPlayer(ctx context.Context, teamIDs map[string]int64, item seedPlayer) seedRow {
	value := player.Player{
		Name:         item.Name,
		Position:     item.Position,
		JerseyNumber: item.JerseyNumber,
		Age:          item.Age,
		Nationality:  item.Nationality,
		Height:       item.Height,
		Weight:       item.Weight,
		PhotoURL:     item.PhotoURL,
	}
	if strings.TrimSpace(item.Team) != "" {
		teamID, err := resolveTeam(teamIDs, item.Team)
		if err != nil {
			return s.row(ctx, seedKindPlayer, item.Name, err)
		}
		value.TeamID = &teamID
	}

	_, err := s.players.Create(ctx, value)
	return s.row(ctx, seedKindPlayer, item.Name, err)
}

func (s *seeder) createFixture(ctx context.Context, teamIDs map[string]int64, item seedFixture) seedRow {
	name := item.Home + " vs " + item.Away
	homeID, err := resolveTeam(teamIDs, item.Home)
	if err != nil {
		return s.row(ctx, seedKindFixture, name, err)
	}
	awayID, err := resolveTeam(teamIDs, item.Away)
	if err != nil {
		return s.row(ctx, seedKindFixture, name, err)
	}

	created, err := s.fixtures.Create(ctx, fixture.Fixture{
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		Date:       item.Date,
		Time:       item.Time,
		Venue:      item.Venue,
	})
	if err == nil && item.HomeScore != nil && item.AwayScore != nil {
		_, err = s.fixtures.RecordResult(ctx, created.ID, *item.HomeScore, *item.AwayScore)
	}
	return s.row(ctx, seedKindFixture, name, err)
}

func (s *seeder) createArticle(ctx context.Context, item seedArticle) seedRow {
	published := true
	if item.Published != nil {
		published = *item.Published
	}
	_, err := s.news.Create(ctx, news.Article{
		Title:     item.Title,
		Content:   item.Content,
		Author:    item.Author,
		Category:  item.Category,
		ImageURL:  item.ImageURL,
		Published: published,
	})
	return s.row(ctx, seedKindNews, item.Title, err)
}

func (s *seeder) row(ctx context.Context, kind, name string, err error) seedRow {
	if err != nil {
		s.logger.WarnContext(ctx, "seed row failed", "kind", kind, "name", name, "error", err)
		return seedRow{Kind: kind, Name: name, Status: seedStatusFailed, Message: err.Error()}
	}
	return seedRow{Kind: kind, Name: name, Status: seedStatusCreated}
}

var errUnknownSeedTeam = errors.New("unknown team")

func resolveTeam(teamIDs map[string]int64, name string) (int64, error) {
	id, ok := teamIDs[teamKey(name)]
	if !ok {
		return 0, fmt.Errorf("%w %q", errUnknownSeedTeam, strings.TrimSpace(name))
	}
	return id, nil
}

func teamKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func summarize(rows []seedRow) seedSummary {
	order := map[string]int{seedKindTeam: 0, seedKindPlayer: 1, seedKindFixture: 2, seedKindNews: 3}
	sort.SliceStable(rows, func(i, j int) bool {
		return order[rows[i].Kind] < order[rows[j].Kind]
	})

	out := seedSummary{Rows: rows}
	for _, row := range rows {
		if row.Status == seedStatusCreated {
			out.Created++
		} else {
			out.Failed++
		}
	}
	return out
}
