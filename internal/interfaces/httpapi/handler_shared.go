package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/campus-league/internal/domain/fixture"
	"github.com/riskibarqy/campus-league/internal/domain/news"
	"github.com/riskibarqy/campus-league/internal/domain/player"
	"github.com/riskibarqy/campus-league/internal/domain/standing"
	"github.com/riskibarqy/campus-league/internal/domain/team"
	"github.com/riskibarqy/campus-league/internal/platform/logging"
	"github.com/riskibarqy/campus-league/internal/usecase"
)

const maxJSONBodyBytes = 1 << 20

// Services groups the use cases the HTTP handlers call into.
type Services struct {
	Standings *usecase.StandingService
	Teams     *usecase.TeamService
	Players   *usecase.PlayerService
	Fixtures  *usecase.FixtureService
	News      *usecase.NewsService
	Stats     *usecase.StatsService
	Auth      *usecase.AuthService
}

// Options carries the HTTP-only settings of the handlers.
type Options struct {
	CookieSecure        bool
	UploadDir           string
	UploadMaxBytes      int64
	UploadPublicBaseURL string
}

type Handler struct {
	standingService *usecase.StandingService
	teamService     *usecase.TeamService
	playerService   *usecase.PlayerService
	fixtureService  *usecase.FixtureService
	newsService     *usecase.NewsService
	statsService    *usecase.StatsService
	authService     *usecase.AuthService
	opts            Options
	now             func() time.Time
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(services Services, opts Options, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.UploadMaxBytes <= 0 {
		opts.UploadMaxBytes = defaultUploadMaxBytes
	}
	if strings.TrimSpace(opts.UploadDir) == "" {
		opts.UploadDir = defaultUploadDir
	}

	return &Handler{
		standingService: services.Standings,
		teamService:     services.Teams,
		playerService:   services.Players,
		fixtureService:  services.Fixtures,
		newsService:     services.News,
		statsService:    services.Stats,
		authService:     services.Auth,
		opts:            opts,
		now:             time.Now,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a JSON body into dst and validates it.
func (h *Handler) decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=120"`
	Password string `json:"password" validate:"required,max=200"`
}

type teamRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	University string `json:"university" validate:"omitempty,max=200"`
	City       string `json:"city" validate:"omitempty,max=120"`
	Founded    string `json:"founded" validate:"omitempty,max=20"`
	Coach      string `json:"coach" validate:"omitempty,max=120"`
	Stadium    string `json:"stadium" validate:"omitempty,max=200"`
	LogoURL    string `json:"logo_url" validate:"omitempty,max=500"`
}

type playerRequest struct {
	Name         string   `json:"name" validate:"required,max=120"`
	TeamID       *int64   `json:"team_id" validate:"omitempty,gt=0"`
	Position     string   `json:"position" validate:"omitempty,max=40"`
	JerseyNumber *int     `json:"jersey_number" validate:"omitempty,gte=0,lte=99"`
	Age          *int     `json:"age" validate:"omitempty,gte=0,lte=100"`
	Nationality  string   `json:"nationality" validate:"omitempty,max=80"`
	Height       *float64 `json:"height" validate:"omitempty,gte=0"`
	Weight       *float64 `json:"weight" validate:"omitempty,gte=0"`
	PhotoURL     string   `json:"photo_url" validate:"omitempty,max=500"`
}

type createFixtureRequest struct {
	HomeTeamID int64  `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID int64  `json:"away_team_id" validate:"required,gt=0,nefield=HomeTeamID"`
	Date       string `json:"match_date" validate:"required,datetime=2006-01-02"`
	Time       string `json:"match_time" validate:"omitempty,datetime=15:04"`
	Venue      string `json:"venue" validate:"omitempty,max=200"`
	Status     string `json:"status" validate:"omitempty,oneof=scheduled completed"`
	HomeScore  *int   `json:"home_score" validate:"omitempty,gte=0"`
	AwayScore  *int   `json:"away_score" validate:"omitempty,gte=0"`
}

type updateFixtureRequest struct {
	Date   string `json:"match_date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"match_time" validate:"omitempty,datetime=15:04"`
	Venue  string `json:"venue" validate:"omitempty,max=200"`
	Status string `json:"status" validate:"omitempty,oneof=scheduled completed"`
}

type fixtureResultRequest struct {
	HomeScore *int `json:"home_score" validate:"required,gte=0"`
	AwayScore *int `json:"away_score" validate:"required,gte=0"`
}

type newsRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	Content   string `json:"content"`
	Author    string `json:"author" validate:"omitempty,max=120"`
	Category  string `json:"category" validate:"omitempty,max=80"`
	ImageURL  string `json:"image_url" validate:"omitempty,max=500"`
	Published *bool  `json:"published"`
}

type standingDTO struct {
	Position       int    `json:"position"`
	TeamID         int64  `json:"team_id"`
	TeamName       string `json:"team_name"`
	LogoURL        string `json:"logo_url"`
	MatchesPlayed  int    `json:"matches_played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	Points         int    `json:"points"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
}

type teamDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	University  string `json:"university"`
	City        string `json:"city"`
	Founded     string `json:"founded"`
	Coach       string `json:"coach"`
	Stadium     string `json:"stadium"`
	LogoURL     string `json:"logo_url"`
	PlayerCount int    `json:"player_count"`
}

type playerDTO struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	TeamID       *int64   `json:"team_id"`
	TeamName     string   `json:"team_name,omitempty"`
	Position     string   `json:"position"`
	JerseyNumber *int     `json:"jersey_number"`
	Age          *int     `json:"age"`
	Nationality  string   `json:"nationality"`
	Height       *float64 `json:"height"`
	Weight       *float64 `json:"weight"`
	PhotoURL     string   `json:"photo_url"`
}

type fixtureDTO struct {
	ID         int64  `json:"id"`
	HomeTeamID int64  `json:"home_team_id"`
	HomeTeam   string `json:"home_team"`
	AwayTeamID int64  `json:"away_team_id"`
	AwayTeam   string `json:"away_team"`
	Date       string `json:"match_date"`
	Time       string `json:"match_time"`
	Venue      string `json:"venue"`
	Status     string `json:"status"`
	HomeScore  *int   `json:"home_score"`
	AwayScore  *int   `json:"away_score"`
}

type newsDTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	ImageURL  string `json:"image_url"`
	Published bool   `json:"published"`
	CreatedAt string `json:"created_at"`
}

type statsDTO struct {
	TotalTeams       int `json:"total_teams"`
	TotalPlayers     int `json:"total_players"`
	TotalFixtures    int `json:"total_fixtures"`
	CompletedMatches int `json:"completed_matches"`
	UpcomingMatches  int `json:"upcoming_matches"`
}

type sessionDTO struct {
	Token     string `json:"token,omitempty"`
	Username  string `json:"username"`
	ExpiresAt string `json:"expires_at"`
}

type uploadDTO struct {
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

func standingToDTO(v standing.Standing) standingDTO {
	return standingDTO{
		Position:       v.Position,
		TeamID:         v.TeamID,
		TeamName:       v.TeamName,
		LogoURL:        v.LogoURL,
		MatchesPlayed:  v.MatchesPlayed,
		Won:            v.Won,
		Drawn:          v.Drawn,
		Lost:           v.Lost,
		Points:         v.Points,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:          v.ID,
		Name:        v.Name,
		University:  v.University,
		City:        v.City,
		Founded:     v.Founded,
		Coach:       v.Coach,
		Stadium:     v.Stadium,
		LogoURL:     v.LogoURL,
		PlayerCount: v.PlayerCount,
	}
}

func (req teamRequest) toDomain() team.Team {
	return team.Team{
		Name:       req.Name,
		University: req.University,
		City:       req.City,
		Founded:    req.Founded,
		Coach:      req.Coach,
		Stadium:    req.Stadium,
		LogoURL:    req.LogoURL,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:           v.ID,
		Name:         v.Name,
		TeamID:       v.TeamID,
		TeamName:     v.TeamName,
		Position:     v.Position,
		JerseyNumber: v.JerseyNumber,
		Age:          v.Age,
		Nationality:  v.Nationality,
		Height:       v.Height,
		Weight:       v.Weight,
		PhotoURL:     v.PhotoURL,
	}
}

func (req playerRequest) toDomain() player.Player {
	return player.Player{
		Name:         req.Name,
		TeamID:       req.TeamID,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		Age:          req.Age,
		Nationality:  req.Nationality,
		Height:       req.Height,
		Weight:       req.Weight,
		PhotoURL:     req.PhotoURL,
	}
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:         v.ID,
		HomeTeamID: v.HomeTeamID,
		HomeTeam:   v.HomeTeam,
		AwayTeamID: v.AwayTeamID,
		AwayTeam:   v.AwayTeam,
		Date:       v.Date,
		Time:       v.Time,
		Venue:      v.Venue,
		Status:     v.Status,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
	}
}

func (req createFixtureRequest) toDomain() fixture.Fixture {
	return fixture.Fixture{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Date:       req.Date,
		Time:       req.Time,
		Venue:      req.Venue,
		Status:     req.Status,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
	}
}

func newsToDTO(v news.Article) newsDTO {
	return newsDTO{
		ID:        v.ID,
		Title:     v.Title,
		Content:   v.Content,
		Author:    v.Author,
		Category:  v.Category,
		ImageURL:  v.ImageURL,
		Published: v.Published,
		CreatedAt: formatTime(v.CreatedAt),
	}
}

func (req newsRequest) toDomain() news.Article {
	published := true
	if req.Published != nil {
		published = *req.Published
	}
	return news.Article{
		Title:     req.Title,
		Content:   req.Content,
		Author:    req.Author,
		Category:  req.Category,
		ImageURL:  req.ImageURL,
		Published: published,
	}
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
