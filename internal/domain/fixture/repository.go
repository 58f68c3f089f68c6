package fixture

import "context"

// Repository exposes fixture persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Fixture, error)
	GetByID(ctx context.Context, fixtureID int64) (Fixture, bool, error)
	Create(ctx context.Context, item Fixture) (int64, error)
	Update(ctx context.Context, item Fixture) (bool, error)
	RecordResult(ctx context.Context, fixtureID int64, homeScore, awayScore int) (bool, error)
	Delete(ctx context.Context, fixtureID int64) (bool, error)
}
