package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx operations shared by the pool and a
// transaction. Repository methods that take part in multi-step writes
// accept it so services can run them inside one transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	LostItemRepository   *LostItemRepository
	TeamRepository       *TeamRepository
	CrewRepository       *CrewRepository
	MentorshipRepository *MentorshipRepository
	AlertRepository      *AlertRepository
	ChatRepository       *ChatRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		LostItemRepository:   NewLostItemRepository(db),
		TeamRepository:       NewTeamRepository(db),
		CrewRepository:       NewCrewRepository(db),
		MentorshipRepository: NewMentorshipRepository(db),
		AlertRepository:      NewAlertRepository(db),
		ChatRepository:       NewChatRepository(db),
	}
}
