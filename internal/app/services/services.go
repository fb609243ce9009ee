package services

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/thequad/api/internal/app/repositories"
	"github.com/thequad/api/internal/config"
	"github.com/thequad/api/internal/db"
	"github.com/thequad/api/internal/pkg/auth"
	"github.com/thequad/api/internal/pkg/filestorage"
	"github.com/thequad/api/internal/pkg/websocket"
)

// timeNow is swapped out by tests that need deterministic timestamps
var timeNow = time.Now

// Services holds every service instance
type Services struct {
	Auth       AuthService
	User       UserService
	LostFound  LostFoundService
	Team       TeamService
	Crew       CrewService
	Mentorship MentorshipService
	Alert      AlertService
	Chat       ChatService
	Dashboard  DashboardService
}

// NewServices creates all services with their dependencies wired
func NewServices(
	repos *repositories.Repositories,
	database *db.PostgresDB,
	cfg *config.Config,
	jwtService *auth.JWTService,
	storage filestorage.FileStorage,
	hub *websocket.Hub,
	logger zerolog.Logger,
) *Services {
	chatService := NewChatService(repos.ChatRepository, repos.UserRepository, database, hub, logger)

	return &Services{
		Auth:       NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService, cfg, logger),
		User:       NewUserService(repos.UserRepository, storage, logger),
		LostFound:  NewLostFoundService(repos.LostItemRepository, repos.UserRepository, logger),
		Team:       NewTeamService(repos.TeamRepository, repos.UserRepository, chatService, database, logger),
		Crew:       NewCrewService(repos.CrewRepository, repos.UserRepository, chatService, database, logger),
		Mentorship: NewMentorshipService(repos.MentorshipRepository, repos.UserRepository, logger),
		Alert:      NewAlertService(repos.AlertRepository, repos.UserRepository, logger),
		Chat:       chatService,
		Dashboard: NewDashboardService(
			repos.LostItemRepository,
			repos.TeamRepository,
			repos.CrewRepository,
			repos.MentorshipRepository,
			repos.AlertRepository,
			repos.UserRepository,
			logger,
		),
	}
}
