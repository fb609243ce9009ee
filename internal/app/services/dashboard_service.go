package services

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/app/repositories"
	"github.com/thequad/api/internal/pkg/helpers"
)

// Number of recent entries pulled from each board for the merged feed
const feedPerBoard = 5

// DashboardService aggregates activity across the boards
type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	Feed(ctx context.Context) (*dto.DashboardFeedResponse, error)
}

// dashboardServiceImpl implements DashboardService
type dashboardServiceImpl struct {
	lostRepo  *repositories.LostItemRepository
	teamRepo  *repositories.TeamRepository
	crewRepo  *repositories.CrewRepository
	slotRepo  *repositories.MentorshipRepository
	alertRepo *repositories.AlertRepository
	userRepo  *repositories.UserRepository
	logger    zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	lostRepo *repositories.LostItemRepository,
	teamRepo *repositories.TeamRepository,
	crewRepo *repositories.CrewRepository,
	slotRepo *repositories.MentorshipRepository,
	alertRepo *repositories.AlertRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		lostRepo:  lostRepo,
		teamRepo:  teamRepo,
		crewRepo:  crewRepo,
		slotRepo:  slotRepo,
		alertRepo: alertRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Stats counts the live activity on every board
func (s *dashboardServiceImpl) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	lostItems, err := s.lostRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	teamPosts, err := s.teamRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	openCrews, err := s.crewRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	mentorSlots, err := s.slotRepo.CountAvailable(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := s.alertRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		LostItems:   lostItems,
		TeamPosts:   teamPosts,
		OpenCrews:   openCrews,
		MentorSlots: mentorSlots,
		Alerts:      alerts,
	}, nil
}

// Feed merges the most recent entries of every board into one reverse
// chronological feed
func (s *dashboardServiceImpl) Feed(ctx context.Context) (*dto.DashboardFeedResponse, error) {
	type feedEntry struct {
		item dto.FeedItemResponse
		at   time.Time
	}
	var entries []feedEntry

	lostItems, _, err := s.lostRepo.List(ctx, nil, 0, feedPerBoard)
	if err != nil {
		return nil, err
	}
	ownerIDs := make([]int64, 0, len(lostItems))
	for i := range lostItems {
		ownerIDs = append(ownerIDs, lostItems[i].UserID)
	}
	owners, err := s.userRepo.ListUsersByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	for i := range lostItems {
		name := ""
		if owner := owners[lostItems[i].UserID]; owner != nil {
			name = owner.Name
		}
		entries = append(entries, feedEntry{
			item: dto.FeedItemResponse{Kind: "lost_item", ID: lostItems[i].ID, Title: lostItems[i].ItemName, UserName: name},
			at:   lostItems[i].CreatedAt,
		})
	}

	teamPosts, _, err := s.teamRepo.List(ctx, nil, 0, feedPerBoard)
	if err != nil {
		return nil, err
	}
	for i := range teamPosts {
		entries = append(entries, feedEntry{
			item: dto.FeedItemResponse{Kind: "team", ID: teamPosts[i].ID, Title: teamPosts[i].Title, UserName: teamPosts[i].UserName},
			at:   teamPosts[i].CreatedAt,
		})
	}

	crewCalls, _, err := s.crewRepo.List(ctx, nil, 0, feedPerBoard)
	if err != nil {
		return nil, err
	}
	for i := range crewCalls {
		entries = append(entries, feedEntry{
			item: dto.FeedItemResponse{Kind: "crew_call", ID: crewCalls[i].ID, Title: crewCalls[i].Title, UserName: crewCalls[i].ClubName},
			at:   crewCalls[i].CreatedAt,
		})
	}

	alerts, _, err := s.alertRepo.List(ctx, nil, 0, feedPerBoard)
	if err != nil {
		return nil, err
	}
	for i := range alerts {
		entries = append(entries, feedEntry{
			item: dto.FeedItemResponse{Kind: "alert", ID: alerts[i].ID, Title: alerts[i].Title, UserName: alerts[i].UserName},
			at:   alerts[i].CreatedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].at.After(entries[j].at) })

	now := timeNow()
	items := make([]dto.FeedItemResponse, 0, len(entries))
	for _, entry := range entries {
		entry.item.TimeAgo = helpers.TimeAgo(entry.at, now)
		items = append(items, entry.item)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardFeedResponse{
		Items: items,
		Stats: *stats,
	}, nil
}
