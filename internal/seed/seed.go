package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/thequad/api/internal/app/models"
	appRepos "github.com/thequad/api/internal/app/repositories"
	"github.com/thequad/api/internal/pkg/apperrors"
	"github.com/thequad/api/internal/pkg/auth"
)

// demoAccount describes one seeded user
type demoAccount struct {
	email  string
	name   string
	role   appModels.Role
	skills []string
}

var demoAccounts = []demoAccount{
	{email: "arjun.demo@srmist.edu.in", name: "Arjun Mehta", role: appModels.RoleStudent, skills: []string{"React", "TypeScript", "Figma"}},
	{email: "priya.demo@srmist.edu.in", name: "Priya Nair", role: appModels.RoleMentor, skills: []string{"Go", "Distributed Systems", "Career Guidance"}},
	{email: "robotics.club@srmist.edu.in", name: "Robotics Club", role: appModels.RoleClub, skills: []string{"Embedded", "CAD"}},
}

const demoPassword = "quad-demo-2024"

// CreateDefaultData seeds a few demo accounts so a fresh install is
// usable immediately. Existing accounts are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating demo accounts...")

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	var finalErr error
	for _, account := range demoAccounts {
		user := &appModels.User{
			Email:    account.email,
			Password: hashed,
			Name:     account.name,
			Role:     account.role,
			Skills:   account.skills,
		}

		if _, err := userRepo.CreateUser(ctx, user); err != nil {
			if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("email", account.email).Msg("Error creating demo account")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
