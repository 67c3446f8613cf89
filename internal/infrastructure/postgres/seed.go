package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/mithaighar/sweetshop/internal/domain/entity"
	"github.com/mithaighar/sweetshop/pkg/helpers"
)

// sampleSweets is the initial inventory inserted into an empty store.
var sampleSweets = []entity.Sweet{
	{Name: "Kaju Katli", Category: "Dry Sweet", Price: 500, Quantity: 8, Description: "Premium cashew based sweet"},
	{Name: "Ladoo", Category: "Traditional", Price: 100, Quantity: 0, Description: "Classic besan ladoo"},
	{Name: "Gulab Jamun", Category: "Syrup Based", Price: 150, Quantity: 20, Description: "Soft milk solid balls in sugar syrup"},
	{Name: "Rasgulla", Category: "Syrup Based", Price: 120, Quantity: 15, Description: "Spongy cottage cheese balls"},
	{Name: "Barfi", Category: "Dry Sweet", Price: 300, Quantity: 10, Description: "Traditional milk fudge"},
}

// Seed makes sure an administrator account exists and populates an empty
// inventory with sample data. Both steps are idempotent and safe to run on
// every startup.
func Seed(ctx context.Context, pool *pgxpool.Pool, adminUsername, adminEmail, adminPassword string, logger *logrus.Logger) error {
	users := NewUserRepository(pool)
	admins, err := users.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if admins == 0 {
		hash, err := helpers.HashPassword(adminPassword)
		if err != nil {
			return err
		}
		admin := &entity.User{
			Username:     adminUsername,
			Email:        adminEmail,
			PasswordHash: hash,
			IsAdmin:      true,
		}
		if err := users.Create(ctx, admin); err != nil {
			return err
		}
		logger.WithField("username", adminUsername).Info("seeded admin account")
	}

	var sweetCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM sweets`).Scan(&sweetCount); err != nil {
		return err
	}
	if sweetCount == 0 {
		sweets := NewSweetRepository(pool)
		for i := range sampleSweets {
			s := sampleSweets[i]
			if err := sweets.Create(ctx, &s); err != nil {
				return err
			}
		}
		logger.WithField("count", len(sampleSweets)).Info("seeded sample inventory")
	}
	return nil
}
