package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/anshumat/payroll-management/internal"
	authpkg "github.com/anshumat/payroll-management/internal/auth"
	"github.com/anshumat/payroll-management/internal/user"
	userPostgres "github.com/anshumat/payroll-management/internal/user/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with bootstrap users",
	Long:  `Ensure the demo admin and a sample employee exist. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		repo := userPostgres.NewUserRepository(gormDB)

		hash, err := authpkg.HashPassword("HireMe@2025!", cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}

		now := time.Now()
		seeds := []*user.User{
			{
				Email:        "hire-me@anshumat.org",
				Name:         "Demo Admin",
				PasswordHash: hash,
				Role:         string(internal.RoleAdmin),
				Department:   "Management",
				CreatedAt:    now,
				UpdatedAt:    now,
			},
			{
				Email:        "employee@anshumat.org",
				Name:         "Demo Employee",
				PasswordHash: hash,
				Role:         string(internal.RoleEmployee),
				Department:   "Engineering",
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		}

		for _, u := range seeds {
			created, err := repo.EnsureSeedUser(u)
			if err != nil {
				log.Fatalf("failed to seed user %s: %v", u.Email, err)
			}
			if created {
				fmt.Println("Seeded user:", u.Email)
			} else {
				fmt.Println("User already exists:", u.Email)
			}
		}
	},
}
