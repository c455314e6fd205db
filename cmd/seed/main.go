package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"doctorsportal/internal/config"
	"doctorsportal/internal/database"
	"doctorsportal/internal/domain"
	"doctorsportal/internal/pkg/logger"
	"doctorsportal/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var treatments = []string{
	"Teeth Orthodontics",
	"Cosmetic Dentistry",
	"Teeth Cleaning",
	"Cavity Protection",
	"Pediatric Dental",
	"Oral Surgery",
}

// daySlots returns half-hour slots from 08:00 AM up to 05:00 PM.
func daySlots() []string {
	start := time.Date(2000, 1, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, 17, 0, 0, 0, time.UTC)

	var out []string
	for t := start; t.Before(end); t = t.Add(30 * time.Minute) {
		out = append(out, fmt.Sprintf("%s - %s", t.Format("03:04 PM"), t.Add(30*time.Minute).Format("03:04 PM")))
	}
	return out
}

func main() {
	var price string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the offering catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("invalid --price: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.AppEnv)

			db, err := database.Connect(cfg.DatabaseURL, log)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}

			repo := repository.NewOfferingRepository(db)
			ctx := cmd.Context()

			created := 0
			for _, name := range treatments {
				err := repo.Create(ctx, &domain.Offering{Name: name, Price: p, Slots: daySlots()})
				if errors.Is(err, repository.ErrDuplicate) {
					log.Info().Str("offering", name).Msg("already present, skipped")
					continue
				}
				if err != nil {
					return err
				}
				created++
			}
			log.Info().Int("created", created).Msg("seed completed")
			return nil
		},
	}
	cmd.Flags().StringVar(&price, "price", "99", "price applied to every seeded offering")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
