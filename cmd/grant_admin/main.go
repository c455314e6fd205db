package main

import (
	"context"
	"os"
	"time"

	"doctorsportal/internal/config"
	"doctorsportal/internal/database"
	"doctorsportal/internal/modules/user"
	"doctorsportal/internal/pkg/jwt"
	"doctorsportal/internal/pkg/logger"
	"doctorsportal/internal/repository"

	"github.com/spf13/cobra"
)

// grant_admin seats an administrator without going through the HTTP
// surface, which only lets existing admins promote others.
func main() {
	var (
		email    string
		register bool
	)

	cmd := &cobra.Command{
		Use:   "grant_admin",
		Short: "Grant the administrator role to a user by email",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			svc := user.NewService(repository.NewUserRepository(db), jwt.New(cfg.JWTSecret, cfg.JWTTTL))
			if register {
				res, err := svc.Register(ctx, user.RegisterRequest{Email: email})
				if err != nil {
					return err
				}
				log.Info().Str("email", res.User.Email).Str("status", string(res.Status)).Msg("user registered")
			}

			u, err := svc.PromoteByEmail(ctx, email)
			if err != nil {
				log.Error().Err(err).Str("email", email).Msg("grant admin failed")
				return err
			}
			log.Info().Str("user_id", u.ID).Str("email", u.Email).Msg("administrator granted")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email of the user to promote")
	cmd.Flags().BoolVar(&register, "register", false, "register the user first if absent")
	_ = cmd.MarkFlagRequired("email")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
