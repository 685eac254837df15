package main

import (
	"os"

	internalApp "github.com/Denise-hub/DenModa-Manufacturer/internal/app"
	"github.com/Denise-hub/DenModa-Manufacturer/internal/seed"
	"github.com/Denise-hub/DenModa-Manufacturer/pkg/app"
	"github.com/Denise-hub/DenModa-Manufacturer/pkg/config"

	_ "github.com/Denise-hub/DenModa-Manufacturer/migrations"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}
	cfg := config.Load()

	pb := pocketbase.New()

	migratecmd.MustRegister(pb, pb.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	container, err := internalApp.NewContainer(pb, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("container init failed")
	}

	app.RegisterRoutes(pb, container)

	pb.RootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Upsert the default storefront content",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pb.Bootstrap(); err != nil {
				return err
			}
			return seed.Run(pb)
		},
	})

	if err := pb.Start(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
