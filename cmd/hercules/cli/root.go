package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pjecz/hercules-api-key/internal/core/service"
	mongostore "github.com/pjecz/hercules-api-key/internal/infrastructure/db/mongo"
	"github.com/pjecz/hercules-api-key/internal/pkg/config"
	"github.com/pjecz/hercules-api-key/pkg/hashid"
	"github.com/pjecz/hercules-api-key/pkg/logger"
)

const serviceName = "hercules-api-key"

// Execute creates the root command tree and runs it.
func Execute(version string) error {
	return newRootCmd(version).ExecuteContext(context.Background())
}

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hercules",
		Short:   "Read-only judicial catalog API authenticated with API keys",
		Version: version,
		Long: `Hercules API Key serves the districts, authorities, matters, municipalities,
notices, rulings, agreement lists and web site catalog of the Poder Judicial
del Estado de Coahuila de Zaragoza.

Every request carries an X-Api-Key header; access to each module is granted
through roles and permissions stored next to the users.

Configuration is read from the environment (SALT is required).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newAPIKeyCmd())

	return cmd
}

// app holds what every subcommand needs once configuration is loaded.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	client *mongo.Client
	db     *mongo.Database
	codec  *hashid.Codec
}

func bootstrap(ctx context.Context, version string) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
		Version: version,
	})

	codec, err := hashid.New(cfg.Salt, hashid.DefaultMinLength)
	if err != nil {
		return nil, fmt.Errorf("build id codec: %w", err)
	}

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: log, client: client, db: db, codec: codec}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.client.Disconnect(ctx); err != nil {
		a.log.Warn().Err(err).Msg("mongo disconnect failed")
	}
}

func (a *app) authService() *service.AuthService {
	return service.NewAuthService(mongostore.NewPrincipalRepository(a.db), a.codec, a.log)
}
