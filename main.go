package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"realty-server/cache"
	"realty-server/confs"
	"realty-server/db"
	"realty-server/events"
	"realty-server/server"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "realty-server",
		Short:        "Real-estate management backend",
		SilenceUsage: true,
		RunE:         runServe,
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket server",
		RunE:  runServe,
	}

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, database, err := bootstrap()
			if err != nil {
				return err
			}
			defer database.Close()
			slog.Info("migrations applied")
			return nil
		},
	}

	var email, password string
	createAdmin := &cobra.Command{
		Use:   "create-admin",
		Short: "Create or promote an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, database, err := bootstrap()
			if err != nil {
				return err
			}
			defer database.Close()
			return server.CreateAdmin(cmd.Context(), database, email, password)
		},
	}
	createAdmin.Flags().StringVar(&email, "email", "", "admin email")
	createAdmin.Flags().StringVar(&password, "password", "", "admin password")
	_ = createAdmin.MarkFlagRequired("email")
	_ = createAdmin.MarkFlagRequired("password")

	root.AddCommand(serve, migrate, createAdmin)
	return root
}

// bootstrap loads configuration, installs the logger and opens the
// migrated database.
func bootstrap() (confs.Config, db.Database, error) {
	confs.LoadEnv()
	cfg, err := confs.Load()
	if err != nil {
		return confs.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	setupLogger(cfg.Debug)

	database, err := db.Connect(cfg)
	if err != nil {
		return confs.Config{}, nil, err
	}
	return cfg, database, nil
}

func setupLogger(debug bool) {
	var handler slog.Handler
	if debug {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler).With("service", "realty-server"))
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, database, err := bootstrap()
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := server.Options{Config: cfg, Database: database, Logger: slog.Default()}

	if cfg.RedisURL != "" {
		client, err := cache.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		opts.Revocations = cache.NewRedisRevocationStore(client)
		opts.ResetTokens = cache.NewRedisResetTokenStore(client)
		slog.Info("using redis for session revocation and reset tokens")
	} else {
		slog.Info("using in-memory session stores")
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, map[string]string{
			events.TypeActivityRecorded: cfg.KafkaTopicActivity,
			events.TypeLeadCaptured:     cfg.KafkaTopicLeads,
		})
		if err != nil {
			return err
		}
		defer publisher.Close()
		opts.Publisher = publisher
		slog.Info("publishing events to kafka", "brokers", cfg.KafkaBrokers)
	}

	srv := server.NewServer(opts)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(ctx) }()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
