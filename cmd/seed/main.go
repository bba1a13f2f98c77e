package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/shenikar/blood_connect/internal/config"
	"github.com/shenikar/blood_connect/internal/repository"
	"github.com/shenikar/blood_connect/internal/seed"
	"github.com/shenikar/blood_connect/pkg/logger"
	"github.com/shenikar/blood_connect/pkg/postgres"
	redisclient "github.com/shenikar/blood_connect/pkg/redis"
)

var (
	fixturesFile string
	truncate     bool
	migrate      bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo users, blood requests and inventory into the database",
	Long: `Load demo data for a local BloodConnect stand.

Without --file the embedded fixture set is used: five users (password "password123"),
five blood requests around Casablanca and Rabat and a few months of inventory.`,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().StringVarP(&fixturesFile, "file", "f", "", "YAML fixtures file (default: embedded set)")
	rootCmd.Flags().BoolVar(&truncate, "truncate", false, "Remove existing users, requests and inventory first")
	rootCmd.Flags().BoolVar(&migrate, "migrate", true, "Apply database migrations before seeding")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	fixtures, err := loadFixtures()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	if migrate {
		if err := postgres.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer dbpool.Close()

	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	if truncate {
		if err := truncateTables(ctx, dbpool); err != nil {
			return err
		}
		log.Info("Existing data removed")
	}

	seeder := seed.NewSeeder(
		repository.NewUserRepository(dbpool),
		repository.NewBloodRequestRepository(dbpool, redisClient),
		repository.NewInventoryRepository(dbpool, redisClient),
		log,
	)
	res, err := seeder.Apply(ctx, fixtures)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d users, %d blood requests, %d inventory records\n", res.Users, res.Requests, res.Inventory)
	return nil
}

func loadFixtures() (*seed.Fixtures, error) {
	if fixturesFile == "" {
		return seed.Default()
	}
	f, err := os.Open(fixturesFile)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()
	return seed.Load(f)
}

func truncateTables(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `TRUNCATE nearby_searches, blood_requests, blood_inventory, users RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}
