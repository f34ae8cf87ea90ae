package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
	"github.com/techmaster-vietnam/blogkit"
	"github.com/techmaster-vietnam/blogkit/config"
	"github.com/techmaster-vietnam/blogkit/database"
	"github.com/techmaster-vietnam/blogkit/response"
	"github.com/techmaster-vietnam/blogkit/utils"
	"github.com/techmaster-vietnam/goerrorkit"
)

var (
	// Serve flags
	seedOnStart bool
	autoMigrate bool
)

// serveCmd starts the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server.

Examples:
  blogkit serve                              # postgres, schema must be migrated
  blogkit serve --migrate                    # run pending migrations first
  STORAGE_DRIVER=memory blogkit serve --seed # in-memory store with demo data`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&seedOnStart, "seed", false, "Seed demo data on start")
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "Run migrations on start (postgres only)")
}

// openRepositories chọn storage theo STORAGE_DRIVER
func openRepositories(cfg *config.Config) (blogkit.Repositories, error) {
	switch cfg.Database.Driver {
	case config.StorageMemory:
		return blogkit.MemoryRepositories(), nil
	case config.StoragePostgres:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return blogkit.Repositories{}, err
		}
		if autoMigrate {
			if err := database.Migrate(db, cfg.Database.Name); err != nil {
				return blogkit.Repositories{}, err
			}
		}
		return blogkit.GormRepositories(db), nil
	default:
		return blogkit.Repositories{}, fmt.Errorf("unknown STORAGE_DRIVER %q (expected %q or %q)",
			cfg.Database.Driver, config.StoragePostgres, config.StorageMemory)
	}
}

// newApp tạo fiber app với middleware chung
func newApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "BlogKit",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: response.ErrorHandler,
	})

	// RequestID must be before logger so the id shows up in access logs
	app.Use(requestid.New(requestid.Config{
		Generator: utils.GenerateRequestID,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	return app
}

func runServe() error {
	repos, err := openRepositories(cfg)
	if err != nil {
		return err
	}

	app := newApp(cfg)
	bk := blogkit.New(app, repos).WithConfig(cfg).Initialize()
	bk.SetupRoutes()

	if seedOnStart {
		if err := bk.Seed(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Server.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return goerrorkit.NewSystemError(err).WithData(map[string]interface{}{
				"port": cfg.Server.Port,
			})
		}
		return nil
	case <-ctx.Done():
		fmt.Println("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}
