package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/beka-birhanu/vinom-maze/api"
	"github.com/beka-birhanu/vinom-maze/api/admin"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	leaderboardapi "github.com/beka-birhanu/vinom-maze/api/leaderboard"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/logger"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the periodic leaderboard archiver",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

func initMazeController(debug bool) (api_i.Controller, error) {
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stdout, debug)
	if err != nil {
		return nil, fmt.Errorf("creating maze logger: %w", err)
	}
	mazeService, err := service.NewMazeService(mazeLogger)
	if err != nil {
		return nil, err
	}
	appLogger.Info("Maze service initialized")
	return mazeapi.NewMazeController(mazeService, mazeLogger)
}

func initLeaderboardController(b *backends, debug bool) (api_i.Controller, error) {
	lbLogger, err := logger.New("LEADERBOARD", config.ColorBlue, os.Stdout, debug)
	if err != nil {
		return nil, fmt.Errorf("creating leaderboard logger: %w", err)
	}
	leaderboard, err := service.NewLeaderboard(b.scores, b.ranking, lbLogger)
	if err != nil {
		return nil, err
	}
	appLogger.Info("Leaderboard service initialized")
	return leaderboardapi.NewLeaderboardController(leaderboard, lbLogger)
}

func initRouter(cfg config.Config, tokenizer i.Tokenizer, controllers ...api_i.Controller) *api.Router {
	gin.SetMode(cfg.GinMode)
	router := api.NewRouter(api.Config{
		Addr:                    cfg.Addr(),
		BaseURL:                 "/api",
		Controllers:             controllers,
		AuthorizationMiddleware: admin.Authorize(tokenizer),
	})
	appLogger.Info("Router initialized", "addr", cfg.Addr())
	return router
}

func serve(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	verbose := cfg.Debug || debug

	b, err := initBackends(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	mazeController, err := initMazeController(verbose)
	if err != nil {
		return err
	}
	leaderboardController, err := initLeaderboardController(b, verbose)
	if err != nil {
		return err
	}
	archiver, err := initArchiver(b, cfg.ArchiveReset, verbose)
	if err != nil {
		return err
	}
	archiveController, err := admin.NewArchiveController(archiver)
	if err != nil {
		return err
	}

	tokenizer := token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer)
	router := initRouter(cfg, tokenizer, mazeController, leaderboardController, archiveController)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("HTTP server listening", "addr", cfg.Addr())
		if err := router.Run(gctx); err != nil {
			return fmt.Errorf("running server: %w", err)
		}
		appLogger.Info("HTTP server stopped")
		return nil
	})
	g.Go(func() error {
		return archiver.Run(gctx, cfg.ArchiveInterval)
	})

	return g.Wait()
}
