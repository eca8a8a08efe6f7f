package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"soulprint/cmd/fx/config_fx"
	"soulprint/cmd/fx/controllers_fx"
	"soulprint/cmd/fx/dashboard"
	"soulprint/cmd/fx/db_fx"
	"soulprint/cmd/fx/destination_fx"
	"soulprint/cmd/fx/feedback_fx"
	"soulprint/cmd/fx/match_fx"
	"soulprint/cmd/fx/memcache_fx"
	"soulprint/cmd/fx/narrative_fx"
	"soulprint/cmd/fx/questionnaire_fx"
	"soulprint/cmd/fx/scoring_fx"
	"soulprint/internal/api"
	"soulprint/internal/api/controllers"
	"soulprint/internal/config"
	"soulprint/pkg/utils"
)

// @title Soulprint API
// @version 1.0
// @description Questionnaire scoring, destination matching and narrative generation.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		scoring_fx.Module,
		questionnaire_fx.Module,
		destination_fx.Module,
		match_fx.Module,
		narrative_fx.Module,
		feedback_fx.Module,
		dashboard.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	logger *zap.Logger,
	signer *utils.TokenSigner,
	questionnaireController *controllers.QuestionnaireController,
	matchController *controllers.MatchController,
	narrativeController *controllers.NarrativeController,
	feedbackController *controllers.FeedbackController,
	destinationController *controllers.DestinationController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	return api.NewRouter(logger, signer, api.Controllers{
		Questionnaire: questionnaireController,
		Match:         matchController,
		Narrative:     narrativeController,
		Feedback:      feedbackController,
		Destination:   destinationController,
		Dashboard:     dashboardController,
	})
}
