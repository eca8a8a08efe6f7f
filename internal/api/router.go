// Package api assembles the HTTP surface.
package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "soulprint/docs"
	"soulprint/internal/api/controllers"
	"soulprint/pkg/middleware"
	"soulprint/pkg/utils"
)

type Controllers struct {
	Questionnaire *controllers.QuestionnaireController
	Match         *controllers.MatchController
	Narrative     *controllers.NarrativeController
	Feedback      *controllers.FeedbackController
	Destination   *controllers.DestinationController
	Dashboard     *controllers.DashboardController
}

func NewRouter(logger *zap.Logger, signer *utils.TokenSigner, ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ZapLogger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, signer, ctl)
	return r
}

func RegisterRoutes(r *gin.Engine, signer *utils.TokenSigner, ctl Controllers) {
	r.GET("/healthz", func(c *gin.Context) { utils.RespondSuccess(c, nil, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	sessions := r.Group("/questionnaire/sessions")
	sessions.POST("", ctl.Questionnaire.StartSession)
	sessions.GET("/:id", ctl.Questionnaire.GetSession)
	sessions.PUT("/:id/answers", ctl.Questionnaire.RecordAnswers)
	sessions.POST("/:id/next", ctl.Questionnaire.Next)
	sessions.POST("/:id/back", ctl.Questionnaire.Back)
	sessions.POST("/:id/submit", ctl.Questionnaire.Submit)

	respondents := r.Group("/respondents/:id")
	respondents.GET("/traits", ctl.Match.GetTraits)
	respondents.POST("/matches", ctl.Match.GenerateMatches)
	respondents.GET("/matches", ctl.Match.ListMatches)
	respondents.POST("/matches/compare", ctl.Match.CompareMatches)
	respondents.POST("/matches/:destinationId/feedback", ctl.Feedback.AddFeedback)
	respondents.GET("/narrative/payload", ctl.Narrative.GetPayload)
	respondents.POST("/narrative", ctl.Narrative.Generate)

	destinations := r.Group("/destinations")
	destinations.GET("", ctl.Destination.ListDestinations)
	destinations.GET("/:id", ctl.Destination.GetDestination)
	destinations.GET("/:id/similar", ctl.Destination.SimilarDestinations)

	admin := r.Group("/admin", middleware.JWTAuthMiddleware(signer), middleware.RoleMiddleware(utils.RoleAdmin))
	admin.POST("/destinations", ctl.Destination.CreateDestination)
	admin.PUT("/destinations/:id", ctl.Destination.UpdateDestination)
	admin.DELETE("/destinations/:id", ctl.Destination.DeleteDestination)
	admin.POST("/respondents/:id/recompute", ctl.Match.Recompute)
	admin.GET("/overview", ctl.Dashboard.GetOverview)
	admin.GET("/feedback", ctl.Feedback.ListFeedback)
}
