package controllers_fx

import (
	"go.uber.org/fx"

	"soulprint/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewQuestionnaireController),
	fx.Provide(controllers.NewMatchController),
	fx.Provide(controllers.NewNarrativeController),
	fx.Provide(controllers.NewFeedbackController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewDashboardController))
