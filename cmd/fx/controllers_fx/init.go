package controllers_fx

import (
	"go.uber.org/fx"

	"happy/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewOrphanagesController),
	fx.Provide(controllers.NewHealthController))
