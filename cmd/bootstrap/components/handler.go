package components

import (
	"lensfolio/internal/handler"
	"lensfolio/internal/handler/api"
	"lensfolio/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCouponHandler,
		api.NewBookingHandler,
		api.NewPhotoHandler,
		api.NewSettingsHandler,
		api.NewContactHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
