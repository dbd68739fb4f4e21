package components

import (
	"fleet-reservations/internal/handler"
	"fleet-reservations/internal/handler/api"
	"fleet-reservations/internal/handler/middleware"
	"fleet-reservations/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewVehicleHandler,
		func(svc *jwt.Service) middleware.TokenValidator { return svc },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
