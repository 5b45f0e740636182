package components

import (
	"hotelier/internal/handler"
	"hotelier/internal/handler/api"
	"hotelier/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewGuestHandler,
		api.NewReservationHandler,
		api.NewBillingHandler,
		api.NewCatalogHandler,
		api.NewMessageHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	room *api.RoomHandler,
	guest *api.GuestHandler,
	reservation *api.ReservationHandler,
	billing *api.BillingHandler,
	catalog *api.CatalogHandler,
	message *api.MessageHandler,
	dashboard *api.DashboardHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Room:        room,
		Guest:       guest,
		Reservation: reservation,
		Billing:     billing,
		Catalog:     catalog,
		Message:     message,
		Dashboard:   dashboard,
	}
}
