package bootstrap

import (
	"context"
	"log/slog"

	"hotelier/internal/notification"
	"hotelier/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailer,
	),
	fx.Invoke(StartDispatcher),
)

func NewMailer(cfg config.Config) notification.Mailer {
	return notification.NewSMTPMailer(cfg.SMTP)
}

// StartDispatcher runs the outbox loop for the process lifetime. Disabled
// deployments still queue jobs; another instance drains them.
func StartDispatcher(lc fx.Lifecycle, pool *pgxpool.Pool, mailer notification.Mailer, cfg config.Config) {
	if !cfg.Mailer.Enabled {
		slog.Info("mail dispatcher disabled")
		return
	}

	dispatcher := notification.NewDispatcher(pool, mailer, cfg.Mailer)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			dispatcher.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return dispatcher.Stop(ctx)
		},
	})
}
