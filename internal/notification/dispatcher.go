package notification

import (
	"context"
	"log/slog"
	"time"

	"hotelier/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"
)

var (
	mailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotelier_mails_sent_total",
		Help: "Outbox mails delivered, by topic.",
	}, []string{"topic"})

	mailsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotelier_mails_failed_total",
		Help: "Outbox mail attempts that failed, by topic.",
	}, []string{"topic"})
)

// Dispatcher drains the notification outbox in the background. Jobs are
// claimed with SKIP LOCKED so multiple instances never double-send, and a
// send failure only ever delays the job, never the request that queued it.
type Dispatcher struct {
	pool    *pgxpool.Pool
	mailer  Mailer
	cfg     config.MailerConfig
	limiter *rate.Limiter
	stop    chan struct{}
	stopped chan struct{}
}

func NewDispatcher(pool *pgxpool.Pool, mailer Mailer, cfg config.MailerConfig) *Dispatcher {
	return &Dispatcher{
		pool:    pool,
		mailer:  mailer,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.SendsPerSecond), 1),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (d *Dispatcher) Start() {
	go d.run()
}

func (d *Dispatcher) Stop(ctx context.Context) error {
	close(d.stop)
	select {
	case <-d.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.stopped)

	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), d.cfg.PollInterval)
			if err := d.dispatchBatch(ctx); err != nil {
				slog.Error("notification batch failed", "error", err.Error())
			}
			cancel()
		}
	}
}

type outboxJob struct {
	id       uuid.UUID
	topic    string
	payload  []byte
	attempts int
}

func (d *Dispatcher) dispatchBatch(ctx context.Context) error {
	tx, err := d.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	const claim = `
		SELECT id, topic, payload, attempts
		FROM notification_jobs
		WHERE status = 'queued' AND run_at <= now()
		ORDER BY run_at
		LIMIT $1
		FOR UPDATE SKIP LOCKED`

	rows, err := tx.Query(ctx, claim, d.cfg.BatchSize)
	if err != nil {
		return err
	}

	jobs := []outboxJob{}
	for rows.Next() {
		var j outboxJob
		if err := rows.Scan(&j.id, &j.topic, &j.payload, &j.attempts); err != nil {
			rows.Close()
			return err
		}
		jobs = append(jobs, j)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, job := range jobs {
		if err := d.deliver(ctx, tx, job); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (d *Dispatcher) deliver(ctx context.Context, tx pgx.Tx, job outboxJob) error {
	if err := d.limiter.Wait(ctx); err != nil {
		return err
	}

	sendErr := d.send(job)
	if sendErr == nil {
		mailsSent.WithLabelValues(job.topic).Inc()
		_, err := tx.Exec(ctx,
			`UPDATE notification_jobs SET status = 'sent', attempts = attempts + 1 WHERE id = $1`,
			job.id)
		return err
	}

	mailsFailed.WithLabelValues(job.topic).Inc()
	slog.Warn("mail delivery failed",
		"job_id", job.id,
		"topic", job.topic,
		"attempt", job.attempts+1,
		"error", sendErr.Error())

	if job.attempts+1 >= d.cfg.MaxAttempts {
		_, err := tx.Exec(ctx,
			`UPDATE notification_jobs SET status = 'failed', attempts = attempts + 1, last_error = $2 WHERE id = $1`,
			job.id, sendErr.Error())
		return err
	}

	// Linear backoff: 1m, 2m, 3m between retries.
	delay := time.Duration(job.attempts+1) * time.Minute
	_, err := tx.Exec(ctx,
		`UPDATE notification_jobs SET attempts = attempts + 1, last_error = $2, run_at = now() + $3 WHERE id = $1`,
		job.id, sendErr.Error(), delay)
	return err
}

func (d *Dispatcher) send(job outboxJob) error {
	to, subject, body, err := Render(job.topic, job.payload)
	if err != nil {
		return err
	}
	return d.mailer.Send(to, subject, body)
}
