package main

import (
	"embed"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"

	"github.com/gbpkcompany/brief.job/config"
	"github.com/gbpkcompany/brief.job/data"
	"github.com/gbpkcompany/brief.job/data/repos"
	"github.com/gbpkcompany/brief.job/models"
	"github.com/gbpkcompany/brief.job/notifiers"
	"github.com/gbpkcompany/brief.job/renderers"
)

//go:embed data/migrations/*.sql
var embedMigrations embed.FS

// Runs once per scheduled invocation: fetch today's items, render the
// brief, send it, exit. Any stage failure ends the run with a non-zero
// exit; the scheduler owns re-triggering.
func main() {
	config.LoadConfig()

	opts := slog.HandlerOptions{Level: config.Config.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &opts))
	slog.SetDefault(logger)

	runID := uuid.New()
	today := time.Now()
	slog.Info("starting daily brief run", "run_id", runID, "date", renderers.DateHeading(today))

	db, err := sqlx.Connect("postgres", config.Config.PostgresURL)
	if err != nil {
		slog.Error("failed to connect to db", "run_id", runID, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database connection", "run_id", runID, "error", err)
		}
	}()

	if err := data.RunMigrations(db.DB, embedMigrations); err != nil {
		slog.Error("failed to run migrations", "run_id", runID, "error", err)
		os.Exit(1)
	}

	digestRepo := repos.NewDigestRepo(db)
	items, err := digestRepo.GetItemsForDate(today)
	if err != nil {
		slog.Error("failed to fetch digest items", "run_id", runID, "error", err)
		os.Exit(1)
	}
	slog.Debug("fetched digest items", "run_id", runID, "count", len(items))

	body := renderers.Digest(items, today)

	mailer := notifiers.NewMailer(
		config.Config.SMTPHost,
		config.Config.SMTPPort,
		config.Config.SMTPFrom,
		config.Config.SMTPPassword,
	)
	mail := models.Email{
		To:      config.Config.Recipients,
		Subject: renderers.Subject(today),
		Body:    body,
	}
	if err := mailer.Send(mail); err != nil {
		slog.Error("failed to send daily brief", "run_id", runID, "error", err)
		os.Exit(1)
	}

	slog.Info("daily brief sent", "run_id", runID, "items", len(items), "recipients", len(mail.To))
}
