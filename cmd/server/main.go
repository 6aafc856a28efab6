package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	emailPkg "fittrack/internal/adapters/email"
	web "fittrack/internal/adapters/http"
	"fittrack/internal/adapters/http/perf"
	"fittrack/internal/adapters/storage"
	exerciseStore "fittrack/internal/adapters/storage/exercise"
	measurementStore "fittrack/internal/adapters/storage/measurement"
	preferenceStore "fittrack/internal/adapters/storage/preference"
	routineStore "fittrack/internal/adapters/storage/routine"
	routineExerciseStore "fittrack/internal/adapters/storage/routineexercise"
	scheduleStore "fittrack/internal/adapters/storage/schedule"
	sessionStore "fittrack/internal/adapters/storage/session"
	"fittrack/internal/application/orchestrators"
	"fittrack/internal/application/projections"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("FITTRACK_DB", "fittrack.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	// Run database migrations
	if err := storage.MigrateDB(db, dbPath); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	// Create store instances (using timed DB for query instrumentation)
	exStore := exerciseStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		RoutineStore:         routineStore.NewSQLiteStore(timedDB),
		ExerciseStore:        exStore,
		RoutineExerciseStore: routineExerciseStore.NewSQLiteStore(timedDB),
		ScheduleStore:        scheduleStore.NewSQLiteStore(timedDB),
		MeasurementStore:     measurementStore.NewSQLiteStore(timedDB),
		PreferenceStore:      preferenceStore.NewSQLiteStore(timedDB),
		SessionStore:         sessionStore.NewSQLiteStore(timedDB),
	}

	// Seed the default exercise library on first run
	seedDeps := orchestrators.SeedExercisesDeps{ExerciseStore: exStore}
	if err := orchestrators.ExecuteSeedExercises(context.Background(), seedDeps); err != nil {
		log.Fatalf("failed to seed exercises: %v", err)
	}

	// Configure email sender
	resendKey := os.Getenv("FITTRACK_RESEND_KEY")
	emailFrom := envOrDefault("FITTRACK_MAIL_FROM", "FitTrack <noreply@fittrack.app>")
	emailTo := os.Getenv("FITTRACK_MAIL_TO")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, emailTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, emailTo)
		log.Println("Email sender configured (noop — set FITTRACK_RESEND_KEY for real delivery)")
	}

	// Weekly plan reminder worker, enabled by FITTRACK_REMINDER_DAYS
	reminderStopCh := make(chan struct{})
	defer close(reminderStopCh)
	if emailTo != "" {
		if interval := reminderInterval(); interval > 0 {
			planDeps := orchestrators.SendWeeklyPlanDeps{
				ScheduleDeps: projections.GetWeekScheduleDeps{ScheduleStore: stores.ScheduleStore},
				Sender:       emailPkg.NewNoopSender(),
			}
			if resendKey != "" {
				planDeps.Sender = emailPkg.NewResendSender(resendKey, emailFrom)
			}
			input := orchestrators.SendWeeklyPlanInput{To: []string{emailTo}}
			orchestrators.StartReminderWorker(input, planDeps, interval, reminderStopCh)
			log.Printf("Weekly plan reminder every %v to %s", interval, emailTo)
		}
	}

	// Create HTTP handler with middleware (pass collector for timing + perf endpoint)
	mux := web.NewMux(stores, collector)

	// Start server
	addr := envOrDefault("FITTRACK_ADDR", ":8080")
	log.Printf("FitTrack %s starting on %s (env=%s, schema=%d)", version, addr, envOrDefault("FITTRACK_ENV", "development"), storage.LatestSchemaVersion())

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// reminderInterval reads FITTRACK_REMINDER_DAYS; 0 disables the worker.
func reminderInterval() time.Duration {
	v := os.Getenv("FITTRACK_REMINDER_DAYS")
	if v == "" {
		return 0
	}
	days, err := strconv.Atoi(v)
	if err != nil || days <= 0 {
		log.Printf("invalid FITTRACK_REMINDER_DAYS %q, reminder disabled", v)
		return 0
	}
	return time.Duration(days) * 24 * time.Hour
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
