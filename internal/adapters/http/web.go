package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"fittrack/internal/adapters/email"
	"fittrack/internal/adapters/http/middleware"
	"fittrack/internal/adapters/http/perf"
	exerciseStore "fittrack/internal/adapters/storage/exercise"
	measurementStore "fittrack/internal/adapters/storage/measurement"
	preferenceStore "fittrack/internal/adapters/storage/preference"
	routineStore "fittrack/internal/adapters/storage/routine"
	routineExerciseStore "fittrack/internal/adapters/storage/routineexercise"
	scheduleStore "fittrack/internal/adapters/storage/schedule"
	sessionStore "fittrack/internal/adapters/storage/session"
)

// Stores holds all storage dependencies.
type Stores struct {
	RoutineStore         routineStore.Store
	ExerciseStore        exerciseStore.Store
	RoutineExerciseStore routineExerciseStore.Store
	ScheduleStore        scheduleStore.Store
	MeasurementStore     measurementStore.Store
	PreferenceStore      preferenceStore.Store
	SessionStore         sessionStore.Store
}

// loadCSRFKey reads the CSRF secret from FITTRACK_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("FITTRACK_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("FITTRACK_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("FITTRACK_ENV") == "production" {
		log.Fatal("FITTRACK_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key. Set FITTRACK_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var emailToAddress string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, to string) {
	emailSender = sender
	emailFromAddress = from
	emailToAddress = to
}

// NewMux wires HTTP handlers for the app.
func NewMux(s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector

	mux := http.NewServeMux()
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
