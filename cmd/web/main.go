package main

import (
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"turfdesk/internal/form"
	"turfdesk/internal/images"
	"turfdesk/internal/ratelimiter"
	"turfdesk/internal/session"
	"turfdesk/internal/turfapi"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	// Default values
	defaultRequests := 200
	defaultEnabled := false

	// Retrieve request count with error handling
	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	// Retrieve enabled flag with error handling
	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	// Configure the encoder to be a console encoder with color
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder // This adds color to log levels (INFO, WARN, ERROR)

	// Create a console encoder with the custom configuration
	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	// Create a log level (you can set your own level here)
	level := zapcore.InfoLevel

	// Use zapcore.NewCore to write logs to standard output (stdout) with color
	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	// Create and return a new logger instance
	logger := zap.New(core)

	return logger.Sugar(), nil
}

// minutesEnv reads a duration given in whole minutes, falling back when the
// variable is absent or unparsable.
func minutesEnv(key string, fallback time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	minutes, err := strconv.Atoi(val)
	if err != nil || minutes <= 0 {
		fmt.Println("Invalid", key+", defaulting to", fallback)
		return fallback
	}
	return time.Duration(minutes) * time.Minute
}

var version = "1.0.0"

//	@title			TurfDesk Console
//	@description	Owner console for creating and editing turf listings against the Khel backend.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath	/v1

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	// Retrieve and convert the backend call timeout
	backendTimeout := 30 * time.Second
	if val, exists := os.LookupEnv("BACKEND_TIMEOUT_SECONDS"); exists {
		seconds, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("Invalid value for BACKEND_TIMEOUT_SECONDS: %v", err)
		}
		backendTimeout = time.Duration(seconds) * time.Second
	}

	// The multipart cap has to sit above the per-file limit, otherwise an
	// oversized file dies in transport before staging can report it.
	maxBodyBytes := int64(64 << 20)
	if val, exists := os.LookupEnv("MAX_UPLOAD_BODY_BYTES"); exists {
		parsed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			log.Fatalf("Invalid value for MAX_UPLOAD_BODY_BYTES: %v", err)
		}
		maxBodyBytes = parsed
	}

	cfg := config{
		addr:   os.Getenv("ADDR"),
		env:    os.Getenv("ENV"),
		apiURL: os.Getenv("EXTERNAL_URL"),
		backend: backendConfig{
			addr:    os.Getenv("BACKEND_ADDR"),
			token:   os.Getenv("BACKEND_TOKEN"),
			timeout: backendTimeout,
		},
		upload: uploadConfig{
			provider:      os.Getenv("UPLOAD_PROVIDER"),
			cloudinaryURL: os.Getenv("CLOUDINARY_URL"),
			folder:        os.Getenv("CLOUDINARY_FOLDER"),
			maxBodyBytes:  maxBodyBytes,
		},
		form: formConfig{
			ttl:           minutesEnv("FORM_TTL_MINUTES", time.Hour),
			sweepInterval: minutesEnv("FORM_SWEEP_MINUTES", 10*time.Minute),
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
	}

	// Logger
	// Create the logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	if cfg.backend.addr == "" {
		logger.Fatal("BACKEND_ADDR is not set")
	}

	// Backend client and image reference resolver
	backend := turfapi.NewClient(cfg.backend.addr, cfg.backend.token, cfg.backend.timeout)
	resolver := turfapi.NewResolver(cfg.backend.addr)

	// Upload provider: the backend's file endpoint by default, Cloudinary
	// when selected explicitly.
	var uploads form.UploadService = backend
	if cfg.upload.provider == "cloudinary" {
		folder := cfg.upload.folder
		if folder == "" {
			folder = "turfs"
		}
		cld, err := images.NewCloudinaryUploader(cfg.upload.cloudinaryURL, folder)
		if err != nil {
			logger.Fatal(err)
		}
		uploads = cld
		logger.Infow("upload provider selected", "provider", "cloudinary", "folder", folder)
	}

	// Owner identity: OWNER_ID pins it, otherwise it comes from the session
	// token's claims.
	var identity form.Identity = session.NewTokenIdentity(cfg.backend.token)
	if val, exists := os.LookupEnv("OWNER_ID"); exists {
		ownerID, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			logger.Fatalf("Invalid value for OWNER_ID: %v", err)
		}
		identity = session.StaticIdentity{ID: ownerID}
	}

	// Open-form registry with background eviction
	registry := form.NewRegistry(cfg.form.ttl, logger)
	registry.SweepExpiredEvery(cfg.form.sweepInterval)

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	submitter := &form.Submitter{
		Uploads: uploads,
		Turfs:   backend,
		Session: identity,
		Logger:  logger,
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		backend:     backend,
		resolver:    resolver,
		forms:       registry,
		submitter:   submitter,
		rateLimiter: rateLimiter,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))
	expvar.Publish("open_forms", expvar.Func(func() any {
		return registry.Len()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
