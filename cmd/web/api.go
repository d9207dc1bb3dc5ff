package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"turfdesk/docs" //this is required to serve the swagger document
	"turfdesk/internal/form"
	"turfdesk/internal/ratelimiter"
	"turfdesk/internal/turfapi"

	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	backend     *turfapi.Client
	resolver    *turfapi.Resolver
	forms       *form.Registry
	submitter   *form.Submitter
	rateLimiter ratelimiter.Limiter
}

type config struct {
	addr        string
	env         string
	apiURL      string
	backend     backendConfig
	upload      uploadConfig
	form        formConfig
	auth        authConfig
	rateLimiter ratelimiter.Config
}

type backendConfig struct {
	addr    string
	token   string
	timeout time.Duration
}

type uploadConfig struct {
	provider      string
	cloudinaryURL string
	folder        string
	maxBodyBytes  int64
}

type formConfig struct {
	ttl           time.Duration
	sweepInterval time.Duration
}

type authConfig struct {
	basic basicConfig
}

type basicConfig struct {
	user string
	pass string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)
	})

	r.Group(func(r chi.Router) {
		r.Use(app.RateLimiterMiddleware)

		r.Get("/", app.indexHandler)
		r.Get("/turfs/new", app.newTurfFormHandler)
		r.Get("/turfs/{turfID}/edit", app.editTurfFormHandler)

		r.Route("/forms/{formID}", func(r chi.Router) {
			r.Get("/", app.showFormHandler)
			r.Post("/images", app.attachImagesHandler)
			r.Post("/images/remove", app.removeImageHandler)
			r.Post("/submit", app.submitFormHandler)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
