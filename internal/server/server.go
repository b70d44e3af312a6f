package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/SceneIt_Go/internal/auth"
	"github.com/osse101/SceneIt_Go/internal/database"
	"github.com/osse101/SceneIt_Go/internal/handler"
	"github.com/osse101/SceneIt_Go/internal/logger"
	"github.com/osse101/SceneIt_Go/internal/metrics"
	"github.com/osse101/SceneIt_Go/internal/playlist"
	"github.com/osse101/SceneIt_Go/internal/profile"
	"github.com/osse101/SceneIt_Go/internal/review"
	"github.com/osse101/SceneIt_Go/internal/tracking"
)

// Options configures the HTTP surface
type Options struct {
	Port              int
	AllowedOrigins    []string
	TrustedProxies    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Services are the domain services behind the handlers
type Services struct {
	Tracking tracking.Service
	Playlist playlist.Service
	Review   review.Service
	Profile  profile.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, verifier auth.Verifier, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, verifier, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
		dbPool: dbPool,
	}
}

// NewRouter assembles the middleware stack and every route
func NewRouter(opts Options, dbPool database.Pool, verifier auth.Verifier, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware(opts.AllowedOrigins))
	r.Use(RateLimitMiddleware(opts.RateLimitRequests, opts.RateLimitWindow, opts.TrustedProxies))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))

	requireAuth := auth.Require(verifier)
	optionalAuth := auth.Optional(verifier)

	playlistHandler := handler.NewPlaylistHandler(svc.Playlist, svc.Tracking)
	ratingHandler := handler.NewRatingHandler(svc.Tracking)
	showHandler := handler.NewShowHandler(svc.Tracking)
	reviewHandler := handler.NewReviewHandler(svc.Review)
	userHandler := handler.NewUserHandler(svc.Profile, svc.Playlist, svc.Review)

	// Probes and operational endpoints
	r.Get("/", handler.HandleRoot())
	r.Get("/health", handler.HandleHealth())
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.With(requireAuth).Get("/private/ping", handler.HandlePrivatePing())

	r.Route("/playlists", func(r chi.Router) {
		// chi matches the static /favorites/check before this pattern, so a
		// profile id of "check" is unreachable here. Ids are provider UUIDs.
		r.Get("/favorites/{profileId}", playlistHandler.HandleGetFavorites)
		r.With(optionalAuth).Get("/user/{profileId}", playlistHandler.HandleListForProfile)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", playlistHandler.HandleCreate)
			r.Post("/favorites", playlistHandler.HandleAddFavorite)
			r.Get("/favorites/check", playlistHandler.HandleCheckFavorite)
			r.Delete("/favorites/{tmdbId}", playlistHandler.HandleRemoveFavorite)
			r.Post("/{playlistId}/media", playlistHandler.HandleAddMedia)
			r.Delete("/{playlistId}/media/{tmdbId}", playlistHandler.HandleRemoveMedia)
		})
	})

	r.Route("/ratings", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", ratingHandler.HandleSave)
		r.Get("/{mediaTmdbId}", ratingHandler.HandleGet)
	})

	r.Route("/shows", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", showHandler.HandleList)
		r.Get("/{tmdbId}/state", showHandler.HandleState)
		r.Post("/{tmdbId}/watched", showHandler.HandleSetWatched)
		r.Post("/{tmdbId}/listed", showHandler.HandleSetListed)
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/show/{showId}", reviewHandler.HandleListByShow)
			r.Get("/user/{userId}", reviewHandler.HandleListByUser)
			r.With(requireAuth).Post("/", reviewHandler.HandleCreate)
			r.With(requireAuth).Delete("/{reviewId}", reviewHandler.HandleDelete)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(requireAuth).Get("/me", userHandler.HandleGetMe)
			r.With(requireAuth).Patch("/me", userHandler.HandleUpdateMe)

			r.With(optionalAuth).Get("/{id}", userHandler.HandleGet)
			r.With(optionalAuth).Get("/{id}/playlists", userHandler.HandlePlaylists)
			r.Get("/{id}/favorites", userHandler.HandleFavorites)
			r.Get("/{id}/reviews", userHandler.HandleReviews)
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
