package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	FavoritesChanged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFavoritesChanged,
			Help: HelpTextFavoritesChanged,
		},
		[]string{LabelAction},
	)

	ShowStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShowStateChanges,
			Help: HelpTextShowStateChanges,
		},
		[]string{LabelField, LabelValue},
	)

	RatingsSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRatingsSaved,
			Help: HelpTextRatingsSaved,
		},
		[]string{LabelRating},
	)

	Reviews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReviews,
			Help: HelpTextReviews,
		},
		[]string{LabelAction},
	)

	PlaylistsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlaylistsCreated,
			Help: HelpTextPlaylistsCreated,
		},
		[]string{LabelVisibility},
	)

	PlaylistMediaAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlaylistMediaAdded,
			Help: HelpTextPlaylistMediaAdded,
		},
	)

	CounterProfilesFixed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCounterProfilesFixed,
			Help: HelpTextCounterProfilesFixed,
		},
	)
)
