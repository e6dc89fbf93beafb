package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests"},
		[]string{"route", "method", "status"},
	)
	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Request duration seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	InFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "http_in_flight_requests", Help: "In-flight HTTP requests"},
	)

	PostsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "forum_posts_created_total", Help: "Posts created"},
	)
	PostsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "forum_posts_deleted_total", Help: "Posts deleted"},
	)
	CommentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "forum_comments_created_total", Help: "Comments created"},
	)
	LikeToggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "forum_like_toggles_total", Help: "Like/unlike operations"},
		[]string{"target", "action"},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		RequestsTotal, ReqDuration, InFlight,
		PostsCreated, PostsDeleted, CommentsCreated, LikeToggles,
	)
}
