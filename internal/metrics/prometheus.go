package metrics

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint", "status"},
	)
	mutacoesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "painel_mutacoes_total",
			Help: "Inserts, updates and deletes issued against the tables, by outcome.",
		},
		[]string{"entidade", "operacao", "resultado"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(mutacoesTotal)
}

// RecordRequest registra as métricas de uma requisição HTTP.
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordMutation conta uma operação de escrita; err nil conta como "ok".
func RecordMutation(entidade, operacao string, err error) {
	resultado := "ok"
	if err != nil {
		resultado = "erro"
	}
	mutacoesTotal.WithLabelValues(entidade, operacao, resultado).Inc()
}

func classifyStatus(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500 && statusCode < 600:
		return "5xx"
	}
	return "unknown"
}

// Middleware mede cada requisição usando a rota registrada (não o path bruto)
// para não explodir a cardinalidade com ids.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		RecordRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}

// Handler exporta as métricas no formato do Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}
