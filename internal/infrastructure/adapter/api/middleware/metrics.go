package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	metricsprom "github.com/slok/go-http-metrics/metrics/prometheus"
	httpmetrics "github.com/slok/go-http-metrics/middleware"
	ginmetrics "github.com/slok/go-http-metrics/middleware/gin"
)

const unmatchedRoute = "unmatched"

// Metrics records request count, latency and size per route template on reg
func Metrics(reg prometheus.Registerer) gin.HandlerFunc {
	mw := httpmetrics.New(httpmetrics.Config{
		Recorder: metricsprom.NewRecorder(metricsprom.Config{
			Registry: reg,
		}),
		GroupedStatus: true,
	})

	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		ginmetrics.Handler(route, mw)(c)
	}
}
