package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akshayp/cetadvisor/internal/pkg/metrics"
)

// Metrics records request counts and durations per route. The route
// template is used instead of the raw path so ids do not explode the
// label cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
