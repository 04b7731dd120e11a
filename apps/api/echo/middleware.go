package echoapi

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/ulule/limiter/v3"
)

var (
	rpcRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lmsadmin",
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "RPC calls by procedure and HTTP status.",
		},
		[]string{"procedure", "status"},
	)
	rpcDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lmsadmin",
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "RPC call latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"procedure"},
	)
)

// metricsMiddleware records every RPC call; unknown procedure names share one label.
func metricsMiddleware(rpc *rpcRouter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			name := ctx.Param("procedure")
			if !rpc.has(name) {
				name = "unknown"
			}
			status := ctx.Response().Status
			if err != nil {
				status, _ = statusCode(err)
			}
			rpcRequests.WithLabelValues(name, strconv.Itoa(status)).Inc()
			rpcDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// rateLimitMiddleware limits calls per client IP.
func rateLimitMiddleware(lim *limiter.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			lctx, err := lim.Get(ctx.Request().Context(), ctx.RealIP())
			if err != nil {
				return errors.Wrap(err, "getting rate limit")
			}

			h := ctx.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

			if lctx.Reached {
				return errTooManyRequests
			}
			return next(ctx)
		}
	}
}

// requestLogMiddleware writes one access log line per request.
func requestLogMiddleware(zl zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			evt := zl.Info()
			if v.Status >= 500 {
				evt = zl.Error()
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
