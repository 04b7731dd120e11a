package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/lmsadmin/core"
)

const healthTimeout = 3 * time.Second

type (
	healthApi struct {
		db     core.Pinger
		logger core.Logger
	}

	healthResponse struct {
		Status    string            `json:"status"`
		Timestamp time.Time         `json:"timestamp"`
		Checks    map[string]string `json:"checks"`
	}
)

func registerHealthAPI(rpc *rpcRouter, db core.Pinger, logger core.Logger) {
	api := healthApi{db: db, logger: logger}
	rpc.query("healthCheck", api.check)
}

func (api *healthApi) check(ctx echo.Context, _ json.RawMessage) (interface{}, error) {
	c, cancel := context.WithTimeout(ctx.Request().Context(), healthTimeout)
	defer cancel()

	if err := api.db.PingContext(c); err != nil {
		api.logger.Error("health check: database unavailable", err)
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable").SetInternal(err)
	}
	return healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Checks:    map[string]string{"database": "ok"},
	}, nil
}
