package echoapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core"
)

type procedureType string

const (
	queryType    procedureType = "query"    // GET /rpc/:procedure?input=<json>
	mutationType procedureType = "mutation" // POST /rpc/:procedure with a JSON body
)

type (
	handlerFunc func(ctx echo.Context, input json.RawMessage) (interface{}, error)

	procedure struct {
		typ    procedureType
		handle handlerFunc
	}

	// rpcRouter dispatches named procedures behind a single endpoint.
	rpcRouter struct {
		procedures map[string]procedure
		logger     core.Logger
	}

	rpcData struct {
		Data interface{} `json:"data"`
	}

	rpcResult struct {
		Result rpcData `json:"result"`
	}
)

func newRPCRouter(logger core.Logger) *rpcRouter {
	return &rpcRouter{
		procedures: make(map[string]procedure),
		logger:     logger,
	}
}

func (r *rpcRouter) query(name string, h handlerFunc) {
	r.add(name, queryType, h)
}

func (r *rpcRouter) mutation(name string, h handlerFunc) {
	r.add(name, mutationType, h)
}

func (r *rpcRouter) add(name string, typ procedureType, h handlerFunc) {
	if _, exists := r.procedures[name]; exists {
		panic(fmt.Sprintf("rpc: procedure %q registered twice", name))
	}
	r.procedures[name] = procedure{typ: typ, handle: h}
}

func (r *rpcRouter) has(name string) bool {
	_, ok := r.procedures[name]
	return ok
}

func (r *rpcRouter) mount(g *echo.Group) {
	g.GET("/:procedure", r.serve)
	g.POST("/:procedure", r.serve)
}

func (r *rpcRouter) serve(ctx echo.Context) error {
	name := ctx.Param("procedure")
	proc, ok := r.procedures[name]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("no procedure found on path %q", name))
	}

	input, err := r.input(ctx, proc)
	if err != nil {
		return err
	}

	data, err := proc.handle(ctx, input)
	if err != nil {
		r.logger.Warn("procedure failed", err, map[string]interface{}{
			"procedure":  name,
			"type":       string(proc.typ),
			"request_id": ctx.Response().Header().Get(echo.HeaderXRequestID),
		})
		return err
	}
	return ctx.JSON(http.StatusOK, rpcResult{Result: rpcData{Data: data}})
}

func (r *rpcRouter) input(ctx echo.Context, proc procedure) (json.RawMessage, error) {
	method := ctx.Request().Method
	switch proc.typ {
	case queryType:
		if method != http.MethodGet {
			return nil, errMethodNotSupported
		}
		if raw := ctx.QueryParam("input"); raw != "" {
			return json.RawMessage(raw), nil
		}
		return nil, nil
	default:
		if method != http.MethodPost {
			return nil, errMethodNotSupported
		}
		body, err := io.ReadAll(ctx.Request().Body)
		if err != nil {
			return nil, errors.Wrap(err, "reading request body")
		}
		return body, nil
	}
}
