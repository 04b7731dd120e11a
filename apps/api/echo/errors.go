package echoapi

import (
	"fmt"
	"net/http"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core"
)

const (
	codeBadRequest          = "BAD_REQUEST"
	codeNotFound            = "NOT_FOUND"
	codeMethodNotSupported  = "METHOD_NOT_SUPPORTED"
	codeConflict            = "CONFLICT"
	codeConstraintViolation = "CONSTRAINT_VIOLATION"
	codeTooManyRequests     = "TOO_MANY_REQUESTS"
	codeInternalServerError = "INTERNAL_SERVER_ERROR"
)

var (
	errMethodNotSupported = echo.NewHTTPError(http.StatusMethodNotAllowed, "method not supported for this procedure")
	errTooManyRequests    = echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
)

type (
	rpcError struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields,omitempty"`
	}

	rpcErrorResponse struct {
		Error rpcError `json:"error"`
	}
)

// statusCode returns the HTTP status and error code an error is reported with.
func statusCode(err error) (int, string) {
	switch origErr := errors.Cause(err).(type) {
	case *echo.HTTPError:
		return origErr.Code, codeFromStatus(origErr.Code)
	case validator.ValidationErrors, *core.ValidationError:
		return http.StatusBadRequest, codeBadRequest
	case *core.NotFoundError:
		return http.StatusNotFound, codeNotFound
	case *core.ConflictError:
		return http.StatusConflict, codeConflict
	case *core.ConstraintError:
		return http.StatusConflict, codeConstraintViolation
	default:
		return http.StatusInternalServerError, codeInternalServerError
	}
}

func codeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return codeBadRequest
	case http.StatusNotFound:
		return codeNotFound
	case http.StatusMethodNotAllowed:
		return codeMethodNotSupported
	case http.StatusConflict:
		return codeConflict
	case http.StatusTooManyRequests:
		return codeTooManyRequests
	case http.StatusInternalServerError:
		return codeInternalServerError
	}
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code, errCode := statusCode(err)
		body := rpcError{Code: errCode}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			body.Message = fmt.Sprint(origErr.Message)
		case validator.ValidationErrors:
			body.Message = "invalid input"
			body.Fields = core.TranslateErrors(origErr, translator)
		case *core.ValidationError:
			body.Message = origErr.Error()
			if origErr.Fields != nil {
				body.Fields = make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					body.Fields[fErr.Field] = fErr.Error
				}
			}
		case *core.NotFoundError, *core.ConflictError, *core.ConstraintError:
			body.Message = origErr.Error()
		default: // any other error is a server error
			msg := http.StatusText(http.StatusInternalServerError)
			body.Message = msg
			if ctx.Echo().Debug {
				body.Message = err.Error()
			}
			logger.Error(msg, errors.Wrap(err, msg), map[string]interface{}{
				"method":     ctx.Request().Method,
				"uri":        ctx.Request().RequestURI,
				"request_id": ctx.Response().Header().Get(echo.HeaderXRequestID),
			})

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		// Send response
		if ctx.Request().Method == http.MethodHead { // Issue #608
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, rpcErrorResponse{Error: body})
		}
		if err != nil {
			logger.Error("sending error response", err)
		}
	}
}
