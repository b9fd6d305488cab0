package webui

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/nvillanueva/registra/core"
)

type errorPage struct {
	Code    int
	Message string
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how
// to handle our errors. Form handlers deal with validation and backend
// failures inline; whatever reaches here renders the standalone error page.
// signalShutdown is called whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message string

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			if msg, ok := origErr.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		case validator.ValidationErrors:
			msgs := make([]string, 0, len(origErr))
			for _, vErr := range origErr {
				msgs = append(msgs, vErr.Translate(core.Translator))
			}
			code = http.StatusBadRequest
			message = strings.Join(msgs, "; ")
		case *core.ValidationError:
			code = http.StatusBadRequest
			message = strings.Join(origErr.Messages(), "; ")
		case *core.RemoteError:
			code = http.StatusBadGateway
			message = strings.Join(origErr.Messages, "; ")
		default: // any other error is a server error
			code = http.StatusInternalServerError
			message = http.StatusText(code)
			logger.Error(message, errors.Wrap(err, message))

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		}

		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.Render(code, "error", page{
					Title: "Error",
					Data:  errorPage{Code: code, Message: message},
				})
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}

// errorMessages flattens any failure into the banner lines shown on a
// re-rendered form: client validation rules, the backend's error list, or a
// generic connection message for transport failures.
func errorMessages(err error) (msgs []string, level string) {
	switch origErr := errors.Cause(err).(type) {
	case *core.ValidationError:
		return origErr.Messages(), "warning"
	case validator.ValidationErrors:
		for _, vErr := range origErr {
			msgs = append(msgs, vErr.Translate(core.Translator))
		}
		return msgs, "warning"
	case *core.RemoteError:
		return origErr.Messages, "warning"
	default:
		return []string{"Error de conexión con el servidor"}, "danger"
	}
}
