package echoweb

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/techcomputer/portal/core"
)

var (
	errUnauthenticated = echo.NewHTTPError(http.StatusUnauthorized, "please sign in to continue")
	errHttpForbidden   = echo.NewHTTPError(http.StatusForbidden, "permission denied")
)

// Screens users are sent back to on auth failures: 401 always lands on the
// login screen, 403 on the safe default for their role.
const (
	loginRedirect = "/auth"
	safeRedirect  = "/dashboard"
)

// newHTTPErrorHandler returns an echo.HTTPErrorHandler that knows how to
// handle our errors: validation problems become field maps, upstream API
// errors keep their status and server message verbatim, and 401/403 carry
// the screen to navigate to. signalShutdown is called whenever a
// core.shutdown error is caught.
func newHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}
		var redirect string

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		case *core.APIError:
			// the gateway already tore the session down on 401; we only
			// tell the frontend where to go
			code = origErr.StatusCode
			message = origErr.Message
		default:
			if errors.Cause(err) == core.ErrDeclined {
				// declined confirmations are not errors; nothing changed
				code = http.StatusOK
				message = "cancelled"
				break
			}
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = msg

			var usr core.Profile
			if sess, ok := ctx.Get(contextSessionKey).(core.Session); ok {
				usr = sess.User
			}
			logger.Error(msg, errors.Wrap(err, msg), usr)

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		switch code {
		case http.StatusUnauthorized:
			redirect = loginRedirect
		case http.StatusForbidden:
			redirect = safeRedirect
		}

		if m, ok := message.(string); ok {
			payload := echo.Map{"error": m}
			if redirect != "" {
				payload["redirect"] = redirect
			}
			message = payload
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
