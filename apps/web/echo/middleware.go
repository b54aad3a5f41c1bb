package echoweb

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/techcomputer/portal/core"
	"github.com/techcomputer/portal/session"
)

const contextSessionKey = "session"

// sessionMiddleware loads the cookie session into the request context.
// An expired bearer token counts as logged out without waiting for the
// backend to say so.
func (s *server) sessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			store := newCookieStore(ctx, s.opts.Conf)
			sess, err := store.Load()
			if err == nil && sess.Authenticated() {
				if claims, cerr := session.Peek(sess.Token); cerr == nil && claims.Expired(time.Now()) {
					_ = store.Clear()
					sess = core.Session{}
				}
			}
			ctx.Set(contextSessionKey, sess)
			return next(ctx)
		}
	}
}

func contextSession(ctx echo.Context) core.Session {
	if sess, ok := ctx.Get(contextSessionKey).(core.Session); ok {
		return sess
	}
	return core.Session{}
}

func authRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !contextSession(ctx).Authenticated() {
				return errUnauthenticated
			}
			return next(ctx)
		}
	}
}

func adminRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !contextSession(ctx).User.IsAdmin() {
				return errHttpForbidden
			}
			return next(ctx)
		}
	}
}
