package echoweb

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"

	"github.com/techcomputer/portal/core"
)

// cookieClaims wraps the session for transport inside a signed cookie. The
// bearer token itself is opaque to us; signing keeps the profile honest.
type cookieClaims struct {
	jwt.StandardClaims
	Session core.Session `json:"session"`
}

// cookieStore keeps the session in a signed cookie on the current request,
// implementing core.SessionStore so a gateway client can be bound to it.
// Clear is idempotent per response: repeated 401s from in-flight upstream
// calls drop the cookie exactly once.
type cookieStore struct {
	ctx     echo.Context
	name    string
	secret  []byte
	maxAge  time.Duration
	cleared bool
}

var _ core.SessionStore = (*cookieStore)(nil)

func newCookieStore(ctx echo.Context, conf *core.Config) *cookieStore {
	return &cookieStore{
		ctx:    ctx,
		name:   conf.Web.SessionCookie,
		secret: []byte(conf.SecretKey),
		maxAge: 7 * 24 * time.Hour,
	}
}

func (s *cookieStore) Load() (core.Session, error) {
	cookie, err := s.ctx.Cookie(s.name)
	if err != nil || cookie.Value == "" || s.cleared {
		return core.Session{}, nil
	}

	claims := new(cookieClaims)
	_, err = jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		// a tampered or expired cookie is simply a logged-out visitor
		return core.Session{}, nil
	}
	return claims.Session, nil
}

func (s *cookieStore) Save(sess core.Session) error {
	now := time.Now()
	claims := &cookieClaims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.maxAge).Unix(),
		},
		Session: sess,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return err
	}

	s.cleared = false
	s.ctx.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(s.maxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *cookieStore) Clear() error {
	if s.cleared {
		return nil
	}
	s.cleared = true
	s.ctx.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
