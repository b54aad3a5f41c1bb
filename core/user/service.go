package user

import (
	"context"

	"github.com/pkg/errors"

	"github.com/techcomputer/portal/core"
)

type (
	// Repository is the backend API surface for accounts; the gateway
	// implements it over HTTP.
	Repository interface {
		Login(ctx context.Context, data Login) (token string, usr User, err error)
		Register(ctx context.Context, data Register) error
		VerifyEmail(ctx context.Context, token string) error
		ResendVerification(ctx context.Context, email string) error
		ForgotPassword(ctx context.Context, email string) error
		QueryAllUsers(ctx context.Context) ([]User, error)
		SetUserRole(ctx context.Context, id, role string) (User, error)
		DeleteUser(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
		sess core.SessionStore
	}
)

func NewService(repo Repository, sess core.SessionStore) *Service {
	return &Service{repo: repo, sess: sess}
}

// Login authenticates against the backend and persists the returned token and
// profile as the session.
func (svc *Service) Login(ctx context.Context, data Login) (core.Session, error) {
	if err := data.Validate(); err != nil {
		return core.Session{}, err
	}
	token, usr, err := svc.repo.Login(ctx, data)
	if err != nil {
		return core.Session{}, err
	}
	sess := core.Session{Token: token, User: usr.Profile()}
	if err = svc.sess.Save(sess); err != nil {
		return core.Session{}, errors.Wrap(err, "saving session")
	}
	return sess, nil
}

// Logout drops the stored session. It never fails the user: a missing session
// is as logged-out as a cleared one.
func (svc *Service) Logout() error {
	return svc.sess.Clear()
}

func (svc *Service) Current() (core.Session, error) {
	return svc.sess.Load()
}

func (svc *Service) Register(ctx context.Context, data Register) error {
	if err := data.Validate(); err != nil {
		return err
	}
	return svc.repo.Register(ctx, data)
}

func (svc *Service) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return core.NewValidationError(errors.New("verification token is missing"),
			core.FieldError{Field: "token", Error: "verification token is missing"})
	}
	return svc.repo.VerifyEmail(ctx, token)
}

func (svc *Service) ResendVerification(ctx context.Context, email string) error {
	email = core.CleanString(email, true /* lower */)
	if err := core.Validate.Var(email, "required,email"); err != nil {
		return err
	}
	return svc.repo.ResendVerification(ctx, email)
}

// ForgotPassword asks the backend to email a reset link; completing the reset
// happens on the backend's own pages.
func (svc *Service) ForgotPassword(ctx context.Context, email string) error {
	email = core.CleanString(email, true /* lower */)
	if err := core.Validate.Var(email, "required,email"); err != nil {
		return err
	}
	return svc.repo.ForgotPassword(ctx, email)
}

// QueryAll lists every account. Admin only; the backend enforces it.
func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

// Promote grants the admin role to an account.
func (svc *Service) Promote(ctx context.Context, id string) (User, error) {
	return svc.repo.SetUserRole(ctx, id, core.RoleAdmin)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteUser(ctx, id)
}
