package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techcomputer/portal/core"
	"github.com/techcomputer/portal/core/user"
	"github.com/techcomputer/portal/session"
	testutil "github.com/techcomputer/portal/tests"
)

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("ok saves the session", func(t *testing.T) {
		repo := &testutil.UserRepo{
			Token: "tok123",
			User:  user.User{ID: "u1", Name: "Rahim", Email: "rahim@test.tc", Role: core.RoleStudent},
		}
		store := session.NewMemStore()
		svc := user.NewService(repo, store)

		sess, err := svc.Login(ctx, user.Login{Email: "Rahim@Test.TC ", Password: "s3cret"})
		if err != nil {
			t.Fatalf("Login() failed: %v", err)
		}
		assert.Equal(t, "tok123", sess.Token)
		assert.Equal(t, "Rahim", sess.User.Name)

		stored, _ := store.Load()
		assert.True(t, stored.Authenticated())
		assert.Equal(t, sess, stored)
	})

	t.Run("invalid credentials shape skips the backend", func(t *testing.T) {
		repo := &testutil.UserRepo{}
		svc := user.NewService(repo, session.NewMemStore())

		tests := []struct {
			name string
			data user.Login
		}{
			{name: "missing email", data: user.Login{Password: "s3cret"}},
			{name: "bad email", data: user.Login{Email: "nope", Password: "s3cret"}},
			{name: "missing password", data: user.Login{Email: "rahim@test.tc"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Login(ctx, tt.data)
				assert.Error(t, err)
				assert.Zero(t, repo.LoginCalls)
			})
		}
	})

	t.Run("backend rejection leaves the store empty", func(t *testing.T) {
		repo := &testutil.UserRepo{Err: core.NewAPIError(401, "invalid credentials")}
		store := session.NewMemStore()
		svc := user.NewService(repo, store)

		_, err := svc.Login(ctx, user.Login{Email: "rahim@test.tc", Password: "wrong"})
		assert.Error(t, err)
		stored, _ := store.Load()
		assert.False(t, stored.Authenticated())
	})
}

func TestService_Logout(t *testing.T) {
	store := session.NewMemStore(core.Session{Token: "tok", User: core.Profile{ID: "u1"}})
	svc := user.NewService(&testutil.UserRepo{}, store)

	if err := svc.Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	stored, _ := store.Load()
	assert.False(t, stored.Authenticated())

	// logging out twice is fine
	assert.NoError(t, svc.Logout())
}

func TestService_VerifyEmail(t *testing.T) {
	repo := &testutil.UserRepo{}
	svc := user.NewService(repo, session.NewMemStore())

	err := svc.VerifyEmail(context.Background(), "")
	assert.True(t, core.IsValidationError(err))
	assert.Empty(t, repo.Verified)

	if err = svc.VerifyEmail(context.Background(), "tok123"); err != nil {
		t.Fatalf("VerifyEmail() failed: %v", err)
	}
	assert.Equal(t, []string{"tok123"}, repo.Verified)
}

func TestService_ForgotPassword(t *testing.T) {
	repo := &testutil.UserRepo{}
	svc := user.NewService(repo, session.NewMemStore())

	assert.Error(t, svc.ForgotPassword(context.Background(), "nope"))
	assert.Empty(t, repo.Resets)

	if err := svc.ForgotPassword(context.Background(), " Rahim@Test.TC "); err != nil {
		t.Fatalf("ForgotPassword() failed: %v", err)
	}
	assert.Equal(t, []string{"rahim@test.tc"}, repo.Resets)
}

func TestService_Promote(t *testing.T) {
	repo := &testutil.UserRepo{}
	svc := user.NewService(repo, session.NewMemStore())

	usr, err := svc.Promote(context.Background(), "u7")
	if err != nil {
		t.Fatalf("Promote() failed: %v", err)
	}
	assert.True(t, usr.IsAdmin())
	assert.Equal(t, core.RoleAdmin, repo.RoleChanges["u7"])
}

func TestRegister_Validate(t *testing.T) {
	valid := func() user.Register {
		return user.Register{
			Name:     "Rahim Uddin",
			Email:    "rahim@test.tc",
			Phone:    "01712345678",
			Password: "g00dword$19",
		}
	}

	tests := []struct {
		name    string
		mangle  func(*user.Register)
		wantErr bool
	}{
		{name: "ok", mangle: func(r *user.Register) {}},
		{name: "missing name", mangle: func(r *user.Register) { r.Name = "" }, wantErr: true},
		{name: "bad phone", mangle: func(r *user.Register) { r.Phone = "12345" }, wantErr: true},
		{name: "foreign phone", mangle: func(r *user.Register) { r.Phone = "+14155550100" }, wantErr: true},
		{name: "phone with country code", mangle: func(r *user.Register) { r.Phone = "+8801712345678" }},
		{name: "password too short", mangle: func(r *user.Register) { r.Password = "ab1%" }, wantErr: true},
		{name: "password with whitespace", mangle: func(r *user.Register) { r.Password = "bad pass word1" }, wantErr: true},
		{name: "password all numeric", mangle: func(r *user.Register) { r.Password = "1234567890" }, wantErr: true},
		{name: "password similar to email", mangle: func(r *user.Register) { r.Password = "rahim@test.tc" }, wantErr: true},
		{name: "password similar to name", mangle: func(r *user.Register) { r.Password = "RahimUddin1" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := valid()
			tt.mangle(&data)
			err := data.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
