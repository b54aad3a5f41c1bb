package gateway

import (
	"context"
	"net/url"

	"github.com/techcomputer/portal/core/user"
)

type userRepository struct {
	c *Client
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(c *Client) user.Repository {
	return &userRepository{c: c}
}

func (repo *userRepository) Login(ctx context.Context, data user.Login) (string, user.User, error) {
	var out struct {
		Token string    `json:"token"`
		User  user.User `json:"user"`
	}
	if err := repo.c.post(ctx, "/users/login", data, &out); err != nil {
		return "", user.User{}, err
	}
	return out.Token, out.User, nil
}

func (repo *userRepository) Register(ctx context.Context, data user.Register) error {
	return repo.c.post(ctx, "/users/register", data, nil)
}

func (repo *userRepository) VerifyEmail(ctx context.Context, token string) error {
	params := url.Values{"token": []string{token}}
	return repo.c.get(ctx, "/users/verify-email", params, nil)
}

func (repo *userRepository) ResendVerification(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return repo.c.post(ctx, "/users/resend-verification", body, nil)
}

func (repo *userRepository) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return repo.c.post(ctx, "/users/forgot-password", body, nil)
}

func (repo *userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	var users []user.User
	err := repo.c.get(ctx, "/users", nil, &users)
	return users, err
}

func (repo *userRepository) SetUserRole(ctx context.Context, id, role string) (user.User, error) {
	var usr user.User
	body := map[string]string{"role": role}
	err := repo.c.put(ctx, "/users/"+id+"/role", body, &usr)
	return usr, err
}

func (repo *userRepository) DeleteUser(ctx context.Context, id string) error {
	return repo.c.delete(ctx, "/users/"+id)
}
