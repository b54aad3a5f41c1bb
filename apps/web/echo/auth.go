package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techcomputer/portal/core/user"
)

type authApi struct {
	srv *server
}

func registerAuthAPI(g *echo.Group, srv *server) {
	api := authApi{srv: srv}

	ag := g.Group("/auth")
	ag.POST("/login", api.login)
	ag.POST("/register", api.register)
	ag.POST("/logout", api.logout)
	ag.GET("/verify-email", api.verifyEmail)
	ag.POST("/resend-email", api.resendEmail)
	ag.POST("/forgot-password", api.forgotPassword)
}

func (api *authApi) login(ctx echo.Context) error {
	data := new(user.Login)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	svcs := api.srv.requestServices(ctx)
	sess, err := svcs.users.Login(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}

	redirect := ctx.QueryParam("redirect")
	if redirect == "" {
		redirect = safeRedirect
	}
	return ctx.JSON(http.StatusOK, echo.Map{"user": sess.User, "redirect": redirect})
}

func (api *authApi) register(ctx echo.Context) error {
	data := new(user.Register)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	svcs := api.srv.requestServices(ctx)
	if err := svcs.users.Register(ctx.Request().Context(), *data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "verification email sent"})
}

func (api *authApi) logout(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	if err := svcs.users.Logout(); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"redirect": "/"})
}

func (api *authApi) verifyEmail(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	err := svcs.users.VerifyEmail(ctx.Request().Context(), ctx.QueryParam("token"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "email verified, you can sign in now", "redirect": loginRedirect})
}

func (api *authApi) resendEmail(ctx echo.Context) error {
	data := new(struct {
		Email string `json:"email"`
	})
	if err := ctx.Bind(data); err != nil {
		return err
	}

	svcs := api.srv.requestServices(ctx)
	if err := svcs.users.ResendVerification(ctx.Request().Context(), data.Email); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "verification email sent"})
}

func (api *authApi) forgotPassword(ctx echo.Context) error {
	data := new(struct {
		Email string `json:"email"`
	})
	if err := ctx.Bind(data); err != nil {
		return err
	}

	svcs := api.srv.requestServices(ctx)
	if err := svcs.users.ForgotPassword(ctx.Request().Context(), data.Email); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "password reset email sent"})
}
