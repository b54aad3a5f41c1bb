// Package echoweb serves the portal's two surfaces over JSON: the public
// storefront with the student dashboard, and the admin panel. Handlers are
// thin I/O wrappers; every screen's behaviour lives in the core services,
// which reach the backend through a gateway client bound to the caller's
// session cookie.
package echoweb

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/techcomputer/portal/core"
	"github.com/techcomputer/portal/core/admission"
	"github.com/techcomputer/portal/core/course"
	"github.com/techcomputer/portal/core/dashboard"
	"github.com/techcomputer/portal/core/payment"
	"github.com/techcomputer/portal/core/product"
	"github.com/techcomputer/portal/core/user"
	"github.com/techcomputer/portal/gateway"
)

type (
	Options struct {
		Conf           *core.Config
		Logger         core.Logger
		Gateway        *gateway.Client // base client; bound to the request cookie per call
		DisableReqLogs bool
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = conf.Debug

	root := s.app.Group("", s.sessionMiddleware())

	registerAuthAPI(root, s)
	registerStorefrontAPI(root, s)

	authed := root.Group("", authRequired())
	registerStudentAPI(authed, s)

	adm := root.Group("/admin", authRequired(), adminRequired())
	registerAdminAPI(adm, s)

	// registered last: empty-prefix groups install an Any("/") catch-all via
	// Group.Use, which would otherwise overwrite this route
	s.app.GET("/", home)
}

// requestServices builds the per-request service set: a session store over
// the caller's cookie, a gateway client bound to it, and the core services
// on top. Confirmation dialogs run in the browser before requests are made,
// so the web services always confirm.
func (s *server) requestServices(ctx echo.Context) *requestServices {
	store := newCookieStore(ctx, s.opts.Conf)
	gw := s.opts.Gateway.WithSession(store)

	courseRepo := gateway.NewCourseRepository(gw)
	paySvc := payment.NewService(gateway.NewPaymentRepository(gw), core.AlwaysConfirm, s.opts.Conf.TransactionFee)

	return &requestServices{
		store:      store,
		gw:         gw,
		users:      user.NewService(gateway.NewUserRepository(gw), store),
		courses:    course.NewService(courseRepo, core.AlwaysConfirm),
		admissions: admission.NewService(gateway.NewAdmissionRepository(gw), courseRepo),
		payments:   paySvc,
		console:    payment.NewConsole(paySvc, core.AlwaysConfirm),
		products:   product.NewService(gateway.NewProductRepository(gw), core.AlwaysConfirm),
		dashboard:  dashboard.NewService(gateway.NewDashboardRepository(gw)),
	}
}

type requestServices struct {
	store      *cookieStore
	gw         *gateway.Client
	users      *user.Service
	courses    *course.Service
	admissions *admission.Service
	payments   *payment.Service
	console    *payment.Console
	products   *product.Service
	dashboard  *dashboard.Service
}

func (s *server) Start() {
	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := s.app.Start(s.opts.Conf.Web.Addr); err != nil && err != http.ErrServerClosed {
			s.app.Logger.Error(err)
			s.signalShutdown()
		}
	}()

	<-s.shutdown
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.Conf.Web.ShutdownTimeout)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		s.app.Logger.Fatal(err)
	}
}

func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the TC Portal!")
}
