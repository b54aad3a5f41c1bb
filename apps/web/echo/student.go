package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techcomputer/portal/core/admission"
	"github.com/techcomputer/portal/core/payment"
)

// studentApi drives the admission-to-payment lifecycle plus the signed-in
// student's dashboard screens.
type studentApi struct {
	srv *server
}

func registerStudentAPI(g *echo.Group, srv *server) {
	api := studentApi{srv: srv}

	g.GET("/dashboard", api.dashboard)
	g.GET("/dashboard/receipt/:paymentId", api.receipt)
	g.GET("/downloads", api.downloads)

	g.GET("/admissions/apply/:courseId", api.prepareApplication)
	g.POST("/admissions", api.apply)
	g.GET("/admissions/my", api.myAdmissions)

	g.GET("/payment/:admissionId", api.paymentScreen)
	g.POST("/payments", api.submitPayment)

	g.GET("/products/:id/download", api.downloadProduct)
	g.POST("/upload", api.upload)
}

func (api *studentApi) dashboard(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	home, err := svcs.dashboard.StudentHome(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, home)
}

func (api *studentApi) receipt(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	receipt, err := svcs.dashboard.Receipt(ctx.Request().Context(), ctx.Param("paymentId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, receipt)
}

func (api *studentApi) downloads(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	downloads, err := svcs.payments.MyDownloads(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, downloads)
}

// prepareApplication loads the apply screen; when the student already has an
// admission for the course the response points straight at its payment
// screen instead.
func (api *studentApi) prepareApplication(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	app, err := svcs.admissions.Prepare(ctx.Request().Context(), ctx.Param("courseId"))
	if err != nil {
		return err
	}
	if app.Existing != nil {
		return ctx.JSON(http.StatusOK, echo.Map{
			"course":   app.Course,
			"message":  "You already submitted this admission. Redirecting to payment...",
			"redirect": "/payment/" + app.Existing.ID,
		})
	}
	return ctx.JSON(http.StatusOK, echo.Map{"course": app.Course})
}

func (api *studentApi) apply(ctx echo.Context) error {
	data := new(admission.NewAdmission)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	svcs := api.srv.requestServices(ctx)
	adm, existing, err := svcs.admissions.Apply(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}

	code := http.StatusCreated
	message := "Application submitted!"
	if existing {
		code = http.StatusOK
		message = "You already applied for this course. Redirecting to payment..."
	}
	return ctx.JSON(code, echo.Map{
		"admission": adm,
		"message":   message,
		"redirect":  "/payment/" + adm.ID,
	})
}

func (api *studentApi) myAdmissions(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	mine, err := svcs.admissions.My(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mine)
}

// paymentScreen returns everything the payment screen shows: the admission,
// the receiving wallets, and the amount breakdown (course fee + fixed charge).
func (api *studentApi) paymentScreen(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	reqCtx := ctx.Request().Context()

	adm, err := svcs.admissions.GetByID(reqCtx, ctx.Param("admissionId"))
	if err != nil {
		return err
	}
	methods, err := svcs.payments.Methods(reqCtx)
	if err != nil {
		return err
	}

	var fee int
	if adm.Course != nil {
		fee = adm.Course.Fee
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"admission":      adm,
		"paymentMethods": methods,
		"quote":          svcs.payments.QuoteFor(fee),
	})
}

func (api *studentApi) submitPayment(ctx echo.Context) error {
	data := new(payment.NewPayment)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	svcs := api.srv.requestServices(ctx)
	pay, err := svcs.payments.Submit(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, echo.Map{
		"payment":  pay,
		"message":  "Payment submitted! Wait for verification.",
		"redirect": safeRedirect,
	})
}

func (api *studentApi) downloadProduct(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	fileURL, err := svcs.products.Download(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"fileUrl": fileURL})
}

// upload proxies admission photo/signature files to the backend.
func (api *studentApi) upload(ctx echo.Context) error {
	fileHdr, err := ctx.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "an image file is required")
	}
	file, err := fileHdr.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	svcs := api.srv.requestServices(ctx)
	url, err := svcs.gw.Upload(ctx.Request().Context(), fileHdr.Filename, file)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"url": url})
}
