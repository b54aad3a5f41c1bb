package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techcomputer/portal/core/course"
	"github.com/techcomputer/portal/core/payment"
	"github.com/techcomputer/portal/core/product"
)

// adminApi is the admin panel surface: centre stats, the payment verification
// console, and catalog/student management.
type adminApi struct {
	srv *server
}

func registerAdminAPI(g *echo.Group, srv *server) {
	api := adminApi{srv: srv}

	g.GET("/stats", api.stats)
	g.GET("/admissions", api.admissionList)

	g.GET("/payments", api.paymentList)
	g.POST("/payments/:id/verify", api.verifyPayment)
	g.POST("/payments/:id/reject", api.rejectPayment)
	g.DELETE("/payments/:id", api.deletePayment)

	g.GET("/payment-methods", api.methodList)
	g.POST("/payment-methods", api.addMethod)
	g.DELETE("/payment-methods/:id", api.removeMethod)

	g.POST("/courses", api.createCourse)
	g.PUT("/courses/:id", api.updateCourse)
	g.DELETE("/courses/:id", api.deleteCourse)
	g.GET("/courses/:id/classes", api.classList)
	g.POST("/classes", api.scheduleClass)
	g.DELETE("/classes/:id", api.deleteClass)

	g.GET("/products", api.productList)
	g.POST("/products", api.createProduct)
	g.PUT("/products/:id", api.updateProduct)
	g.POST("/products/:id/toggle", api.toggleProduct)
	g.DELETE("/products/:id", api.deleteProduct)

	g.GET("/students", api.studentList)
	g.POST("/students/:id/promote", api.promoteStudent)
	g.DELETE("/students/:id", api.deleteStudent)
}

func (api *adminApi) stats(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	stats, err := svcs.dashboard.AdminStats(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *adminApi) admissionList(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	admissions, err := svcs.admissions.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, admissions)
}

// paymentList serves the verification console; ?search= narrows the list by
// buyer name, transaction id or sender mobile.
func (api *adminApi) paymentList(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	payments, err := svcs.console.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, payment.Filter(payments, ctx.QueryParam("search")))
}

func (api *adminApi) verifyPayment(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	payments, err := svcs.console.Verify(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Payment verified!", "payments": payments})
}

func (api *adminApi) rejectPayment(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	payments, err := svcs.console.Reject(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Payment rejected.", "payments": payments})
}

func (api *adminApi) deletePayment(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	payments, err := svcs.console.Delete(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Payment record deleted.", "payments": payments})
}

func (api *adminApi) methodList(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	methods, err := svcs.payments.Methods(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, methods)
}

func (api *adminApi) addMethod(ctx echo.Context) error {
	data := new(payment.NewPaymentMethod)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	svcs := api.srv.requestServices(ctx)
	method, err := svcs.payments.AddMethod(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, method)
}

func (api *adminApi) removeMethod(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	if err := svcs.payments.RemoveMethod(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *adminApi) createCourse(ctx echo.Context) error {
	data := new(course.NewCourse)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	svcs := api.srv.requestServices(ctx)
	crs, err := svcs.courses.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, crs)
}

func (api *adminApi) updateCourse(ctx echo.Context) error {
	data := new(course.NewCourse)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	svcs := api.srv.requestServices(ctx)
	crs, err := svcs.courses.Update(ctx.Request().Context(), ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *adminApi) deleteCourse(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	if err := svcs.courses.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *adminApi) classList(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	classes, err := svcs.courses.Classes(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *adminApi) scheduleClass(ctx echo.Context) error {
	data := new(course.NewClass)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	svcs := api.srv.requestServices(ctx)
	class, err := svcs.courses.ScheduleClass(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, class)
}

func (api *adminApi) deleteClass(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	if err := svcs.courses.DeleteClass(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// productList includes paused products, unlike the storefront listing.
func (api *adminApi) productList(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	products, err := svcs.products.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, products)
}

func (api *adminApi) createProduct(ctx echo.Context) error {
	data := new(product.NewProduct)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	svcs := api.srv.requestServices(ctx)
	prod, err := svcs.products.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, prod)
}

func (api *adminApi) updateProduct(ctx echo.Context) error {
	data := new(product.NewProduct)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	svcs := api.srv.requestServices(ctx)
	prod, err := svcs.products.Update(ctx.Request().Context(), ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, prod)
}

// toggleProduct flips a product between active and paused, re-sending its
// full payload so no field is lost.
func (api *adminApi) toggleProduct(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	reqCtx := ctx.Request().Context()

	prod, err := svcs.products.GetByID(reqCtx, ctx.Param("id"))
	if err != nil {
		return err
	}
	updated, err := svcs.products.ToggleActive(reqCtx, prod)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *adminApi) deleteProduct(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	if err := svcs.products.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *adminApi) studentList(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	users, err := svcs.users.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *adminApi) promoteStudent(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	usr, err := svcs.users.Promote(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *adminApi) deleteStudent(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	if err := svcs.users.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
