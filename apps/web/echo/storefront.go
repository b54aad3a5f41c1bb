package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// storefrontApi serves the public catalog screens; no session required.
type storefrontApi struct {
	srv *server
}

func registerStorefrontAPI(g *echo.Group, srv *server) {
	api := storefrontApi{srv: srv}

	g.GET("/courses", api.courseList)
	g.GET("/courses/:id", api.courseDetail)
	g.GET("/products", api.productList)
	g.GET("/products/:id", api.productDetail)
}

func (api *storefrontApi) courseList(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	courses, err := svcs.courses.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *storefrontApi) courseDetail(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	crs, err := svcs.courses.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *storefrontApi) productList(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	products, err := svcs.products.QueryActive(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, products)
}

// productDetail also carries the receiving wallets and the amount breakdown
// so the purchase screen renders from a single response.
func (api *storefrontApi) productDetail(ctx echo.Context) error {
	svcs := api.srv.requestServices(ctx)
	reqCtx := ctx.Request().Context()

	prod, err := svcs.products.GetByID(reqCtx, ctx.Param("id"))
	if err != nil {
		return err
	}
	methods, err := svcs.payments.Methods(reqCtx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"product":        prod,
		"paymentMethods": methods,
		"quote":          svcs.payments.QuoteFor(prod.Price),
	})
}
