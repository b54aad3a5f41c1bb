package product

import (
	"context"

	"github.com/techcomputer/portal/core"
)

type (
	Repository interface {
		QueryActiveProducts(ctx context.Context) ([]Product, error)
		QueryAllProducts(ctx context.Context) ([]Product, error) // admin: includes paused
		GetProductByID(ctx context.Context, id string) (Product, error)
		CreateProduct(ctx context.Context, data NewProduct) (Product, error)
		UpdateProduct(ctx context.Context, id string, data NewProduct) (Product, error)
		DeleteProduct(ctx context.Context, id string) error
		DownloadProduct(ctx context.Context, id string) (url string, err error)
	}

	Service struct {
		repo    Repository
		confirm core.Confirmer
	}
)

func NewService(repo Repository, confirm core.Confirmer) *Service {
	return &Service{repo: repo, confirm: confirm}
}

// QueryActive lists the public storefront catalog.
func (svc *Service) QueryActive(ctx context.Context) ([]Product, error) {
	return svc.repo.QueryActiveProducts(ctx)
}

// QueryAll lists all products including paused ones. Admin only.
func (svc *Service) QueryAll(ctx context.Context) ([]Product, error) {
	return svc.repo.QueryAllProducts(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Product, error) {
	return svc.repo.GetProductByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, data NewProduct) (Product, error) {
	if err := data.Validate(); err != nil {
		return Product{}, err
	}
	return svc.repo.CreateProduct(ctx, data)
}

func (svc *Service) Update(ctx context.Context, id string, data NewProduct) (Product, error) {
	if err := data.Validate(); err != nil {
		return Product{}, err
	}
	return svc.repo.UpdateProduct(ctx, id, data)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	if !svc.confirm.Confirm("Are you sure you want to delete this product?") {
		return core.ErrDeclined
	}
	return svc.repo.DeleteProduct(ctx, id)
}

// ToggleActive pauses or activates a product by re-sending its complete
// payload with only IsActive inverted; every other field is preserved.
func (svc *Service) ToggleActive(ctx context.Context, prod Product) (Product, error) {
	data := prod.Payload()
	data.IsActive = !prod.IsActive
	return svc.repo.UpdateProduct(ctx, prod.ID, data)
}

// Download resolves the purchased file's URL. The backend answers 403 until
// the buyer's payment is verified.
func (svc *Service) Download(ctx context.Context, id string) (string, error) {
	return svc.repo.DownloadProduct(ctx, id)
}
