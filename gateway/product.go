package gateway

import (
	"context"

	"github.com/techcomputer/portal/core/product"
)

type productRepository struct {
	c *Client
}

var _ product.Repository = (*productRepository)(nil) // interface compliance check

func NewProductRepository(c *Client) product.Repository {
	return &productRepository{c: c}
}

func (repo *productRepository) QueryActiveProducts(ctx context.Context) ([]product.Product, error) {
	var products []product.Product
	err := repo.c.get(ctx, "/products", nil, &products)
	return products, err
}

func (repo *productRepository) QueryAllProducts(ctx context.Context) ([]product.Product, error) {
	var products []product.Product
	err := repo.c.get(ctx, "/products/admin", nil, &products)
	return products, err
}

func (repo *productRepository) GetProductByID(ctx context.Context, id string) (product.Product, error) {
	var prod product.Product
	err := repo.c.get(ctx, "/products/"+id, nil, &prod)
	return prod, err
}

func (repo *productRepository) CreateProduct(ctx context.Context, data product.NewProduct) (product.Product, error) {
	var prod product.Product
	err := repo.c.post(ctx, "/products", data, &prod)
	return prod, err
}

func (repo *productRepository) UpdateProduct(ctx context.Context, id string, data product.NewProduct) (product.Product, error) {
	var prod product.Product
	err := repo.c.put(ctx, "/products/"+id, data, &prod)
	return prod, err
}

func (repo *productRepository) DeleteProduct(ctx context.Context, id string) error {
	return repo.c.delete(ctx, "/products/"+id)
}

func (repo *productRepository) DownloadProduct(ctx context.Context, id string) (string, error) {
	var out struct {
		FileURL string `json:"fileUrl"`
	}
	if err := repo.c.get(ctx, "/products/download/"+id, nil, &out); err != nil {
		return "", err
	}
	return out.FileURL, nil
}
