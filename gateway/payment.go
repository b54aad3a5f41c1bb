package gateway

import (
	"context"

	"github.com/techcomputer/portal/core/payment"
)

type paymentRepository struct {
	c *Client
}

var _ payment.Repository = (*paymentRepository)(nil) // interface compliance check

func NewPaymentRepository(c *Client) payment.Repository {
	return &paymentRepository{c: c}
}

func (repo *paymentRepository) CreatePayment(ctx context.Context, data payment.NewPayment) (payment.Payment, error) {
	var pay payment.Payment
	err := repo.c.post(ctx, "/payments", data, &pay)
	return pay, err
}

func (repo *paymentRepository) QueryAllPayments(ctx context.Context) ([]payment.Payment, error) {
	var payments []payment.Payment
	err := repo.c.get(ctx, "/payments", nil, &payments)
	return payments, err
}

func (repo *paymentRepository) VerifyPayment(ctx context.Context, id string) error {
	return repo.c.put(ctx, "/payments/"+id+"/verify", nil, nil)
}

func (repo *paymentRepository) RejectPayment(ctx context.Context, id string) error {
	return repo.c.put(ctx, "/payments/"+id+"/reject", nil, nil)
}

func (repo *paymentRepository) DeletePayment(ctx context.Context, id string) error {
	return repo.c.delete(ctx, "/payments/"+id)
}

func (repo *paymentRepository) QueryPaymentMethods(ctx context.Context) ([]payment.PaymentMethod, error) {
	var methods []payment.PaymentMethod
	err := repo.c.get(ctx, "/payments/methods", nil, &methods)
	return methods, err
}

func (repo *paymentRepository) CreatePaymentMethod(ctx context.Context, data payment.NewPaymentMethod) (payment.PaymentMethod, error) {
	var method payment.PaymentMethod
	err := repo.c.post(ctx, "/payments/methods", data, &method)
	return method, err
}

func (repo *paymentRepository) DeletePaymentMethod(ctx context.Context, id string) error {
	return repo.c.delete(ctx, "/payments/methods/"+id)
}

func (repo *paymentRepository) QueryMyDownloads(ctx context.Context) ([]payment.Download, error) {
	var downloads []payment.Download
	err := repo.c.get(ctx, "/payments/my/downloads", nil, &downloads)
	return downloads, err
}
