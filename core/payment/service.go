package payment

import (
	"context"

	"github.com/techcomputer/portal/core"
)

type (
	Repository interface {
		CreatePayment(ctx context.Context, data NewPayment) (Payment, error)
		QueryAllPayments(ctx context.Context) ([]Payment, error)
		VerifyPayment(ctx context.Context, id string) error
		RejectPayment(ctx context.Context, id string) error
		DeletePayment(ctx context.Context, id string) error

		QueryPaymentMethods(ctx context.Context) ([]PaymentMethod, error)
		CreatePaymentMethod(ctx context.Context, data NewPaymentMethod) (PaymentMethod, error)
		DeletePaymentMethod(ctx context.Context, id string) error

		QueryMyDownloads(ctx context.Context) ([]Download, error)
	}

	Service struct {
		repo    Repository
		confirm core.Confirmer
		fee     int // fixed mobile-wallet service charge
	}

	// Download is a purchased digital product whose payment has been
	// verified; FileURL is only present once the backend has unlocked it.
	Download struct {
		PaymentID   string `json:"paymentId"`
		ProductID   string `json:"productId"`
		Title       string `json:"title"`
		FileURL     string `json:"fileUrl,omitempty"`
		Status      string `json:"status"`
		PurchasedAt string `json:"purchasedAt,omitempty"`
	}
)

func NewService(repo Repository, confirm core.Confirmer, fee int) *Service {
	return &Service{repo: repo, confirm: confirm, fee: fee}
}

// QuoteFor computes the displayed and submitted amount breakdown for a base
// fee (course fee or product price).
func (svc *Service) QuoteFor(baseAmount int) Quote {
	return NewQuote(baseAmount, svc.fee)
}

// Submit records a manual wallet payment against an admission or product.
// The admission/product status is untouched here; the backend moves it when
// an admin verifies the payment.
func (svc *Service) Submit(ctx context.Context, data NewPayment) (Payment, error) {
	if err := data.Validate(); err != nil {
		return Payment{}, err
	}
	// the quote is recomputed server-authoritatively from the submitted
	// amount so both call sites send the same shape
	data.Quote = NewQuote(data.Amount, svc.fee)
	return svc.repo.CreatePayment(ctx, data)
}

func (svc *Service) Methods(ctx context.Context) ([]PaymentMethod, error) {
	return svc.repo.QueryPaymentMethods(ctx)
}

func (svc *Service) AddMethod(ctx context.Context, data NewPaymentMethod) (PaymentMethod, error) {
	if err := data.Validate(); err != nil {
		return PaymentMethod{}, err
	}
	return svc.repo.CreatePaymentMethod(ctx, data)
}

func (svc *Service) RemoveMethod(ctx context.Context, id string) error {
	if !svc.confirm.Confirm("Remove this payment number?") {
		return core.ErrDeclined
	}
	return svc.repo.DeletePaymentMethod(ctx, id)
}

func (svc *Service) MyDownloads(ctx context.Context) ([]Download, error) {
	return svc.repo.QueryMyDownloads(ctx)
}
