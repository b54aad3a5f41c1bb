package dashboard

import (
	"context"

	"github.com/techcomputer/portal/core/admission"
	"github.com/techcomputer/portal/core/payment"
)

type (
	Repository interface {
		GetStudentHome(ctx context.Context) (StudentHome, error)
		GetAdminStats(ctx context.Context) (AdminStats, error)
		GetReceipt(ctx context.Context, paymentID string) (Receipt, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// StudentHome loads the student dashboard and derives each enrollment's
// lifecycle stage; the backend only sends raw statuses.
func (svc *Service) StudentHome(ctx context.Context) (StudentHome, error) {
	home, err := svc.repo.GetStudentHome(ctx)
	if err != nil {
		return StudentHome{}, err
	}
	for i := range home.Enrollments {
		enr := &home.Enrollments[i]
		// the payload carries no payment status; a linked payment is treated
		// as pending because verify/reject cascade to the admission status
		// server-side, which StageOf checks first
		var paymentStatus string
		if enr.Admission.PaymentID != "" {
			paymentStatus = payment.StatusPending
		}
		enr.Stage = admission.StageOf(&enr.Admission, paymentStatus)
	}
	return home, nil
}

// AdminStats summarizes the whole centre. Admin only; the backend enforces it.
func (svc *Service) AdminStats(ctx context.Context) (AdminStats, error) {
	return svc.repo.GetAdminStats(ctx)
}

func (svc *Service) Receipt(ctx context.Context, paymentID string) (Receipt, error) {
	return svc.repo.GetReceipt(ctx, paymentID)
}
