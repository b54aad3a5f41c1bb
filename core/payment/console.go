package payment

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/techcomputer/portal/core"
)

// Console is the admin-facing payment verification view. Every mutation is
// gated by a confirmation prompt and followed by a full list re-fetch; there
// is no optimistic update and no batch operation.
type Console struct {
	svc     *Service
	confirm core.Confirmer
}

func NewConsole(svc *Service, confirm core.Confirmer) *Console {
	return &Console{svc: svc, confirm: confirm}
}

func (c *Console) List(ctx context.Context) ([]Payment, error) {
	return c.svc.repo.QueryAllPayments(ctx)
}

// Filter returns the payments matching a search term: a case-insensitive
// substring match over buyer name, transaction id and sender mobile,
// preserving the input order. An empty term matches everything.
func Filter(payments []Payment, term string) []Payment {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return payments
	}
	matched := make([]Payment, 0, len(payments))
	for _, p := range payments {
		if matches(p, term) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matches(p Payment, term string) bool {
	if p.User != nil && strings.Contains(strings.ToLower(p.User.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.TransactionID), term) {
		return true
	}
	return strings.Contains(strings.ToLower(p.SenderMobile), term)
}

// Verify marks a payment verified; the backend cascades the approval to the
// linked admission or product unlock. Irreversible from the portal's side.
// The fresh list is returned so the caller renders re-fetched state.
func (c *Console) Verify(ctx context.Context, id string) ([]Payment, error) {
	if !c.confirm.Confirm("Are you sure you want to verify this payment? This will approve the student's admission.") {
		return nil, core.ErrDeclined
	}
	if err := c.svc.repo.VerifyPayment(ctx, id); err != nil {
		return nil, err
	}
	return c.refetch(ctx)
}

// Reject is symmetric to Verify; no undo path is exposed.
func (c *Console) Reject(ctx context.Context, id string) ([]Payment, error) {
	if !c.confirm.Confirm("Reject this payment? This cannot be undone.") {
		return nil, core.ErrDeclined
	}
	if err := c.svc.repo.RejectPayment(ctx, id); err != nil {
		return nil, err
	}
	return c.refetch(ctx)
}

func (c *Console) Delete(ctx context.Context, id string) ([]Payment, error) {
	if !c.confirm.Confirm("Delete this record permanently?") {
		return nil, core.ErrDeclined
	}
	if err := c.svc.repo.DeletePayment(ctx, id); err != nil {
		return nil, err
	}
	return c.refetch(ctx)
}

func (c *Console) refetch(ctx context.Context) ([]Payment, error) {
	payments, err := c.svc.repo.QueryAllPayments(ctx)
	return payments, errors.Wrap(err, "re-fetching payments")
}
