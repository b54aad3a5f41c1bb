package payment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techcomputer/portal/core"
	"github.com/techcomputer/portal/core/payment"
	testutil "github.com/techcomputer/portal/tests"
)

func consoleSetup(answer bool) (*payment.Console, *testutil.PaymentRepo, *testutil.Confirmer) {
	repo := &testutil.PaymentRepo{
		Payments: []payment.Payment{
			testutil.SamplePayment("p1", "Rahim Uddin", "TRX100", "01712345678"),
			testutil.SamplePayment("p2", "Karim Mia", "TRX200", "01898765432"),
			testutil.SamplePayment("p3", "Fatema Khatun", "TRX300", "01511112222"),
		},
	}
	confirm := &testutil.Confirmer{Answer: answer}
	return payment.NewConsole(payment.NewService(repo, confirm, 30), confirm), repo, confirm
}

func TestFilter(t *testing.T) {
	payments := []payment.Payment{
		testutil.SamplePayment("p1", "Rahim Uddin", "TRX100", "01712345678"),
		testutil.SamplePayment("p2", "Karim Mia", "TRX200", "01898765432"),
		testutil.SamplePayment("p3", "Fatema Khatun", "TRX300", "01511112222"),
	}

	ids := func(ps []payment.Payment) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.ID
		}
		return out
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty term matches all", term: "", want: []string{"p1", "p2", "p3"}},
		{name: "whitespace only matches all", term: "   ", want: []string{"p1", "p2", "p3"}},
		{name: "name, case-insensitive", term: "rAhIm", want: []string{"p1"}},
		{name: "partial name", term: "ka", want: []string{"p2", "p3"}}, // Karim + Khatun, input order kept
		{name: "transaction id", term: "trx200", want: []string{"p2"}},
		{name: "sender mobile", term: "01511", want: []string{"p3"}},
		{name: "no match", term: "nobody", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := payment.Filter(payments, tt.term)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	// the input slice is never mutated
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(payments))
}

func TestConsole_declinedPromptMakesNoCall(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		act  func(*payment.Console) ([]payment.Payment, error)
	}{
		{name: "verify", act: func(c *payment.Console) ([]payment.Payment, error) { return c.Verify(ctx, "p1") }},
		{name: "reject", act: func(c *payment.Console) ([]payment.Payment, error) { return c.Reject(ctx, "p1") }},
		{name: "delete", act: func(c *payment.Console) ([]payment.Payment, error) { return c.Delete(ctx, "p1") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console, repo, confirm := consoleSetup(false)

			_, err := tt.act(console)
			assert.Equal(t, core.ErrDeclined, err)
			assert.Equal(t, 1, confirm.Asked)
			assert.Empty(t, repo.Verified)
			assert.Empty(t, repo.Rejected)
			assert.Empty(t, repo.Deleted)
			assert.Zero(t, repo.ListCalls, "declined action must not re-fetch")
		})
	}
}

func TestConsole_Verify(t *testing.T) {
	console, repo, _ := consoleSetup(true)

	payments, err := console.Verify(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	assert.Equal(t, []string{"p1"}, repo.Verified)
	assert.Equal(t, 1, repo.ListCalls, "mutation must be followed by a re-fetch")
	assert.Len(t, payments, 3)
	assert.Equal(t, payment.StatusVerified, payments[0].Status)
	assert.False(t, payments[0].Actionable())
	assert.True(t, payments[1].Actionable())
}

func TestConsole_Reject(t *testing.T) {
	console, repo, _ := consoleSetup(true)

	payments, err := console.Reject(context.Background(), "p2")
	if err != nil {
		t.Fatalf("Reject() failed: %v", err)
	}
	assert.Equal(t, []string{"p2"}, repo.Rejected)
	assert.Equal(t, payment.StatusRejected, payments[1].Status)
}

func TestConsole_Delete(t *testing.T) {
	console, repo, _ := consoleSetup(true)

	payments, err := console.Delete(context.Background(), "p3")
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	assert.Equal(t, []string{"p3"}, repo.Deleted)
	assert.Len(t, payments, 2)
}
