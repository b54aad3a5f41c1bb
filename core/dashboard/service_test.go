package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techcomputer/portal/core/admission"
	"github.com/techcomputer/portal/core/dashboard"
	testutil "github.com/techcomputer/portal/tests"
)

func TestService_StudentHome(t *testing.T) {
	repo := &testutil.DashboardRepo{
		Home: dashboard.StudentHome{
			Enrollments: []dashboard.Enrollment{
				{Admission: admission.Admission{ID: "a1", Status: admission.StatusPending}},
				{Admission: admission.Admission{ID: "a2", Status: admission.StatusPending, PaymentID: "p1"}},
				{Admission: admission.Admission{ID: "a3", Status: admission.StatusApproved, PaymentID: "p2"}},
				{Admission: admission.Admission{ID: "a4", Status: admission.StatusRejected}},
			},
		},
	}
	svc := dashboard.NewService(repo)

	home, err := svc.StudentHome(context.Background())
	if err != nil {
		t.Fatalf("StudentHome() failed: %v", err)
	}

	want := []admission.Stage{
		admission.StageApplied,
		admission.StagePaymentSubmitted,
		admission.StageVerified,
		admission.StageRejected,
	}
	for i, enr := range home.Enrollments {
		assert.Equal(t, want[i], enr.Stage, "enrollment %s", enr.Admission.ID)
	}
}
