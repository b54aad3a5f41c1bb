package main

import (
	"testing"

	"github.com/techcomputer/portal/core/admission"
	"github.com/techcomputer/portal/core/dashboard"
	"github.com/techcomputer/portal/core/payment"
	"github.com/techcomputer/portal/core/user"
	"github.com/techcomputer/portal/session"
	testutil "github.com/techcomputer/portal/tests"
)

func setup(t *testing.T, answer bool) (*commandLine, *testutil.PaymentRepo, *testutil.Confirmer) {
	t.Helper()

	usrRepo := &testutil.UserRepo{
		Token: "tok",
		User:  user.User{ID: "u1", Name: "Admin", Email: "admin@test.tc", Role: "admin"},
	}
	payRepo := &testutil.PaymentRepo{
		Payments: []payment.Payment{
			testutil.SamplePayment("p1", "Rahim Uddin", "TRX123", "01712345678"),
			testutil.SamplePayment("p2", "Karim Mia", "TRX456", "01898765432"),
		},
	}
	confirm := &testutil.Confirmer{Answer: answer}

	paySvc := payment.NewService(payRepo, confirm, 30)
	cli := &commandLine{
		usrSvc:  user.NewService(usrRepo, session.NewMemStore()),
		admSvc:  admission.NewService(&testutil.AdmissionRepo{}, &testutil.CourseRepo{}),
		paySvc:  paySvc,
		console: payment.NewConsole(paySvc, confirm),
		dashSvc: dashboard.NewService(&testutil.DashboardRepo{}),
	}
	return cli, payRepo, confirm
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
	pwd     string
}

func Test_commandLine_run(t *testing.T) {
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "login: no email", args: []string{"login"}, wantErr: errHelp},
		{name: "login: email but no password", args: []string{"login", "-email", "admin@test.tc"}, wantErr: errHelp},
		{name: "login", args: []string{"login", "-email", "admin@test.tc"}, pwd: "s3cret"},
		{name: "logout", args: []string{"logout"}},
		{name: "whoami", args: []string{"whoami"}},
		{name: "stats", args: []string{"stats"}},
		{name: "admissions", args: []string{"admissions"}},
		{name: "payments", args: []string{"payments"}},
		{name: "payments: search", args: []string{"payments", "-search", "rahim"}},
		{name: "verify: no id", args: []string{"verify"}, wantErr: errHelp},
		{name: "verify", args: []string{"verify", "-id", "p1"}},
		{name: "reject: no id", args: []string{"reject"}, wantErr: errHelp},
		{name: "reject", args: []string{"reject", "-id", "p1"}},
		{name: "delete: no id", args: []string{"delete"}, wantErr: errHelp},
		{name: "delete", args: []string{"delete", "-id", "p2"}},
		{name: "methods", args: []string{"methods"}},
		{name: "addmethod: missing flags", args: []string{"addmethod", "-name", "bKash"}, wantErr: errHelp},
		{name: "addmethod", args: []string{"addmethod", "-name", "bKash", "-number", "01712345678"}},
		{name: "delmethod: no id", args: []string{"delmethod"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		cli, _, _ := setup(t, true)
		args := append([]string{"console"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			return []byte(tt.pwd), nil
		}

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_verifyDeclined(t *testing.T) {
	cli, payRepo, confirm := setup(t, false)

	if err := cli.run([]string{"console", "verify", "-id", "p1"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}
	if confirm.Asked != 1 {
		t.Errorf("confirm.Asked = %d, want 1", confirm.Asked)
	}
	if len(payRepo.Verified) != 0 {
		t.Errorf("declined prompt must not call the backend; got %d calls", len(payRepo.Verified))
	}
}

func Test_commandLine_verifyConfirmed(t *testing.T) {
	cli, payRepo, _ := setup(t, true)

	if err := cli.run([]string{"console", "verify", "-id", "p1"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}
	if len(payRepo.Verified) != 1 || payRepo.Verified[0] != "p1" {
		t.Errorf("payRepo.Verified = %v, want [p1]", payRepo.Verified)
	}
	if payRepo.ListCalls != 1 {
		t.Errorf("payRepo.ListCalls = %d, want 1 (re-fetch after mutation)", payRepo.ListCalls)
	}
}
