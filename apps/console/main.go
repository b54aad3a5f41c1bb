package main

import (
	"log"
	"os"

	"github.com/techcomputer/portal/core"
	"github.com/techcomputer/portal/core/admission"
	"github.com/techcomputer/portal/core/dashboard"
	"github.com/techcomputer/portal/core/payment"
	"github.com/techcomputer/portal/core/user"
	"github.com/techcomputer/portal/gateway"
	"github.com/techcomputer/portal/session"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "CONSOLE : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig(core.Getwd("portal"))
	errAndDie(err)

	sessPath, err := session.DefaultPath(conf.AppName)
	errAndDie(err)
	sess := session.NewFileStore(sessPath)

	gw := gateway.NewClient(conf, sess, gateway.WithUnauthorizedHook(func() {
		logger.Println("session expired; run `login` to sign in again")
	}))
	confirm := newPromptConfirmer(os.Stdin)

	courseRepo := gateway.NewCourseRepository(gw)
	paySvc := payment.NewService(gateway.NewPaymentRepository(gw), confirm, conf.TransactionFee)

	cli := commandLine{
		usrSvc:  user.NewService(gateway.NewUserRepository(gw), sess),
		admSvc:  admission.NewService(gateway.NewAdmissionRepository(gw), courseRepo),
		paySvc:  paySvc,
		console: payment.NewConsole(paySvc, confirm),
		dashSvc: dashboard.NewService(gateway.NewDashboardRepository(gw)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
