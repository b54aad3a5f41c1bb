package main

import (
	stdlog "log"
	"os"

	"github.com/techcomputer/portal/apps/web/echo"
	"github.com/techcomputer/portal/core"
	"github.com/techcomputer/portal/gateway"
	"github.com/techcomputer/portal/services/logger"
	"github.com/techcomputer/portal/session"
)

func main() {
	std := stdlog.New(os.Stdout, "WEB : ", stdlog.LstdFlags|stdlog.Lmicroseconds|stdlog.Lshortfile)

	conf, err := core.NewConfig(core.Getwd("portal"))
	if err != nil {
		std.Fatal(err)
	}

	var lg core.Logger
	if conf.Debug || conf.RollbarToken == "" {
		lg = logsvc.NewConsoleLogger(std)
	} else {
		lg = logsvc.NewRollbarLogger(std, conf)
	}
	lg.Enable(true)

	// the base client carries no session; each request binds its own cookie
	// store before any backend call is made.
	gw := gateway.NewClient(conf, session.NewMemStore())

	app := echoweb.NewServer(&echoweb.Options{
		Conf:    conf,
		Logger:  lg,
		Gateway: gw,
	})
	app.Start()
}
