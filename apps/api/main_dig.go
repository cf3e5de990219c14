package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	dig_container "github.com/sanatos/backend/apps/api/di/dig"
	echoapi "github.com/sanatos/backend/apps/api/echo"
	"github.com/sanatos/backend/core"
	"github.com/sanatos/backend/core/bmi"
)

func startWithDig() {
	c := dig_container.New()

	must(c.Invoke(func(
		conf *core.Config,
		apiLogger core.Logger,
		validate *validator.Validate,
		translator ut.Translator,
		server *echoapi.Server,
	) {
		apiLogger.Info(fmt.Sprintf("Sanatos API starting : build %q, env %s", conf.Build, conf.Env))
		defer apiLogger.Info("Sanatos API stopped")

		core.InitValidators(validate, translator)
		bmi.InitValidators(validate, translator)

		startDebugServer(conf, apiLogger)
		go server.Start()

		select {
		case err := <-server.Errors():
			apiLogger.Fatal(fmt.Sprintf("server error: %v", err), err)
		case sig := <-server.ShutdownSignal():
			apiLogger.Info(fmt.Sprintf("%v: shutting down", sig))
			stopServer(conf, apiLogger, server)
		}
	}))
}

// startDebugServer serves pprof and expvar (/debug/pprof, /debug/vars) on the debug host.
func startDebugServer(conf *core.Config, logger core.Logger) {
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()
}

// stopServer drains in-flight requests for up to ShutdownTimeout, then forces the listener closed.
func stopServer(conf *core.Config, logger core.Logger, server *echoapi.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
		if err = server.Close(); err != nil {
			logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
		}
	}
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
