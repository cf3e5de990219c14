package dig_container

import (
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/sanatos/backend/apps/api/echo"
	"github.com/sanatos/backend/core"
	"github.com/sanatos/backend/core/bmi"
	logsvc "github.com/sanatos/backend/services/logger"
)

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newGrowthTable() *bmi.GrowthTable {
	return bmi.DefaultTable
}

func newBMIService(table *bmi.GrowthTable) bmi.ServiceInterface {
	return bmi.NewService(table)
}

func newServer(
	conf *core.Config,
	logger core.Logger,
	svc bmi.ServiceInterface,
	validate *validator.Validate,
	translator ut.Translator,
) *echoapi.Server {
	return echoapi.NewServer(&echoapi.ServerDeps{
		Conf:       conf,
		Logger:     logger,
		BMISvc:     svc,
		Validate:   validate,
		Translator: translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(validator.New))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newGrowthTable))
	must(c.Provide(newBMIService))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
