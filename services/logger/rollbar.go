package logsvc

import (
	"log"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/sanatos/backend/core"
)

// RollbarLogger prints every event to std and reports it to rollbar when enabled.
type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetServerRoot("github.com/sanatos/backend")
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{std: std}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// expected fmt: msg | error, map[string]interface{}, core.RequestMeta
// RequestMeta is folded into the extras map, which rollbar expects at most once.
func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	var extras map[string]interface{}
	newArgs := make([]interface{}, 0, len(args)+2)
	newArgs = append(newArgs, msg)
	for _, arg := range args {
		switch a := arg.(type) {
		case core.RequestMeta:
			extras = mergeExtras(extras, requestExtras(a))
		case map[string]interface{}:
			extras = mergeExtras(extras, a)
		default:
			newArgs = append(newArgs, arg)
		}
	}
	if extras != nil {
		newArgs = append(newArgs, extras)
	}
	return newArgs
}

func requestExtras(meta core.RequestMeta) map[string]interface{} {
	extras := make(map[string]interface{}, 3)
	if meta.ID != "" {
		extras["request_id"] = meta.ID
	}
	if meta.Method != "" {
		extras["method"] = meta.Method
	}
	if meta.Path != "" {
		extras["path"] = meta.Path
	}
	return extras
}

func mergeExtras(dst, src map[string]interface{}) map[string]interface{} {
	if dst == nil {
		dst = make(map[string]interface{}, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// report sends the event through send, then echoes it to std with one line per arg.
func (l RollbarLogger) report(send func(...interface{}), msg string, args []interface{}) {
	send(l.prepare(msg, args)...)
	l.std.Println(msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) { l.report(rollbar.Debug, msg, args) }
func (l RollbarLogger) Info(msg string, args ...interface{})  { l.report(rollbar.Info, msg, args) }
func (l RollbarLogger) Warn(msg string, args ...interface{})  { l.report(rollbar.Warning, msg, args) }
func (l RollbarLogger) Error(msg string, args ...interface{}) { l.report(rollbar.Error, msg, args) }

// Fatal flushes pending rollbar items before exiting.
func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	l.report(rollbar.Critical, msg, args)
	rollbar.Wait()
	l.std.Fatal(msg)
}
