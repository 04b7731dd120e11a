package logsvc

import (
	"os"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"
	"github.com/rs/zerolog"

	"github.com/trezcool/lmsadmin/core"
)

var (
	defaultExit = os.Exit
	exitFunc    = defaultExit // mockable
)

// RollbarLogger writes every entry through zerolog and reports it to Rollbar when enabled.
type RollbarLogger struct {
	zl zerolog.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(zl zerolog.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{zl: zl}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled && rollbar.Token() != "")
}

// expected fmt: msg | error, map[string]interface{}
func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	newArgs := make([]interface{}, 0, len(args)+1)
	newArgs = append(newArgs, msg)
	return append(newArgs, args...)
}

func (l RollbarLogger) write(evt *zerolog.Event, msg string, args []interface{}) {
	var errSet bool
	for _, arg := range args {
		switch a := arg.(type) {
		case error:
			if !errSet {
				evt = evt.Err(a)
				errSet = true
			} else {
				evt = evt.AnErr("cause", a)
			}
		case map[string]interface{}:
			evt = evt.Fields(a)
		case nil:
		default:
			evt = evt.Interface("extra", a)
		}
	}
	evt.Msg(msg)
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	rollbar.Debug(l.prepare(msg, args)...)
	l.write(l.zl.Debug(), msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	rollbar.Info(l.prepare(msg, args)...)
	l.write(l.zl.Info(), msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.prepare(msg, args)...)
	l.write(l.zl.Warn(), msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.prepare(msg, args)...)
	l.write(l.zl.Error(), msg, args)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rollbar.Critical(l.prepare(msg, args)...)
	rollbar.Wait()
	l.write(l.zl.WithLevel(zerolog.FatalLevel), msg, args)
	exitFunc(1)
}
