// Package logger builds the application-wide zap logger. Handlers and the
// queue consumer receive it by injection; nothing logs through a package
// global.
package logger

import (
	"go.uber.org/zap"
)

// New returns a production logger in prod environments and a development
// logger (human-readable, debug level) otherwise.
func New(env string) (*zap.Logger, error) {
	if env == "prod" || env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
