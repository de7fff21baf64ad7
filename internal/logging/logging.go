// Package logging holds the shared CLI logger. The engine itself never logs;
// only command-level code does.
package logging

import (
	"go.uber.org/zap"
)

var Logger *zap.SugaredLogger

// Init builds the process logger. Verbose enables the development encoder at
// debug level; otherwise output is limited to warnings.
func Init(verbose bool) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		panic("logger init: " + err.Error())
	}
	Logger = logger.Sugar()
}
