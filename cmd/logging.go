package cmd

import (
	"os"

	"github.com/warpdl/chromecookies/internal/config"
	"github.com/warpdl/chromecookies/pkg/logger"
)

// newLogger picks the log backends from the config: stderr with --debug,
// a file with --log-file, both, or none.
func newLogger(cfg *config.Config) (logger.Logger, error) {
	var loggers []logger.Logger
	if cfg.Debug {
		loggers = append(loggers, logger.NewConsoleLogger(os.Stderr))
	}
	if cfg.LogFile != "" {
		fl, err := logger.NewFileLogger(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		loggers = append(loggers, fl)
	}
	return logger.Combine(loggers...), nil
}
