package log

import (
	"fmt"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It discards everything until one of the
// Init functions runs.
var Logger = zap.NewNop()

func InitProductionLogger() {
	Logger, _ = zap.NewProduction()
}

func InitDevelopmentLogger() {
	Logger, _ = zap.NewDevelopment()
}

// Init builds Logger from a level name such as "debug" or "warn". When file is
// not empty log lines are written there as well as to stderr. The stock
// production and development loggers serve their own default levels.
func Init(level string, dev bool, file string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	if file == "" {
		switch {
		case dev && lvl == zapcore.DebugLevel:
			InitDevelopmentLogger()
			return nil
		case !dev && lvl == zapcore.InfoLevel:
			InitProductionLogger()
			return nil
		}
	}

	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if file != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, file)
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	Logger = l
	return nil
}

// DefaultFile returns the log file location under the XDG state directory,
// creating parent directories as needed.
func DefaultFile() (string, error) {
	return xdg.StateFile("crossing/crossing.log")
}
