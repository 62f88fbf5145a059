package main

import "go.uber.org/zap"

// newLogger builds the CLI's real logger (swapping out the library
// packages' zap.NewNop() default): a development config at warn level,
// info with one -v, or debug when -v is repeated.
func newLogger(verbosity int) *zap.SugaredLogger {
	config := zap.NewDevelopmentConfig()
	switch {
	case verbosity >= 2:
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case verbosity == 1:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
