package logger

import "go.uber.org/zap"

// NewLogger собирает консольный zap-логгер для клиента.
// Пишем в stderr, чтобы не мешать таблицам и промптам в stdout.
func NewLogger() *zap.Logger {
	consoleConfig := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	consoleLogger, err := consoleConfig.Build()
	if err != nil {
		panic(err)
	}

	return consoleLogger
}
