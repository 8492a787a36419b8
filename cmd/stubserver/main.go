// Файл: cmd/stubserver/main.go
//
// Точка входа бэкенда-заглушки. Поднимает in-memory реализацию
// инвентарного API с демо-данными; основное приложение (app/)
// ходит в неё как в настоящий сервер.
package main

import (
	"go.uber.org/zap"

	"bar-inventory/internal/stub"
	"bar-inventory/pkg/config"
	applogger "bar-inventory/pkg/logger"
)

func main() {
	cfg := config.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	server := stub.NewServer(cfg.Stub.JWTSecret, logger)
	if err := server.Start(cfg.Stub.Port); err != nil {
		logger.Fatal("Сервер-заглушка остановился с ошибкой", zap.Error(err))
	}
}
