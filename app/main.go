// Файл: app/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"bar-inventory/internal/api"
	"bar-inventory/internal/session"
	"bar-inventory/internal/ui"
	"bar-inventory/pkg/config"
	"bar-inventory/pkg/eventbus"
	applogger "bar-inventory/pkg/logger"
	"bar-inventory/pkg/validation"
)

func main() {
	// 1. Базовые вещи: конфиг, логгер, шина событий, валидатор.
	cfg := config.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	bus := eventbus.New(logger)
	ui.AttachToastPrinter(bus, os.Stdout)
	validate := validation.New()

	// 2. Один транспортный клиент на все ресурсы.
	client := api.NewClient(cfg.API.BaseURL, cfg.API.RequestTimeout, logger)

	in := bufio.NewReader(os.Stdin)
	out := os.Stdout
	ctx := context.Background()

	// 3. Вход. Признак менеджера приезжает в токене, а не хардкодится.
	sess := login(ctx, client, in, out, logger)
	client.SetToken(sess.Token)
	fmt.Fprintf(out, "Вы вошли как %s (менеджер: %v)\n", sess.Username, sess.Manager)

	// 4. Страницы: по одной сборке обобщённых контроллеров на ресурс.
	confirmer := ui.NewTerminalConfirmer(in, out)
	pages := buildPages(pageDeps{
		client:    client,
		logger:    logger,
		bus:       bus,
		validate:  validate,
		session:   sess,
		confirmer: confirmer,
		in:        in,
		out:       out,
	})

	// 5. Главное меню.
	for {
		fmt.Fprintln(out, "\nРазделы:")
		for i, page := range pages {
			fmt.Fprintf(out, "  %d. %s\n", i+1, page.title)
		}
		fmt.Fprintln(out, "  0. Выход (logout — сменить пользователя)")
		fmt.Fprint(out, "> ")

		line, err := in.ReadString('\n')
		if err != nil {
			return
		}
		choice := strings.TrimSpace(line)
		if choice == "0" || choice == "exit" {
			return
		}
		if choice == "logout" {
			client.SetToken("")
			// Страницы держат тот же указатель на сессию.
			*sess = *login(ctx, client, in, out, logger)
			client.SetToken(sess.Token)
			fmt.Fprintf(out, "Вы вошли как %s (менеджер: %v)\n", sess.Username, sess.Manager)
			continue
		}

		index := -1
		fmt.Sscanf(choice, "%d", &index)
		if index < 1 || index > len(pages) {
			fmt.Fprintln(out, "Нет такого раздела.")
			continue
		}
		pages[index-1].run(ctx)
	}
}

// login спрашивает учётные данные до успешного входа.
func login(ctx context.Context, client *api.Client, in *bufio.Reader, out *os.File, logger *zap.Logger) *session.Session {
	for {
		fmt.Fprint(out, "Логин: ")
		username, err := in.ReadString('\n')
		if err != nil {
			os.Exit(1)
		}
		fmt.Fprint(out, "Пароль: ")
		password, err := in.ReadString('\n')
		if err != nil {
			os.Exit(1)
		}

		resp, err := client.Login(ctx, strings.TrimSpace(username), strings.TrimSpace(password))
		if err != nil {
			logger.Warn("Вход не удался", zap.Error(err))
			fmt.Fprintln(out, "Не удалось войти. Попробуйте ещё раз.")
			continue
		}

		sess, err := session.FromToken(resp.Token)
		if err != nil {
			logger.Error("Сервер вернул непригодный токен", zap.Error(err))
			fmt.Fprintln(out, "Не удалось войти. Попробуйте ещё раз.")
			continue
		}
		if resp.Message != "" {
			fmt.Fprintln(out, resp.Message)
		}
		return sess
	}
}
