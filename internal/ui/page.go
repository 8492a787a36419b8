package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"bar-inventory/internal/controllers"
	"bar-inventory/internal/entities"
	"bar-inventory/internal/export"
	"bar-inventory/internal/session"
)

// Page - одна страница-список: таблица, поиск, сортировка, построчная
// правка, форма создания и удаление с подтверждением. Собирается один
// раз на ресурс из обобщённых контроллеров; никакого копипаста по
// страницам, как было в исходнике.
type Page[E entities.Identifiable, C any] struct {
	Title   string
	Columns []Column[E]

	List   *controllers.ListController[E]
	Edit   *controllers.RowEditController[E]       // nil — правка строк недоступна
	Create *controllers.CreateFormController[E, C] // nil — ресурс только для чтения

	// Текст вопроса перед удалением ("Удалить это оборудование?").
	// Пусто — у ресурса нет удаления.
	DeleteQuestion string

	// Непустой текст — подтверждать отправку формы создания
	// (так делала страница продаж).
	SubmitQuestion string

	// Создание/правка/удаление доступны только менеджеру.
	ManagerOnly bool

	Confirmer Confirmer
	Session   *session.Session
	Logger    *zap.Logger
	In        io.Reader
	Out       io.Writer
}

// Run крутит командный цикл страницы до команды back.
func (p *Page[E, C]) Run(ctx context.Context) {
	fmt.Fprintf(p.Out, "\n== %s ==\n", p.Title)
	p.List.Refresh(ctx)
	p.render()
	p.printHelp()

	scanner := bufio.NewScanner(p.In)
	for {
		fmt.Fprintf(p.Out, "%s> ", strings.ToLower(p.Title))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		command, args := parts[0], parts[1:]

		switch command {
		case "back", "quit":
			return
		case "help":
			p.printHelp()
		case "show":
			p.render()
		case "refresh":
			p.List.Refresh(ctx)
			p.render()
		case "search":
			p.List.SetQuery(strings.Join(args, " "))
			p.render()
		case "sort":
			p.handleSort(args)
		case "edit":
			p.handleEdit(args)
		case "set":
			p.handleSet(args)
		case "save":
			p.handleSave(ctx)
		case "cancel":
			p.handleCancel()
		case "add":
			p.handleAdd()
		case "fset":
			p.handleFormSet(args)
		case "submit":
			p.handleSubmit(ctx)
		case "close":
			p.handleClose()
		case "del":
			p.handleDelete(ctx, args)
		case "export":
			p.handleExport(args)
		default:
			fmt.Fprintf(p.Out, "неизвестная команда %q, см. help\n", command)
		}
	}
}

func (p *Page[E, C]) printHelp() {
	fmt.Fprintln(p.Out, "команды: show | refresh | search <текст> | sort <поле> [asc|desc] | export <файл.xlsx>")
	if p.Edit != nil {
		fmt.Fprintln(p.Out, "         edit <id> | set <поле> <значение> | save | cancel")
	}
	if p.Create != nil {
		fmt.Fprintln(p.Out, "         add | fset <поле> <значение> | submit | close")
	}
	if p.DeleteQuestion != "" {
		fmt.Fprintln(p.Out, "         del <id>")
	}
	fmt.Fprintln(p.Out, "         back")
}

// render показывает видимые строки; для строки в режиме правки вместо
// серверных значений выводится черновик.
func (p *Page[E, C]) render() {
	if p.List.IsLoading() {
		fmt.Fprintln(p.Out, "Загрузка...")
		return
	}

	rows := p.List.Visible()
	if p.Edit != nil {
		if editingID, editing := p.Edit.EditingID(); editing {
			for i, row := range rows {
				if row.PrimaryKey() == editingID {
					rows[i] = *p.Edit.Draft()
				}
			}
		}
	}

	RenderTable(p.Out, p.Columns, rows)
	if len(rows) == 0 {
		fmt.Fprintln(p.Out, "Ничего не найдено.")
	}
}

func (p *Page[E, C]) canWrite() bool {
	if !p.ManagerOnly {
		return true
	}
	return p.Session != nil && p.Session.Manager
}

func (p *Page[E, C]) handleSort(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(p.Out, "sort: укажите поле")
		return
	}
	dir := controllers.SortAsc
	if len(args) > 1 && args[1] == string(controllers.SortDesc) {
		dir = controllers.SortDesc
	}
	p.List.SetSort(args[0], dir)
	p.render()
}

func (p *Page[E, C]) handleEdit(args []string) {
	if p.Edit == nil {
		fmt.Fprintln(p.Out, "у этого ресурса нет построчной правки")
		return
	}
	if !p.canWrite() {
		fmt.Fprintln(p.Out, "правка доступна только менеджеру")
		return
	}
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(p.Out, err)
		return
	}
	entity, found := p.List.Find(id)
	if !found {
		fmt.Fprintf(p.Out, "строка %d не найдена\n", id)
		return
	}
	p.Edit.BeginEdit(entity)
	p.render()
}

func (p *Page[E, C]) handleSet(args []string) {
	if p.Edit == nil {
		fmt.Fprintln(p.Out, "у этого ресурса нет построчной правки")
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(p.Out, "set: укажите поле и значение")
		return
	}
	if err := p.Edit.ChangeField(args[0], strings.Join(args[1:], " ")); err != nil {
		fmt.Fprintln(p.Out, err)
		return
	}
	p.render()
}

func (p *Page[E, C]) handleSave(ctx context.Context) {
	if p.Edit == nil {
		return
	}
	if err := p.Edit.Save(ctx); err != nil {
		// Ошибка уже опубликована тостом; строка осталась в правке.
		return
	}
	p.render()
}

func (p *Page[E, C]) handleCancel() {
	if p.Edit == nil {
		return
	}
	p.Edit.Cancel()
	p.render()
}

func (p *Page[E, C]) handleAdd() {
	if p.Create == nil {
		fmt.Fprintln(p.Out, "у этого ресурса нет формы создания")
		return
	}
	if !p.canWrite() {
		fmt.Fprintln(p.Out, "создание доступно только менеджеру")
		return
	}
	p.Create.Open()
	fmt.Fprintln(p.Out, "форма открыта: fset <поле> <значение>, затем submit")
}

func (p *Page[E, C]) handleFormSet(args []string) {
	if p.Create == nil {
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(p.Out, "fset: укажите поле и значение")
		return
	}
	if err := p.Create.ChangeField(args[0], strings.Join(args[1:], " ")); err != nil {
		fmt.Fprintln(p.Out, err)
	}
}

func (p *Page[E, C]) handleSubmit(ctx context.Context) {
	if p.Create == nil {
		return
	}
	if p.SubmitQuestion != "" && !p.Confirmer.Confirm(p.SubmitQuestion) {
		return
	}
	if err := p.Create.Submit(ctx); err != nil {
		return
	}
	p.render()
}

func (p *Page[E, C]) handleClose() {
	if p.Create != nil {
		p.Create.Close()
	}
}

// handleDelete — единственный путь к удалению, и он всегда идёт через
// блокирующее подтверждение с названием действия.
func (p *Page[E, C]) handleDelete(ctx context.Context, args []string) {
	if p.DeleteQuestion == "" {
		fmt.Fprintln(p.Out, "у этого ресурса нет удаления")
		return
	}
	if !p.canWrite() {
		fmt.Fprintln(p.Out, "удаление доступно только менеджеру")
		return
	}
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(p.Out, err)
		return
	}
	if !p.Confirmer.Confirm(p.DeleteQuestion) {
		return
	}
	if err := p.List.Delete(ctx, id); err != nil {
		return
	}
	p.render()
}

func (p *Page[E, C]) handleExport(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(p.Out, "export: укажите имя файла")
		return
	}
	path := args[0]

	headers := make([]string, len(p.Columns))
	for i, col := range p.Columns {
		headers[i] = col.Title
	}
	visible := p.List.Visible()
	rows := make([][]string, len(visible))
	for i, entity := range visible {
		row := make([]string, len(p.Columns))
		for j, col := range p.Columns {
			row[j] = col.Value(entity)
		}
		rows[i] = row
	}

	if err := export.WriteXLSX(path, p.Title, headers, rows); err != nil {
		p.Logger.Error("Экспорт не удался", zap.String("path", path), zap.Error(err))
		fmt.Fprintln(p.Out, "экспорт не удался:", err)
		return
	}
	fmt.Fprintf(p.Out, "выгружено строк: %d → %s\n", len(rows), path)
}

func parseID(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("укажите id строки")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("неверный id %q", args[0])
	}
	return id, nil
}
