package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer - контракт подтверждения разрушающего действия: блокирующий
// вопрос да/нет с названием действия. Без "да" вызов к серверу не уходит.
type Confirmer interface {
	Confirm(action string) bool
}

// TerminalConfirmer спрашивает в терминале.
type TerminalConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalConfirmer(in io.Reader, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{in: bufio.NewReader(in), out: out}
}

func (t *TerminalConfirmer) Confirm(action string) bool {
	fmt.Fprintf(t.out, "%s [y/N]: ", action)
	line, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "д", "да":
		return true
	default:
		return false
	}
}

// StaticConfirmer отвечает заранее заданным решением; нужен тестам.
type StaticConfirmer struct {
	Answer bool
	Asked  []string
}

func (s *StaticConfirmer) Confirm(action string) bool {
	s.Asked = append(s.Asked, action)
	return s.Answer
}
