package ui

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Column описывает одну колонку таблицы: заголовок, wire-имя поля
// (его принимает команда set) и способ достать отображаемое значение.
type Column[E any] struct {
	Title string
	Field string
	Value func(E) string
}

// RenderTable печатает строки через tabwriter.
func RenderTable[E any](w io.Writer, columns []Column[E], rows []E) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, col := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col.Title)
	}
	fmt.Fprintln(tw)

	for _, row := range rows {
		for i, col := range columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, col.Value(row))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}
