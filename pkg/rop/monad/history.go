package monad

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ib-77/stepkit/pkg/rop"
)

var historyHeaders = []string{"#", "input", "func", "condition", "output", "defaultValue", "failed"}

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleFailed = styleCell.Foreground(lipgloss.Color("9"))
)

// Log writes the history table and the current value to w. When collapsed,
// only the step count and the value are written.
func (p *Pipeline) Log(w io.Writer, collapsed bool) *Pipeline {
	n := len(p.history)
	fmt.Fprintf(w, "Pipeline history: %d step%s\n", n, rop.Plural(n, "s", ""))
	if !collapsed {
		fmt.Fprintln(w, p.Table())
	}
	fmt.Fprintf(w, "Pipeline value: %s\n", FormatValue(p.value))
	return p
}

// Table renders the history, one row per executed step.
func (p *Pipeline) Table() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(historyHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case row >= 0 && row < len(p.history) && p.history[row].Failed():
				return styleFailed
			}
			return styleCell
		})

	for i, s := range p.history {
		t.Row(
			strconv.Itoa(i),
			FormatValue(s.Input()),
			FuncName(s.Transform()),
			FuncName(s.Condition()),
			FormatValue(s.Output()),
			FormatValue(s.DefaultValue()),
			strconv.FormatBool(s.Failed()),
		)
	}
	return t.Render()
}

// FormatValue renders a pipeline value for display. Strings are quoted.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(x)
	case error:
		return "error: " + x.Error()
	}
	return fmt.Sprintf("%v", v)
}

// FuncName resolves the symbol name of a function value.
func FuncName(f any) string {
	if rop.IsNil(f) {
		return "<nil>"
	}
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func {
		return fmt.Sprintf("%T", f)
	}
	if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
		name := fn.Name()
		return name[strings.LastIndex(name, "/")+1:]
	}
	return "func"
}
