package logger

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Icons and symbols for different log types
const (
	IconSuccess = "✅"
	IconError   = "❌"
	IconRocket  = "🚀"
	IconNetwork = "🌐"
	IconRefresh = "🔄"
)

// Success logs a success message with a green checkmark
func Success(args ...interface{}) {
	defaultLogger.Info(IconSuccess + " " + fmt.Sprint(args...))
}

// Successf logs a formatted success message
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Progress logs a progress message with a refresh icon
func Progress(args ...interface{}) {
	defaultLogger.Info(IconRefresh + " " + fmt.Sprint(args...))
}

// Progressf logs a formatted progress message
func Progressf(format string, args ...interface{}) {
	Progress(fmt.Sprintf(format, args...))
}

// Network logs a network-related message
func Network(args ...interface{}) {
	defaultLogger.Info(IconNetwork + " " + fmt.Sprint(args...))
}

// Networkf logs a formatted network message
func Networkf(format string, args ...interface{}) {
	Network(fmt.Sprintf(format, args...))
}

// defaultOutput returns the output shared by the default logger
func defaultOutput() *output {
	if l, ok := defaultLogger.(*logger); ok {
		return l.out
	}
	return &output{writer: io.Discard, noColor: true}
}

// write runs fn with the output locked, so helpers and spinners never
// interleave with log lines
func (o *output) write(fn func(w io.Writer, noColor bool)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fn(o.writer, o.noColor)
}

// LogSection creates a visual section separator
func LogSection(title string) {
	defaultOutput().write(func(w io.Writer, noColor bool) {
		line := strings.Repeat("=", 50)
		if noColor {
			_, _ = fmt.Fprintf(w, "%s\n%s\n%s\n", line, title, line)
			return
		}
		_, _ = fmt.Fprintf(w, "%s\n%s\n%s\n",
			colorKey.Sprint(line), colorTitle.Sprint(title), colorKey.Sprint(line))
	})
}

// LogKeyValue logs a key-value pair with nice formatting
func LogKeyValue(key string, value interface{}) {
	defaultOutput().write(func(w io.Writer, noColor bool) {
		writeKeyValue(w, noColor, key, value)
	})
}

// LogKeyValues logs multiple key-value pairs in key order
func LogKeyValues(pairs map[string]interface{}) {
	defaultOutput().write(func(w io.Writer, noColor bool) {
		keys := make([]string, 0, len(pairs))
		for k := range pairs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			writeKeyValue(w, noColor, k, pairs[k])
		}
	})
}

func writeKeyValue(w io.Writer, noColor bool, key string, value interface{}) {
	if noColor {
		_, _ = fmt.Fprintf(w, "%s: %v\n", key, value)
		return
	}
	_, _ = fmt.Fprintf(w, "%s %v\n", colorKey.Sprint(key+":"), value)
}

// Table represents a simple table for logging
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a new table
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    [][]string{},
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(values ...string) {
	t.rows = append(t.rows, values)
}

// Fprint writes the table to w
func (t *Table) Fprint(w io.Writer) {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		var b strings.Builder
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			fmt.Fprintf(&b, "%-*s  ", widths[i], cell)
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}

	writeRow(t.headers)

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	writeRow(sep)

	for _, row := range t.rows {
		writeRow(row)
	}
}
