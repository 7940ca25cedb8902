package widgets

import (
	"bytes"
	"strings"
	"sync"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/imdi/gui"
)

// LogConsole is a bounded scrollback of log lines with a filter box. It is an
// io.Writer, so a logger can write straight into it from any goroutine.
type LogConsole struct {
	mu       sync.Mutex
	lines    []string
	next     int
	full     bool
	partial  []byte
	filter   string
	maxLines int

	AutoScroll bool
}

// NewLogConsole keeps at most maxLines lines.
func NewLogConsole(maxLines int) *LogConsole {
	if maxLines < 1 {
		maxLines = 1
	}
	return &LogConsole{
		lines:      make([]string, maxLines),
		maxLines:   maxLines,
		AutoScroll: true,
	}
}

// Write appends complete lines; a trailing partial line is held until its
// newline arrives.
func (lc *LogConsole) Write(p []byte) (int, error) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	data := append(lc.partial, p...)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		lc.appendLine(string(bytes.TrimRight(data[:i], "\r")))
		data = data[i+1:]
	}
	lc.partial = append([]byte(nil), data...)
	return len(p), nil
}

func (lc *LogConsole) appendLine(line string) {
	lc.lines[lc.next] = line
	lc.next = (lc.next + 1) % lc.maxLines
	if lc.next == 0 {
		lc.full = true
	}
}

// Lines returns the kept lines, oldest first.
func (lc *LogConsole) Lines() []string {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.snapshot()
}

func (lc *LogConsole) snapshot() []string {
	if !lc.full {
		return append([]string(nil), lc.lines[:lc.next]...)
	}
	out := make([]string, 0, lc.maxLines)
	out = append(out, lc.lines[lc.next:]...)
	return append(out, lc.lines[:lc.next]...)
}

// SetFilter shows only lines containing filter, case-insensitively.
func (lc *LogConsole) SetFilter(filter string) {
	lc.mu.Lock()
	lc.filter = filter
	lc.mu.Unlock()
}

// Clear drops every line.
func (lc *LogConsole) Clear() {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	clear(lc.lines)
	lc.next = 0
	lc.full = false
	lc.partial = nil
}

// Visible returns the lines the current filter lets through.
func (lc *LogConsole) Visible() []string {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.visible()
}

func (lc *LogConsole) visible() []string {
	lines := lc.snapshot()
	if lc.filter == "" {
		return lines
	}
	needle := strings.ToLower(lc.filter)
	out := lines[:0]
	for _, l := range lines {
		if strings.Contains(strings.ToLower(l), needle) {
			out = append(out, l)
		}
	}
	return out
}

// Render draws the console window.
func (lc *LogConsole) Render(ui gui.ImGui, title string) {
	gui.Window(ui, title, func() {
		if ui.Button("Clear") {
			lc.Clear()
		}
		ui.SameLine()
		ui.Checkbox("Auto-scroll", &lc.AutoScroll)
		ui.SameLine()

		lc.mu.Lock()
		defer lc.mu.Unlock()

		ui.SetNextItemWidth(-1)
		ui.InputTextWithHint("##filter", "Filter...", &lc.filter, imgui.InputTextFlagsNone)
		ui.Separator()

		visible := lc.visible()
		gui.Child(ui, "##scrollback", func() {
			for _, line := range visible {
				ui.TextUnformatted(line)
			}
			if lc.AutoScroll && ui.ScrollY() >= ui.ScrollMaxY() {
				ui.SetScrollHereYV(1.0)
			}
		})
	})
}
