package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"localweather.app/internal/ports"
)

// TerminalRenderer implements the Renderer port by writing plain text lines
type TerminalRenderer struct {
	mu     sync.Mutex
	out    io.Writer
	title  cases.Caser
	logger ports.Logger
}

// NewTerminalRenderer creates a renderer writing to out
func NewTerminalRenderer(out io.Writer, logger ports.Logger) *TerminalRenderer {
	return &TerminalRenderer{
		out:    out,
		title:  cases.Title(language.English),
		logger: logger,
	}
}

func (r *TerminalRenderer) ShowSplash(appName string) {
	banner := strings.Repeat("=", len(appName)+8)
	r.printf("%s\n    %s\n%s\n", banner, appName, banner)
}

func (r *TerminalRenderer) ShowLoading(loading bool) {
	if loading {
		r.printf("Loading weather...\n")
	}
}

func (r *TerminalRenderer) ShowWeather(view ports.WeatherView) {
	r.printf("\n%s\n  %.1f°%s  %s [%s]\n  Humidity %.0f%%  Wind %.1f\n",
		view.Location,
		view.Temperature, view.UnitSymbol,
		r.titled(view.Condition), view.Icon,
		view.Humidity, view.WindSpeed)
	if view.LastUpdate != "" {
		r.printf("  %s\n", view.LastUpdate)
	}
}

func (r *TerminalRenderer) ShowForecast(items []ports.ForecastItemView) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	b.WriteString("\nForecast\n")
	for _, item := range items {
		fmt.Fprintf(&b, "  %-10s %5.1f / %5.1f°%s  %s\n",
			item.Day, item.MinTemp, item.MaxTemp, item.UnitSymbol, r.title.String(item.Condition))
	}
	r.write(b.String())
}

func (r *TerminalRenderer) ShowNotice(notice ports.Notice) {
	r.printf("! %s\n", notice.Message())
}

func (r *TerminalRenderer) titled(s string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.title.String(s)
}

func (r *TerminalRenderer) printf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write(fmt.Sprintf(format, args...))
}

// write must be called with mu held
func (r *TerminalRenderer) write(s string) {
	if _, err := io.WriteString(r.out, s); err != nil {
		r.logger.Warn("Failed to write to terminal", ports.F("error", err))
	}
}
