package seeder

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Reporter renders orchestrator progress. Chunks never log; everything a
// user sees about a run goes through a Reporter.
type Reporter interface {
	Plan(order []string)
	Cleaned(tables int, rows int64)
	Start(name string)
	Result(res Result)
	Skipped(name, reason string)
	Summary(report *Report)
}

type nopReporter struct{}

func (nopReporter) Plan([]string)          {}
func (nopReporter) Cleaned(int, int64)     {}
func (nopReporter) Start(string)           {}
func (nopReporter) Result(Result)          {}
func (nopReporter) Skipped(string, string) {}
func (nopReporter) Summary(*Report)        {}

// ConsoleReporter prints colored, human readable progress lines.
type ConsoleReporter struct {
	w      io.Writer
	cyan   *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
}

func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{
		w:      w,
		cyan:   color.New(color.FgCyan),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
	}
}

func (c *ConsoleReporter) Plan(order []string) {
	c.cyan.Fprintf(c.w, "🌱 Seeding %d chunk(s)\n", len(order))
	c.cyan.Fprintf(c.w, "📋 Order: %s\n\n", strings.Join(order, " → "))
}

func (c *ConsoleReporter) Cleaned(tables int, rows int64) {
	c.yellow.Fprintf(c.w, "🧹 Cleared %d row(s) from %d table(s)\n\n", rows, tables)
}

func (c *ConsoleReporter) Start(name string) {
	c.cyan.Fprintf(c.w, "⏳ %s...\n", name)
}

func (c *ConsoleReporter) Result(res Result) {
	if res.Success {
		c.green.Fprintf(c.w, "  ✅ %s: %s (%d created, %d updated) in %s\n",
			res.Module, res.Message, res.EntitiesCreated, res.EntitiesUpdated, res.Duration.Round(time.Millisecond))
		return
	}
	c.red.Fprintf(c.w, "  ❌ %s failed after %s\n", res.Module, res.Duration.Round(time.Millisecond))
	for _, e := range res.Errors {
		c.red.Fprintf(c.w, "     %s\n", e)
	}
}

func (c *ConsoleReporter) Skipped(name, reason string) {
	c.yellow.Fprintf(c.w, "  ⏭️  %s skipped: %s\n", name, reason)
}

func (c *ConsoleReporter) Summary(report *Report) {
	fmt.Fprintln(c.w)
	failed := len(report.Failed())
	succeeded := len(report.Results) - failed

	if failed == 0 && len(report.Skipped) == 0 {
		c.green.Fprintf(c.w, "🎉 Seeding complete: %d chunk(s), %d created, %d updated\n",
			succeeded, report.Created(), report.Updated())
		return
	}
	c.red.Fprintf(c.w, "⚠️  Seeding finished with problems: %d succeeded, %d failed, %d skipped\n",
		succeeded, failed, len(report.Skipped))
	for _, res := range report.Failed() {
		c.red.Fprintf(c.w, "   • %s\n", res.Module)
	}
}

// LogReporter writes one structured zap entry per event.
type LogReporter struct {
	log *zap.Logger
}

func NewLogReporter(log *zap.Logger) *LogReporter {
	return &LogReporter{log: log}
}

func (l *LogReporter) Plan(order []string) {
	l.log.Info("seed plan", zap.Strings("order", order))
}

func (l *LogReporter) Cleaned(tables int, rows int64) {
	l.log.Info("cleanup complete", zap.Int("tables", tables), zap.Int64("rows", rows))
}

func (l *LogReporter) Start(name string) {
	l.log.Debug("chunk started", zap.String("chunk", name))
}

func (l *LogReporter) Result(res Result) {
	fields := []zap.Field{
		zap.String("chunk", res.Module),
		zap.Int("created", res.EntitiesCreated),
		zap.Int("updated", res.EntitiesUpdated),
		zap.Duration("duration", res.Duration),
	}
	if res.Success {
		l.log.Info(res.Message, fields...)
		return
	}
	l.log.Error("chunk failed", append(fields, zap.Strings("errors", res.Errors))...)
}

func (l *LogReporter) Skipped(name, reason string) {
	l.log.Warn("chunk skipped", zap.String("chunk", name), zap.String("reason", reason))
}

func (l *LogReporter) Summary(report *Report) {
	fields := []zap.Field{
		zap.Int("chunks", len(report.Results)),
		zap.Int("failed", len(report.Failed())),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("created", report.Created()),
		zap.Int("updated", report.Updated()),
	}
	if err := report.Err(); err != nil {
		l.log.Error("seeding finished with errors", append(fields, zap.Error(err))...)
		return
	}
	l.log.Info("seeding complete", fields...)
}
