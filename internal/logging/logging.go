package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
	"gopkg.in/natefinch/lumberjack.v2"
	gormlogger "gorm.io/gorm/logger"
)

// Параметры ротации файла логов
const (
	MaxSize    = 100
	MaxBackups = 3
	MaxAge     = 28
)

const service = "hr_entity_api"

// Options - параметры логгера
type Options struct {
	File  string
	Level slog.Level
	// Console - куда писать цветную строку; nil отключает вывод в консоль
	Console io.Writer
}

// ConsoleHandler пишет каждую запись в JSON handler (файл) и дублирует её
// цветной строкой в консоль.
type ConsoleHandler struct {
	handler slog.Handler
	console io.Writer
	attrs   []slog.Attr
}

// NewConsoleHandler создаёт handler поверх JSON вывода в out
func NewConsoleHandler(out, console io.Writer, level slog.Level) *ConsoleHandler {
	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{Key: "timestamp", Value: slog.StringValue(a.Value.Time().Format(time.RFC3339))}
			}
			return a
		},
	})
	return &ConsoleHandler{
		handler: handler.WithAttrs([]slog.Attr{slog.String("service", service)}),
		console: console,
	}
}

func (h *ConsoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *ConsoleHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.handler.Handle(ctx, r); err != nil {
		return err
	}
	if h.console == nil {
		return nil
	}

	attrs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
		return true
	})

	message := r.Message
	if len(attrs) > 0 {
		message = message + " " + strings.Join(attrs, " ")
	}

	_, err := fmt.Fprintf(h.console, "%s %s %s\n",
		color.New(color.FgBlue).Sprint(r.Time.Format("2006-01-02 15:04:05.000")),
		levelColor(r.Level).Sprintf("%-6s", r.Level.String()),
		message,
	)
	return err
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConsoleHandler{
		handler: h.handler.WithAttrs(attrs),
		console: h.console,
		attrs:   append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

// WithGroup влияет только на JSON вывод
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	return &ConsoleHandler{handler: h.handler.WithGroup(name), console: h.console, attrs: h.attrs}
}

func levelColor(level slog.Level) *color.Color {
	switch {
	case level >= slog.LevelError:
		return color.New(color.FgRed)
	case level >= slog.LevelWarn:
		return color.New(color.FgYellow)
	case level >= slog.LevelInfo:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgCyan)
	}
}

// Setup создаёт логгер с ротацией файла через lumberjack.
// Возвращаемый io.Closer закрывает файл логов.
func Setup(opts Options) (*slog.Logger, io.Closer) {
	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    MaxSize,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAge,
		Compress:   true,
	}
	return slog.New(NewConsoleHandler(file, opts.Console, opts.Level)), file
}

// GormLogger направляет сообщения GORM в logger на уровне Warn:
// медленные запросы и ошибки, без трассировки каждого SQL.
func GormLogger(logger *slog.Logger) gormlogger.Interface {
	return gormlogger.New(
		slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
