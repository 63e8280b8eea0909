package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/fatih/color"

	"claudeprofiles/internal/redact"
)

// Handler implements slog.Handler for TTY-oriented text output.
// Output is colorized when the writer is a color-capable terminal, and
// attribute values that look like secrets are masked before printing.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	colors *palette
	attrs  []slog.Attr
	prefix string // dotted group path applied to attribute keys
}

type palette struct {
	time  *color.Color
	trace *color.Color
	debug *color.Color
	info  *color.Color
	warn  *color.Color
	err   *color.Color
	key   *color.Color
}

// NewHandler creates a TTY-oriented text handler writing to out.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	h := &Handler{
		opts: *opts,
		out:  out,
		mu:   &sync.Mutex{},
	}

	// Colors stay nil unless the writer can render them
	if SupportsColor(out) {
		h.colors = &palette{
			time:  color.New(color.FgHiBlack),
			trace: color.New(color.FgHiBlack),
			debug: color.New(color.FgMagenta),
			info:  color.New(color.FgGreen),
			warn:  color.New(color.FgYellow),
			err:   color.New(color.FgRed, color.Bold),
			key:   color.New(color.FgCyan),
		}
	}

	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle formats and writes the record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !r.Time.IsZero() {
		ts := r.Time.Format(time.Kitchen)
		if h.colors != nil {
			ts = h.colors.time.Sprint(ts)
		}
		fmt.Fprintf(h.out, "%s ", ts)
	}

	fmt.Fprintf(h.out, "%-5s %s", h.levelLabel(r.Level), r.Message)

	for _, a := range h.attrs {
		h.appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(a)
		return true
	})

	fmt.Fprintln(h.out)

	return nil
}

// levelLabel renders the level name, substituting TRACE for the custom
// sub-debug level that slog would otherwise print as "DEBUG-4".
func (h *Handler) levelLabel(level slog.Level) string {
	label := level.String()
	if level <= LevelTrace {
		label = "TRACE"
	}
	if h.colors == nil {
		return label
	}
	switch {
	case level >= slog.LevelError:
		return h.colors.err.Sprint(label)
	case level >= slog.LevelWarn:
		return h.colors.warn.Sprint(label)
	case level >= slog.LevelInfo:
		return h.colors.info.Sprint(label)
	case level >= slog.LevelDebug:
		return h.colors.debug.Sprint(label)
	default:
		return h.colors.trace.Sprint(label)
	}
}

func (h *Handler) appendAttr(a slog.Attr) {
	key := a.Key
	if h.prefix != "" {
		key = h.prefix + "." + key
	}
	if h.colors != nil {
		key = h.colors.key.Sprint(key)
	}

	value := a.Value.Any()

	// Redact sensitive values
	if redact.ShouldMask(a.Key) {
		value = redact.MaskValue(fmt.Sprint(value))
	} else if strVal, ok := value.(string); ok && redact.ContainsTokenPrefix(strVal) {
		value = redact.MaskValue(strVal)
	}

	fmt.Fprintf(h.out, " %s=%v", key, value)
}

// WithAttrs returns a new Handler that always emits the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := *h
	newH.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newH.attrs = append(newH.attrs, h.attrs...)
	newH.attrs = append(newH.attrs, attrs...)
	return &newH
}

// WithGroup returns a new Handler that prefixes attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newH := *h
	if h.prefix == "" {
		newH.prefix = name
	} else {
		newH.prefix = h.prefix + "." + name
	}
	return &newH
}
