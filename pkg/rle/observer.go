package rle

import "log/slog"

// Observer is told about each input line as the decoder classifies it.
type Observer interface {
	Comment(lineNo int, text string)
	Header(lineNo int, h Header)
	Body(lineNo int, text string)
}

// NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) Comment(int, string) {}
func (NopObserver) Header(int, Header) {}
func (NopObserver) Body(int, string) {}

// LogObserver writes every line to a slog.Logger at debug level.
type LogObserver struct {
	Logger *slog.Logger
}

// Comment logs a '#' line.
func (o LogObserver) Comment(lineNo int, text string) {
	o.Logger.Debug("rle comment", "line", lineNo, "text", text)
}

// Header logs the parsed header values.
func (o LogObserver) Header(lineNo int, h Header) {
	o.Logger.Debug("rle header", "line", lineNo, "width", h.Width, "height", h.Height, "rule", h.Rule)
}

// Body logs a pattern body line.
func (o LogObserver) Body(lineNo int, text string) {
	o.Logger.Debug("rle body", "line", lineNo, "text", text)
}
