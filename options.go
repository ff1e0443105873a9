package razdel

import "log/slog"

// Option configures a Segmenter.
type Option func(*config)

type config struct {
	abbreviations []string
	logger        *slog.Logger
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
	}
}

// WithAbbreviations adds abbreviations (without the trailing period) to
// the exception set consulted by the blocking logic.
func WithAbbreviations(abbr ...string) Option {
	return func(c *config) {
		c.abbreviations = append(c.abbreviations, abbr...)
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
