package interleave

import (
	"log/slog"

	"github.com/arloliu/zdex/internal/options"
)

// Config holds the settings of one interleave call.
type Config struct {
	logger *slog.Logger
}

// Option configures an interleave call.
type Option = options.Option[*Config]

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{
		logger: slog.New(slog.DiscardHandler),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithLogger sets the logger used for debug output. Access failures and a
// summary of each build are logged at debug level. A nil logger discards
// output, which is also the default.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		c.logger = logger
		if c.logger == nil {
			c.logger = slog.New(slog.DiscardHandler)
		}
	})
}
