package packet

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lifx-protocol/lifx-go/pkg/log"
)

// DefaultMaxLogFrameSize is the number of datagram bytes kept in capture
// events. Longer datagrams are truncated.
const DefaultMaxLogFrameSize = 4096

// ErrInvalidConfig indicates a Config that failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config configures a Codec.
type Config struct {
	// ProtocolLogger receives capture events. Nil disables capture.
	ProtocolLogger log.Logger

	// SessionID tags every capture event. Must be a UUID when set; an empty
	// value is replaced with a random one.
	SessionID string

	// MaxLogFrameSize caps the datagram bytes copied into capture events.
	// Zero keeps only the size.
	MaxLogFrameSize int

	// Logger receives operational debug records. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config with capture disabled and a fresh session id.
func DefaultConfig() Config {
	return Config{
		SessionID:       uuid.NewString(),
		MaxLogFrameSize: DefaultMaxLogFrameSize,
		Logger:          slog.Default(),
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.MaxLogFrameSize < 0 {
		return fmt.Errorf("%w: negative MaxLogFrameSize %d", ErrInvalidConfig, c.MaxLogFrameSize)
	}
	if c.SessionID != "" {
		if _, err := uuid.Parse(c.SessionID); err != nil {
			return fmt.Errorf("%w: SessionID: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}
