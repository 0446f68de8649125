package packet

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lifx-protocol/lifx-go/pkg/log"
	"github.com/lifx-protocol/lifx-go/pkg/message"
	"github.com/lifx-protocol/lifx-go/pkg/wire"
)

// Codec encodes and decodes datagrams like Encode and Decode, reporting
// each one to a protocol logger. A Codec is immutable and safe for
// concurrent use.
type Codec struct {
	protocol     log.Logger
	sessionID    string
	maxFrameSize int
	logger       *slog.Logger

	now func() time.Time
}

// NewCodec creates a Codec from cfg.
func NewCodec(cfg Config) (*Codec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Codec{
		protocol:     cfg.ProtocolLogger,
		sessionID:    cfg.SessionID,
		maxFrameSize: cfg.MaxLogFrameSize,
		logger:       cfg.Logger,
		now:          time.Now,
	}
	if c.protocol == nil {
		c.protocol = log.NoopLogger{}
	}
	if c.sessionID == "" {
		c.sessionID = uuid.NewString()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c, nil
}

// SessionID returns the id attached to capture events.
func (c *Codec) SessionID() string {
	return c.sessionID
}

// Encode serializes m and records the outgoing datagram.
func (c *Codec) Encode(m message.Message, opts Options) ([]byte, error) {
	p, payload, err := build(m, opts)
	if err == nil {
		var b []byte
		if b, err = p.frame(payload); err == nil {
			c.protocol.Log(c.frameEvent(b, log.DirectionOut, p.Header))
			c.protocol.Log(c.messageEvent(p, log.DirectionOut, len(payload)))
			return b, nil
		}
	}

	c.logger.Debug("packet encode failed", "session_id", c.sessionID, "error", err)
	c.protocol.Log(c.errorEvent(err, log.DirectionOut, nil, "encode"))
	return nil, err
}

// Decode parses b and records the incoming datagram. A datagram that fails
// to decode is logged at Debug level and reported as an error event.
func (c *Codec) Decode(b []byte) (*Packet, error) {
	p, err := Decode(b)
	if err != nil {
		var h *wire.Header
		if len(b) >= wire.HeaderSize {
			if hdr, herr := wire.DecodeHeader(b[:wire.HeaderSize]); herr == nil {
				h = &hdr
			}
		}
		attrs := []any{"session_id", c.sessionID, "size", len(b), "error", err}
		if h != nil {
			attrs = append(attrs, "type", h.Type, "source", h.Source)
		}
		c.logger.Debug("dropping packet", attrs...)
		c.protocol.Log(c.errorEvent(err, log.DirectionIn, h, "decode"))
		return nil, err
	}

	c.protocol.Log(c.frameEvent(b[:p.Header.Size], log.DirectionIn, p.Header))
	c.protocol.Log(c.messageEvent(p, log.DirectionIn, p.Header.PayloadSize()))
	return p, nil
}

func (c *Codec) baseEvent(dir log.Direction, layer log.Layer, h *wire.Header) log.Event {
	e := log.Event{
		Timestamp: c.now(),
		SessionID: c.sessionID,
		Direction: dir,
		Layer:     layer,
		Category:  log.CategoryMessage,
	}
	if h != nil {
		e.Target = h.Target.String()
		e.Source = h.Source
	}
	return e
}

func (c *Codec) frameEvent(data []byte, dir log.Direction, h wire.Header) log.Event {
	frame := &log.FrameEvent{Size: len(data)}
	if n := len(data); n > 0 && c.maxFrameSize > 0 {
		if n > c.maxFrameSize {
			n = c.maxFrameSize
			frame.Truncated = true
		}
		frame.Data = append([]byte(nil), data[:n]...)
	} else if len(data) > 0 {
		frame.Truncated = true
	}

	e := c.baseEvent(dir, log.LayerPacket, &h)
	e.Frame = frame
	return e
}

func (c *Codec) messageEvent(p *Packet, dir log.Direction, payloadSize int) log.Event {
	t := p.Type()
	e := c.baseEvent(dir, log.LayerMessage, &p.Header)
	e.Message = &log.MessageEvent{
		Type:        uint16(t),
		Name:        t.String(),
		Sequence:    p.Header.Sequence,
		PayloadSize: payloadSize,
		AckRequired: p.Header.AckRequired,
		ResRequired: p.Header.ResRequired,
		Tagged:      p.Header.Tagged,
	}
	if t.Known() {
		e.Message.Role = t.Role().String()
		e.Message.Domain = t.Domain().String()
	}
	return e
}

func (c *Codec) errorEvent(err error, dir log.Direction, h *wire.Header, context string) log.Event {
	kind, layer := classify(err)
	e := c.baseEvent(dir, layer, h)
	e.Category = log.CategoryError
	e.Error = &log.ErrorEventData{
		Layer:   layer,
		Message: err.Error(),
		Kind:    kind,
		Context: context,
	}
	return e
}

// classify maps an error to its capture kind and the layer that raised it.
func classify(err error) (string, log.Layer) {
	switch {
	case errors.Is(err, ErrShortPacket):
		return "SHORT_PACKET", log.LayerPacket
	case errors.Is(err, ErrInvalidSize):
		return "INVALID_SIZE", log.LayerPacket
	case errors.Is(err, ErrTruncated):
		return "TRUNCATED", log.LayerPacket
	case errors.Is(err, message.ErrUnknownMessageType):
		return "UNKNOWN_MESSAGE_TYPE", log.LayerMessage
	case errors.Is(err, message.ErrInvalidPayloadLength):
		return "INVALID_PAYLOAD_LENGTH", log.LayerMessage
	case errors.Is(err, message.ErrMalformedPayload):
		return "MALFORMED_PAYLOAD", log.LayerMessage
	case errors.Is(err, wire.ErrInvalidValue):
		return "INVALID_VALUE", log.LayerMessage
	default:
		return "UNKNOWN", log.LayerPacket
	}
}
