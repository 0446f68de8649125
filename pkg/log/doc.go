// Package log provides structured protocol capture for lifx-go.
//
// This package defines the Logger interface and Event types for capturing
// traffic at two layers: raw packet bytes and decoded messages. It is
// separate from operational logging (slog). Protocol capture produces a
// machine-readable trace of every packet a codec encodes or decodes.
//
// # Basic Usage
//
// Applications enable capture through packet.Config:
//
//	// For development: log to console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: one binary file per codec session
//	cfg.ProtocolLogger, _ = log.NewSessionFileLogger("/var/log/lifx", cfg.SessionID)
//
//	// Both: use MultiLogger
//	cfg.ProtocolLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Events are captured at two layers:
//   - Packet: Raw datagram bytes (FrameEvent)
//   - Message: Decoded header and catalog metadata (MessageEvent)
//
// Failures at either layer are recorded as ErrorEventData.
//
// # File Format
//
// Capture files are a stream of CBOR-encoded events with the .llog
// extension. Reader iterates over them with optional filtering.
package log
