// Package model defines the immutable value types carried by protocol
// messages.
//
// Values are built either from decoded payload bytes or by the New*
// constructors, which validate every field against its wire domain and
// return a wire.InvalidValueError instead of clamping or truncating:
//
//	color, err := model.NewHSBK(21845, 65535, 65535, 3500)
//	label, err := model.NewLabel("Kitchen")
//	tr, err := model.NewColorTransition(color, time.Second)
//
// # Time Values
//
// Points in time travel as 64-bit nanosecond counts since the Unix epoch
// and are always decoded in UTC. Transition durations and waveform periods
// travel as 32-bit millisecond counts, so they must be whole milliseconds.
package model
