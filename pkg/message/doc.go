// Package message implements the closed catalog of protocol messages and
// their payload codecs.
//
// Each message type is a Go struct implementing Message. The catalog maps
// the numeric type identifier of every variant to its name, fixed payload
// size, role and domain, and to the field decoder for that type:
//
//	payload, err := message.Encode(message.LightSetColor{Transition: tr})
//	msg, err := message.Decode(message.TypeLightSetColor, payload)
//
// # Roles and Domains
//
// A message is a command (mutates device state), a request (solicits a
// response) or a response (carries state). Its domain is either the device
// as a whole or its light. Both are attributes of the Type:
//
//	message.TypeLightSetColor.Role()   // RoleCommand
//	message.TypeLightSetColor.Domain() // DomainLight
//
// # Errors
//
// Decode fails with UnknownMessageTypeError, InvalidPayloadLengthError or
// MalformedPayloadError. All three match their sentinel with errors.Is.
// Decoding holds no state between calls; a failed decode never affects the
// next one.
package message
