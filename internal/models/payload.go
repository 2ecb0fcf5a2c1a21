package models

// Base64Payload is standard base64 text (RFC 4648, '=' padded, unwrapped).
// Values produced by the encoder or accepted by the validator are canonical.
type Base64Payload string

// String implements fmt.Stringer.
func (p Base64Payload) String() string { return string(p) }

// Len returns the number of characters in the payload.
func (p Base64Payload) Len() int { return len(p) }

// IsEmpty reports whether the payload holds no characters.
func (p Base64Payload) IsEmpty() bool { return p == "" }
