// Package pipeline holds the pure core of the base64 document round trip:
// the validator that gates files and base64 text, the encoder that turns bytes
// into a payload and the decoder that recovers them.
//
// Nothing in this package touches session state or user-facing output; the
// interactive client wires these functions to terminal input, files on disk
// and notifications.
package pipeline
