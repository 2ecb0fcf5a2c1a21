// Package models defines the value types shared by the conversion pipeline:
// the file descriptor extracted at encode time, the base64 payload, the
// conversion mode and the document categories accepted by the converter.
package models
