// Package cli provides the interactive docconvert client.
//
// It wires configuration, the session controller, the transfer boundary and
// the preview registry behind a read–eval–print loop. In encode mode the user
// opens a document and gets its base64 payload; in decode mode the user pastes
// a payload and saves it back to a file.
//
// Key features:
//   - mode switching that clears the live payload
//   - open / paste with the original notification messages
//   - payload preview, full payload export, file details
//   - document preview and editing through $EDITOR
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
