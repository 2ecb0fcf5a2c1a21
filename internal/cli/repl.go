package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/docconvert/internal/models"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Mode() models.ConversionMode
	SwitchMode(ctx context.Context, args []string) error
	Open(ctx context.Context, args []string) error
	Paste(ctx context.Context) error
	Save(ctx context.Context, args []string) error
	Show(ctx context.Context) error
	Write(ctx context.Context, args []string) error
	Info(ctx context.Context) error
	Preview(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
}

const (
	helpEncode = "Available commands: mode [encode|decode], open <path>, show, write <path>, info, preview, edit, help, exit"
	helpDecode = "Available commands: mode [encode|decode], paste, save <name>, show, write <path>, preview [name], edit [name], help, exit"
)

// runREPL starts a simple read–eval–print loop for the docconvert CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt comes from promptFn; an empty prompt is not printed. Commands:
//
//	Both modes:
//	  - help               show available commands
//	  - mode [name]        show or switch the mode; switching clears the payload
//	  - show               print the payload preview
//	  - write <path>       write the whole payload to a file
//	  - preview [name]     render the document
//	  - edit [name]        edit the document in $EDITOR and re-encode it
//	  - exit | quit        leave the program
//
//	Encode mode:
//	  - open <path>        encode a .doc, .docx, .pdf or .txt file
//	  - info               show the encoded file's details
//
//	Decode mode:
//	  - paste              read a base64 string (empty line to finish)
//	  - save <name>        decode the payload into the output directory
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		if p := promptFn(); p != "" {
			fmt.Fprint(out, p)
		}

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.Mode() == models.ModeDecode {
				fmt.Fprintln(out, helpDecode)
			} else {
				fmt.Fprintln(out, helpEncode)
			}

		case "mode":
			_ = a.SwitchMode(ctx, args)

		case "open":
			_ = a.Open(ctx, args)

		case "paste":
			_ = a.Paste(ctx)

		case "save":
			_ = a.Save(ctx, args)

		case "show":
			_ = a.Show(ctx)

		case "write":
			_ = a.Write(ctx, args)

		case "info":
			_ = a.Info(ctx)

		case "preview":
			_ = a.Preview(ctx, args)

		case "edit":
			_ = a.Edit(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
