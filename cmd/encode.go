package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/docconvert/internal/cli"
	"github.com/dmitrijs2005/docconvert/internal/models"
	"github.com/dmitrijs2005/docconvert/internal/transfer"
)

// NewEncodeCommand returns the command that encodes one file.
func NewEncodeCommand(env *Env) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "encode <file>",
		Short: "Encode a .doc, .docx, .pdf or .txt file as base64",
		Long: `Encode a document as standard base64 (padded, no line breaks).

The payload is printed to stdout unless --output names a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			payload, desc, err := cli.EncodeFile(ctx, args[0], env.Config.MaxFileSize)
			if err != nil {
				env.Logger.Error(ctx, "encode failed", "path", args[0], "error", err)
				return errors.New(cli.Notification(err))
			}
			env.Logger.Info(ctx, "file encoded", "name", desc.Name, "type", desc.MimeType, "chars", payload.Len())

			if output == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), payload)
				return err
			}

			dir, name := filepath.Split(filepath.Clean(output))
			if dir == "" {
				dir = "."
			}
			b := transfer.New(dir, env.Logger, transfer.WithOverwrite(env.Config.Overwrite))
			art, err := b.Materialize(ctx, []byte(payload), name, models.MimeText)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s (%s) -> %s, %d characters\n",
				desc.Name, models.FormatFileSize(desc.SizeBytes), art.Path, payload.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the payload to this file instead of stdout")
	return cmd
}
