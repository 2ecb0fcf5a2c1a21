package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/docconvert/internal/cli"
	"github.com/dmitrijs2005/docconvert/internal/models"
	"github.com/dmitrijs2005/docconvert/internal/transfer"
)

// NewDecodeCommand returns the command that decodes one payload into a file.
func NewDecodeCommand(env *Env) *cobra.Command {
	var (
		input    string
		output   string
		mimeType string
	)

	cmd := &cobra.Command{
		Use:   "decode -o <file>",
		Short: "Decode a base64 payload back into a document",
		Long: `Decode a standard base64 payload and write the bytes to --output.

The payload is read from --input, or stdin when --input is "-" or empty. A
single trailing newline and a data URI prefix are accepted. A bare output name
is written to the configured output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var r io.Reader = cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			payload, err := cli.ReadPayload(r)
			if err != nil {
				env.Logger.Warn(ctx, "reading payload failed", "input", input, "error", err)
				return errors.New(cli.Notification(err))
			}

			dir, name := filepath.Split(filepath.Clean(output))
			if dir == "" {
				dir = env.Config.OutputDir
			}
			b := transfer.New(dir, env.Logger, transfer.WithOverwrite(env.Config.Overwrite))

			art, err := cli.DecodeToFile(ctx, b, payload, name, mimeType)
			if err != nil {
				env.Logger.Error(ctx, "decode failed", "output", output, "error", err)
				return errors.New(cli.Notification(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s, %s)\n",
				art.Path, models.FormatFileSize(art.Size), art.ContentType)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "file holding the payload (default stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "name of the decoded file")
	cmd.Flags().StringVar(&mimeType, "mime", "", "content type recorded for the file (default application/octet-stream)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
