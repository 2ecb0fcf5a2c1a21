package cmd

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/docconvert/internal/cli"
	"github.com/dmitrijs2005/docconvert/internal/models"
	"github.com/dmitrijs2005/docconvert/internal/preview"
)

// NewInspectCommand returns the command that describes and previews a file
// without encoding it.
func NewInspectCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show a document's details, whether it can be encoded, and a preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := cli.Inspect(cmd.Context(), preview.NewRegistry(), args[0], env.Config.MaxFileSize)
			if err != nil {
				return err
			}
			printInspection(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func printInspection(w io.Writer, res *cli.Inspection) {
	d := res.Descriptor
	fmt.Fprintln(w, d.Name)
	fmt.Fprintf(w, "  %-10s%s\n", "Type:", d.DisplayType())
	fmt.Fprintf(w, "  %-10s%s\n", "Size:", models.FormatFileSize(d.SizeBytes))
	fmt.Fprintf(w, "  %-10s%s\n", "Modified:", d.LastModified().Local().Format(time.DateTime))

	if res.Accepted != nil {
		fmt.Fprintf(w, "  %-10s%s\n", "Encode:", cli.Notification(res.Accepted))
	} else {
		fmt.Fprintf(w, "  %-10s%s\n", "Encode:", "supported")
	}

	fmt.Fprintln(w)
	if res.PreviewErr != nil {
		fmt.Fprintln(w, cli.Notification(res.PreviewErr))
		return
	}

	doc := res.Document
	if doc.Title != "" {
		fmt.Fprintln(w, "# "+doc.Title)
	}
	fmt.Fprintln(w, doc.Text)

	keys := make([]string, 0, len(doc.Properties))
	for k := range doc.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %s\n", k, doc.Properties[k])
	}
}
