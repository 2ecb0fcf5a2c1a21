// Package transfer turns decoded bytes into a file on disk.
//
// A Boundary writes into a temporary file inside its output directory and
// renames it to the requested name once every byte is on disk, so a
// partially written artifact is never visible under its final name. The
// temporary file is closed and removed on every path, including failures.
//
// Usage:
//
//	b := transfer.New(outDir, logger, transfer.WithOverwrite(true))
//	art, err := b.Materialize(ctx, data, "report.pdf", "")
//	if err != nil {
//		return err
//	}
//	fmt.Println(art.Path, art.Size, art.SHA256)
package transfer
