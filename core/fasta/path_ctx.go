// core/fasta/path_ctx.go
package fasta

import "context"

// StreamPathCtx opens path ("-" for stdin; compressed input transparent)
// and streams its records through emit. Open errors are returned before
// any record is emitted.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}
