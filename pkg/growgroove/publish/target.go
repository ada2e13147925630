package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// TransferError describes a failed write to a destination.
type TransferError struct {
	Path      string
	Operation string
	Err       error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("%s failed - %s: %v", e.Operation, e.Path, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// Target receives published documents.
type Target interface {
	WriteFile(ctx context.Context, name string, data []byte) error
	Close() error
}

// DirTarget writes documents into a local directory, creating it on first
// write.
type DirTarget struct {
	Dir string
}

func (d *DirTarget) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full := filepath.Join(d.Dir, name)
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return &TransferError{Path: d.Dir, Operation: "create directory", Err: err}
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return &TransferError{Path: full, Operation: "write", Err: err}
	}
	return nil
}

func (d *DirTarget) Close() error {
	return nil
}
