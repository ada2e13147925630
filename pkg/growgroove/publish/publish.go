// Package publish writes the exported pages to a local directory or an
// SFTP server.
package publish

import (
	"context"
	"fmt"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/export"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/tabs"
	"go.uber.org/zap"
)

// Open returns the Target for a parsed destination.
func Open(ctx context.Context, dest Destination, opts SFTPOptions, logger *zap.Logger) (Target, error) {
	if !dest.SFTP {
		return &DirTarget{Dir: dest.Dir}, nil
	}
	return DialSFTP(ctx, dest, opts, logger)
}

// Documents returns every published file name with its Markdown, index first.
func Documents() ([]string, map[string]string, error) {
	names := []string{"index.md"}
	docs := map[string]string{"index.md": export.Index()}
	for _, id := range tabs.IDs() {
		md, err := export.Markdown(id)
		if err != nil {
			return nil, nil, err
		}
		name := export.FileName(id)
		names = append(names, name)
		docs[name] = md
	}
	return names, docs, nil
}

// Options tune a Publish run. The zero value writes UTF-8 without logging.
type Options struct {
	// Charset is an IANA charset name; empty keeps UTF-8.
	Charset string
	Logger  *zap.Logger
	// OnWrite is called after each file lands on the target.
	OnWrite func(name string, done, total int)
}

// Publish encodes every document and writes it to target. All documents are
// encoded before the first write so an unrepresentable character never
// leaves a partial site behind. It returns the names written.
func Publish(ctx context.Context, target Target, opts Options) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	names, docs, err := Documents()
	if err != nil {
		return nil, err
	}

	encoded := make(map[string][]byte, len(names))
	for _, name := range names {
		data, err := Encode(docs[name], opts.Charset)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		encoded[name] = data
	}

	written := make([]string, 0, len(names))
	for _, name := range names {
		if err := target.WriteFile(ctx, name, encoded[name]); err != nil {
			return written, err
		}
		logger.Info("published", zap.String("file", name), zap.Int("bytes", len(encoded[name])))
		written = append(written, name)
		if opts.OnWrite != nil {
			opts.OnWrite(name, len(written), len(names))
		}
	}
	return written, nil
}
