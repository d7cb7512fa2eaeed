package ports

import (
	"context"

	"qmk-keymap/internal/types"
)

// KeycodeSourcePort reads keycode documents from a directory.
//
// Documents that fail to parse are returned with Err set so the caller can
// skip them; only listing or read failures are returned as an error.
type KeycodeSourcePort interface {
	// LoadDocuments returns the directory's keycode documents in merge
	// order, followed by the supplementary document when it exists.
	LoadDocuments(ctx context.Context, dir string) ([]types.KeycodeDocument, error)
}
