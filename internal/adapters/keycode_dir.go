package adapters

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/hjson/hjson-go/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"qmk-keymap/internal/ports"
	"qmk-keymap/internal/shared"
	"qmk-keymap/internal/types"
)

const (
	keycodeDocumentExt = ".hjson"

	// SupplementaryKeycodeDocument is merged after the directory's own
	// documents, so its entries win on collision.
	SupplementaryKeycodeDocument = "extras/keycodes_us_international_0.0.1.hjson"

	defaultKeycodeWorkers = 4
)

// KeycodeDirAdapter reads QMK keycode .hjson documents from a single
// directory (non-recursive) plus the supplementary document.
type KeycodeDirAdapter struct {
	// Workers bounds how many documents are read and parsed at once.
	Workers int

	// MaxVersion, when set, skips documents whose file name carries a
	// greater version.
	MaxVersion string
}

func NewKeycodeDirAdapter(workers int, maxVersion string) KeycodeDirAdapter {
	if workers <= 0 {
		workers = defaultKeycodeWorkers
	}
	return KeycodeDirAdapter{Workers: workers, MaxVersion: maxVersion}
}

func (a KeycodeDirAdapter) LoadDocuments(ctx context.Context, dir string) ([]types.KeycodeDocument, error) {
	if shared.IsBlank(dir) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("keycode directory is empty")
	}
	ceiling, err := newVersionCeiling(a.MaxVersion)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list keycode directory: " + dir).
			WithCause(err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != keycodeDocumentExt {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !ceiling.allows(path) {
			log.Debug().Str("path", path).Str("max_version", a.MaxVersion).Msg("keycode document above max version")
			continue
		}
		paths = append(paths, path)
	}

	extra := filepath.Join(dir, SupplementaryKeycodeDocument)
	switch info, err := os.Stat(extra); {
	case err == nil && info.Mode().IsRegular():
		if ceiling.allows(extra) {
			paths = append(paths, extra)
		}
	case err == nil:
		log.Debug().Str("path", extra).Msg("supplementary keycode document is not a regular file")
	case errors.Is(err, fs.ErrNotExist):
		log.Debug().Str("path", extra).Msg("supplementary keycode document not present")
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat keycode document: " + extra).
			WithCause(err)
	}

	return a.readAll(ctx, paths)
}

// readAll reads and parses paths concurrently.  The result keeps the order
// of paths regardless of completion order.
func (a KeycodeDirAdapter) readAll(ctx context.Context, paths []string) ([]types.KeycodeDocument, error) {
	docs := make([]types.KeycodeDocument, len(paths))
	workers := a.Workers
	if workers <= 0 {
		workers = defaultKeycodeWorkers
	}
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, path := range paths {
		log.Info().Str("path", path).Msg("reading keycode document")
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			doc, err := readKeycodeDocument(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func readKeycodeDocument(path string) (types.KeycodeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.KeycodeDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read keycode document: " + path).
			WithCause(err)
	}
	file, err := parseKeycodeFile(data)
	if err != nil {
		return types.KeycodeDocument{Path: path, Err: err}, nil
	}
	return types.KeycodeDocument{Path: path, File: file}, nil
}

// parseKeycodeFile decodes an hjson keycode document.  The document must
// have a keycodes field and every entry must name its key.
func parseKeycodeFile(data []byte) (types.KeycodeFile, error) {
	var file types.KeycodeFile
	if err := hjson.Unmarshal(data, &file); err != nil {
		return types.KeycodeFile{}, err
	}
	if file.Keycodes == nil {
		return types.KeycodeFile{}, errors.New("missing field `keycodes`")
	}
	names := make([]string, 0, len(file.Keycodes))
	for name := range file.Keycodes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if shared.IsBlank(file.Keycodes[name].Key) {
			return types.KeycodeFile{}, fmt.Errorf("keycode %s: missing field `key`", name)
		}
	}
	return file, nil
}

var _ ports.KeycodeSourcePort = KeycodeDirAdapter{}
