package adapters

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"qmk-keymap/internal/ports"
	"qmk-keymap/internal/types"
)

const defaultTextColumns = 10

// OutputFileAdapter writes resolved keymaps to Path, or to Stdout when
// Path is empty or "-".
type OutputFileAdapter struct {
	Path    string
	Stdout  io.Writer
	Columns int
}

func NewOutputFileAdapter(path string) OutputFileAdapter {
	return OutputFileAdapter{Path: path, Stdout: os.Stdout, Columns: defaultTextColumns}
}

func (a OutputFileAdapter) WriteResolvedKeymap(keymap types.ResolvedKeymap, format types.OutputFormat) error {
	content, err := a.render(keymap, format)
	if err != nil {
		return err
	}
	if a.Path == "" || a.Path == "-" {
		out := a.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := out.Write(content); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write resolved keymap").
				WithCause(err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(a.Path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	if err := os.WriteFile(a.Path, content, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write resolved keymap: " + a.Path).
			WithCause(err)
	}
	return nil
}

func (a OutputFileAdapter) render(keymap types.ResolvedKeymap, format types.OutputFormat) ([]byte, error) {
	switch format {
	case "", types.OutputFormatText:
		return []byte(renderText(keymap, a.Columns)), nil
	case types.OutputFormatYAML:
		data, err := yaml.Marshal(keymap)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode resolved keymap yaml").
				WithCause(err)
		}
		return data, nil
	case types.OutputFormatJSON:
		data, err := json.MarshalIndent(keymap, "", "  ")
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode resolved keymap json").
				WithCause(err)
		}
		return append(data, '\n'), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown output format: %s", format))
	}
}

// renderText lays each layer out in rows of columns cells, padded to the
// widest label of that layer.
func renderText(keymap types.ResolvedKeymap, columns int) string {
	if columns <= 0 {
		columns = defaultTextColumns
	}
	var b strings.Builder
	fmt.Fprintf(&b, "keyboard: %s\nkeymap: %s\nlayout: %s\n", keymap.Keyboard, keymap.Keymap, keymap.Layout)
	for l, layer := range keymap.Layers {
		fmt.Fprintf(&b, "\nlayer %d:\n", l)
		width := 0
		for _, label := range layer {
			width = max(width, len([]rune(label)))
		}
		for start := 0; start < len(layer); start += columns {
			end := min(start+columns, len(layer))
			cells := make([]string, 0, end-start)
			for _, label := range layer[start:end] {
				cells = append(cells, label+strings.Repeat(" ", width-len([]rune(label))))
			}
			b.WriteString("  " + strings.TrimRight(strings.Join(cells, " | "), " ") + "\n")
		}
	}
	return b.String()
}

var _ ports.OutputPort = OutputFileAdapter{}
