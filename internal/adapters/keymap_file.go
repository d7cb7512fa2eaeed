package adapters

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/tidwall/gjson"

	"qmk-keymap/internal/ports"
	"qmk-keymap/internal/types"
)

var keymapStringFields = []string{"keyboard", "keymap", "layout"}

type KeymapFileAdapter struct{}

func NewKeymapFileAdapter() KeymapFileAdapter {
	return KeymapFileAdapter{}
}

// LoadKeymap reads a QMK keymap.json file.  A missing file is reported as
// NotFound, any other filesystem failure as Internal and a document that
// is not valid JSON or lacks a required field as InvalidArgument.
func (a KeymapFileAdapter) LoadKeymap(path string) (types.Keymap, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.Keymap{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("keymap file not found: " + path).
				WithCause(err)
		}
		return types.Keymap{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat keymap file: " + path).
			WithCause(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Keymap{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read keymap file: " + path).
			WithCause(err)
	}
	return parseKeymap(data)
}

func parseKeymap(data []byte) (types.Keymap, error) {
	var keymap types.Keymap
	if err := json.Unmarshal(data, &keymap); err != nil {
		return types.Keymap{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse keymap json").
			WithCause(err)
	}
	if err := checkKeymapFields(data); err != nil {
		return types.Keymap{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse keymap json").
			WithCause(err)
	}
	return keymap, nil
}

// checkKeymapFields rejects documents where a required field is missing or
// null, which encoding/json would otherwise decode as a zero value.
func checkKeymapFields(data []byte) error {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return errors.New("keymap document must be an object")
	}
	for _, name := range keymapStringFields {
		field := root.Get(name)
		if !field.Exists() {
			return fmt.Errorf("missing field `%s`", name)
		}
		if field.Type != gjson.String {
			return fmt.Errorf("field `%s` must be a string", name)
		}
	}
	layers := root.Get("layers")
	if !layers.Exists() {
		return errors.New("missing field `layers`")
	}
	if !layers.IsArray() {
		return errors.New("field `layers` must be an array of arrays")
	}
	for l, layer := range layers.Array() {
		if !layer.IsArray() {
			return fmt.Errorf("layer %d must be an array", l)
		}
		for i, cell := range layer.Array() {
			if cell.Type != gjson.String {
				return fmt.Errorf("layer %d key %d must be a string", l, i)
			}
		}
	}
	return nil
}

var _ ports.KeymapLoaderPort = KeymapFileAdapter{}
