package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"qmk-keymap/internal/core"
)

func (s Service) Validate(req ValidateRequest) (ValidateResult, error) {
	keymapPath := strings.TrimSpace(req.KeymapPath)
	if keymapPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("keymap path is required")
	}
	keymap, err := s.KeymapLoader.LoadKeymap(keymapPath)
	if err != nil {
		return ValidateResult{}, err
	}
	if err := core.ValidateLayers(keymap); err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		Keyboard: keymap.Keyboard,
		Keymap:   keymap.Keymap,
		Layout:   keymap.Layout,
		Layers:   len(keymap.Layers),
		Keys:     len(keymap.Layers[0]),
	}, nil
}
