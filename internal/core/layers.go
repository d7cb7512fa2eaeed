package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"qmk-keymap/internal/types"
)

// ValidateLayers checks that the keymap has at least one layer and that
// every layer has as many keys as layer 0.
func ValidateLayers(keymap types.Keymap) error {
	if len(keymap.Layers) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("keymap has no layers")
	}
	width := len(keymap.Layers[0])
	for i, layer := range keymap.Layers[1:] {
		if len(layer) != width {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("layer %d has %d keys, expected %d", i+1, len(layer), width))
		}
	}
	return nil
}

// ResolveLayers maps every keycode of every layer to its display label.
// The result has the same shape as keymap.Layers.
func ResolveLayers(ctx context.Context, keymap types.Keymap, kb *KnowledgeBase) ([][]string, error) {
	if err := ValidateLayers(keymap); err != nil {
		return nil, err
	}
	width := len(keymap.Layers[0])
	grid := make([][]string, len(keymap.Layers))
	for l, layer := range keymap.Layers {
		row := make([]string, width)
		for i := 0; i < width; i++ {
			row[i] = kb.Label(layer[i])
			log.Ctx(ctx).Trace().
				Int("layer", l).
				Int("index", i).
				Str("keycode", layer[i]).
				Str("label", row[i]).
				Msg("keycode resolved")
		}
		grid[l] = row
	}
	return grid, nil
}

// ResolveKeymap resolves keymap and carries its metadata over.
func ResolveKeymap(ctx context.Context, keymap types.Keymap, kb *KnowledgeBase) (types.ResolvedKeymap, error) {
	layers, err := ResolveLayers(ctx, keymap, kb)
	if err != nil {
		return types.ResolvedKeymap{}, err
	}
	return types.ResolvedKeymap{
		Keyboard: keymap.Keyboard,
		Keymap:   keymap.Keymap,
		Layout:   keymap.Layout,
		Layers:   layers,
	}, nil
}
