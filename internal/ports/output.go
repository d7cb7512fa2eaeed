package ports

import "qmk-keymap/internal/types"

type OutputPort interface {
	WriteResolvedKeymap(keymap types.ResolvedKeymap, format types.OutputFormat) error
}
