package ports

import "qmk-keymap/internal/types"

type KeymapLoaderPort interface {
	LoadKeymap(path string) (types.Keymap, error)
}
