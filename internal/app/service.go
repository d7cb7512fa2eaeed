package app

import (
	"qmk-keymap/internal/adapters"
	"qmk-keymap/internal/ports"
)

type Service struct {
	KeymapLoader  ports.KeymapLoaderPort
	KeycodeSource ports.KeycodeSourcePort
	Output        func(path string) ports.OutputPort
}

// ServiceOptions tunes the keycode source.
type ServiceOptions struct {
	Workers    int
	MaxVersion string
}

func NewService() Service {
	return NewServiceWithOptions(ServiceOptions{})
}

func NewServiceWithOptions(opts ServiceOptions) Service {
	return Service{
		KeymapLoader:  adapters.NewKeymapFileAdapter(),
		KeycodeSource: adapters.NewKeycodeDirAdapter(opts.Workers, opts.MaxVersion),
		Output: func(path string) ports.OutputPort {
			return adapters.NewOutputFileAdapter(path)
		},
	}
}
