package types

// ResolvedKeymap is a keymap whose layers hold display labels instead of
// keycode identifiers.
type ResolvedKeymap struct {
	Keyboard string     `json:"keyboard" yaml:"keyboard"`
	Keymap   string     `json:"keymap" yaml:"keymap"`
	Layout   string     `json:"layout" yaml:"layout"`
	Layers   [][]string `json:"layers" yaml:"layers"`
}
