package types

// Keymap is a single firmware keymap as stored in a keymap.json file.
//
// Every layer is expected to hold the same number of keycodes as layer 0;
// core.ValidateLayers enforces this before resolution.
type Keymap struct {
	Keyboard string     `json:"keyboard" yaml:"keyboard"`
	Keymap   string     `json:"keymap" yaml:"keymap"`
	Layout   string     `json:"layout" yaml:"layout"`
	Layers   [][]string `json:"layers" yaml:"layers"`
}
