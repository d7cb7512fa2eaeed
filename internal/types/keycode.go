package types

// KeycodeEntry is one keycode definition from a keycode document.
//
// Group is informational only.  Label may be absent or blank, in which
// case the keycode resolves to its own identifier.
type KeycodeEntry struct {
	Key     string   `json:"key" yaml:"key"`
	Group   string   `json:"group,omitempty" yaml:"group,omitempty"`
	Label   string   `json:"label,omitempty" yaml:"label,omitempty"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// KeycodeFile is the top-level structure of a keycode .hjson document.
// Keycodes maps a document-local name (QMK uses the hex code, e.g.
// "0x0004") to an entry.  A nil map means the field was missing.
type KeycodeFile struct {
	Keycodes map[string]KeycodeEntry `json:"keycodes"`
}

// KeycodeDocument is a keycode file as read from disk.  When Err is set
// the document failed to parse and File is empty.
type KeycodeDocument struct {
	Path string
	File KeycodeFile
	Err  error
}

// SkippedDocument records a keycode document left out of the table.
type SkippedDocument struct {
	Path   string
	Reason string
}
