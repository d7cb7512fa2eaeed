package adapters

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
)

// keycodeVersionPattern matches the version segment of QMK keycode file
// names such as keycodes_0.0.3_quantum.hjson.
var keycodeVersionPattern = regexp.MustCompile(`_(\d+\.\d+\.\d+)(?:_|\.hjson$)`)

// versionCeiling filters keycode documents by the version embedded in
// their file name.  The zero value accepts every document.
type versionCeiling struct {
	max *pep440.Version
}

func newVersionCeiling(value string) (versionCeiling, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return versionCeiling{}, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return versionCeiling{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid keycode max version: " + value).
			WithCause(err)
	}
	return versionCeiling{max: &parsed}, nil
}

// documentVersion extracts the version from a keycode document path.
func documentVersion(path string) (pep440.Version, bool) {
	match := keycodeVersionPattern.FindStringSubmatch(filepath.Base(path))
	if match == nil {
		return pep440.Version{}, false
	}
	parsed, err := pep440.Parse(match[1])
	if err != nil {
		return pep440.Version{}, false
	}
	return parsed, true
}

// allows reports whether the document at path is at or below the ceiling.
// Documents without a version in their name are always allowed.
func (c versionCeiling) allows(path string) bool {
	if c.max == nil {
		return true
	}
	version, ok := documentVersion(path)
	if !ok {
		return true
	}
	return version.Compare(*c.max) <= 0
}
