package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"qmk-keymap/internal/types"
)

// DuplicatePolicy decides what happens when an identifier that is already
// in the keycode table is bound again by a later entry.
type DuplicatePolicy struct {
	Mode types.DuplicateMode
}

func NewDuplicatePolicy(mode types.DuplicateMode) (DuplicatePolicy, error) {
	switch types.DuplicateMode(strings.ToLower(string(mode))) {
	case "", types.DuplicateModeLastWriteWins:
		return DuplicatePolicy{Mode: types.DuplicateModeLastWriteWins}, nil
	case types.DuplicateModeReject:
		return DuplicatePolicy{Mode: types.DuplicateModeReject}, nil
	default:
		return DuplicatePolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown duplicate mode: %s", mode))
	}
}

// Check returns an error when incoming must not replace existing for
// identifier.  Rebinding an identifier to an entry with the same canonical
// key is always allowed.
func (p DuplicatePolicy) Check(identifier string, existing types.KeycodeEntry, incoming types.KeycodeEntry, source string) error {
	if p.Mode != types.DuplicateModeReject {
		return nil
	}
	if strings.TrimSpace(existing.Key) == strings.TrimSpace(incoming.Key) {
		return nil
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeAlreadyExists).
		WithMsg(fmt.Sprintf("duplicate keycode identifier %s: bound to %s, redefined as %s in %s",
			identifier, existing.Key, incoming.Key, source))
}
