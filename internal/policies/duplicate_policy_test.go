package policies

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qmk-keymap/internal/types"
)

func TestNewDuplicatePolicyDefaultsToLastWriteWins(t *testing.T) {
	policy, err := NewDuplicatePolicy("")
	require.NoError(t, err)
	if diff := cmp.Diff(types.DuplicateModeLastWriteWins, policy.Mode); diff != "" {
		t.Fatalf("unexpected mode (-want +got):\n%s", diff)
	}
}

func TestNewDuplicatePolicyRejectsUnknownMode(t *testing.T) {
	_, err := NewDuplicatePolicy("first-write-wins")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestDuplicatePolicyCheck(t *testing.T) {
	a := types.KeycodeEntry{Key: "KC_A", Label: "A"}
	aRelabelled := types.KeycodeEntry{Key: "KC_A", Label: "a"}
	b := types.KeycodeEntry{Key: "KC_B", Label: "B"}

	tests := []struct {
		name     string
		mode     types.DuplicateMode
		incoming types.KeycodeEntry
		wantErr  bool
	}{
		{name: "last write wins accepts other key", mode: types.DuplicateModeLastWriteWins, incoming: b},
		{name: "reject accepts same key", mode: types.DuplicateModeReject, incoming: aRelabelled},
		{name: "reject refuses other key", mode: types.DuplicateModeReject, incoming: b, wantErr: true},
		{name: "reject ignores surrounding whitespace", mode: types.DuplicateModeReject, incoming: types.KeycodeEntry{Key: " KC_A ", Label: "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := NewDuplicatePolicy(tt.mode)
			require.NoError(t, err)
			err = policy.Check("A", a, tt.incoming, "keycodes_0.0.1.hjson")
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
			assert.Contains(t, err.Error(), "duplicate keycode identifier A")
		})
	}
}
