package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"qmk-keymap/internal/app"
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup KEYCODE...",
		Short: "Print the display label of individual keycodes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), cmd, args)
		},
	}
}

func runLookup(ctx context.Context, cmd *cobra.Command, identifiers []string) error {
	keycodes := resolveKeycodeOptions(cmd)
	service := newAppService(keycodes)
	result, err := service.Lookup(ctx, app.LookupRequest{
		KeycodesDir:   keycodes.Dir,
		DuplicateMode: keycodes.DuplicateMode,
		Identifiers:   identifiers,
	})
	if err != nil {
		return err
	}
	for _, entry := range result.Entries {
		if !entry.Found {
			fmt.Printf("%s = %s (unknown)\n", entry.Identifier, entry.Label)
			continue
		}
		fmt.Printf("%s = %s (%s)\n", entry.Identifier, entry.Label, entry.Key)
	}
	return nil
}
