package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"qmk-keymap/internal/app"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Summarise the keycode table built from a keycode directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd)
		},
	}
}

func runInspect(ctx context.Context, cmd *cobra.Command) error {
	keycodes := resolveKeycodeOptions(cmd)
	service := newAppService(keycodes)
	result, err := service.Inspect(ctx, app.InspectRequest{
		KeycodesDir:   keycodes.Dir,
		DuplicateMode: keycodes.DuplicateMode,
	})
	if err != nil {
		return err
	}

	fmt.Printf("documents loaded: %d\n", len(result.Stats.Documents))
	for _, path := range result.Stats.Documents {
		fmt.Printf("- %s\n", path)
	}
	fmt.Printf("documents skipped: %d\n", len(result.Stats.Skipped))
	for _, skipped := range result.Stats.Skipped {
		fmt.Printf("- %s: %s\n", skipped.Path, skipped.Reason)
	}
	fmt.Printf("identifiers: %d (from %d entries)\n", result.Stats.Identifiers, result.Stats.Entries)
	fmt.Println("groups:")
	for _, group := range result.Groups {
		fmt.Printf("- %s: %d keycodes\n", group.Name, group.Count)
	}
	return nil
}
