package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"qmk-keymap/internal/app"
)

type validateOptions struct {
	Keymap string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a keymap file and its layer shape",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Keymap, "keymap", "", "Keymap JSON path")
	return cmd
}

func runValidate(cmd *cobra.Command, opts validateOptions) error {
	service := app.NewService()
	result, err := service.Validate(app.ValidateRequest{
		KeymapPath: resolveString(cmd, opts.Keymap, "keymap", "keymap"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("validated: %s/%s (%s): %d layers x %d keys\n",
		result.Keyboard, result.Keymap, result.Layout, result.Layers, result.Keys)
	return nil
}
