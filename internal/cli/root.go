package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"qmk-keymap/internal/app"
	"qmk-keymap/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "QMK_KEYMAP"

type RootConfig struct {
	ConfigFile string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg(errorMessage(err))
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "qmk-keymap",
		Short:         "Resolve QMK keymaps into human-readable key labels",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	// The remaining flags are read through viper, not the struct.
	flags.String("log-level", "info", "Log level")
	// Keycode flags are read back per subcommand by resolveKeycodeOptions.
	flags.String("keycodes-dir", "", "Directory of keycode .hjson documents")
	flags.String("qmk-home", "", "QMK firmware checkout (keycodes default to <qmk-home>/data/constants/keycodes)")
	flags.Bool("strict-duplicates", false, "Fail when an identifier is rebound to a different keycode")
	flags.String("max-version", "", "Skip keycode documents with a newer version in their name")
	flags.Int("workers", 4, "Keycode documents parsed in parallel")
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("keycodes_dir", flags.Lookup("keycodes-dir"))
	_ = viper.BindPFlag("qmk_home", flags.Lookup("qmk-home"))
	_ = viper.BindPFlag("strict_duplicates", flags.Lookup("strict-duplicates"))
	_ = viper.BindPFlag("max_version", flags.Lookup("max-version"))
	_ = viper.BindPFlag("workers", flags.Lookup("workers"))
	_ = viper.BindEnv("qmk_home", envPrefix+"_QMK_HOME", "QMK_HOME")

	cmd.AddCommand(newResolveCommand())
	cmd.AddCommand(newLookupCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newInspectCommand())
	return cmd
}

func initConfig(configFile string) error {
	_ = godotenv.Load()
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("qmk-keymap")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/qmk-keymap")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

// setupLogging writes logs to stderr so resolved output on stdout stays
// machine readable.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.DefaultContextLogger = &log.Logger
	switch level {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

type keycodeOptions struct {
	Dir           string
	DuplicateMode types.DuplicateMode
	MaxVersion    string
	Workers       int
}

// resolveKeycodeOptions reads the root's keycode flags, falling back to
// config and environment.
func resolveKeycodeOptions(cmd *cobra.Command) keycodeOptions {
	opts := keycodeOptions{
		Dir:           resolveString(cmd, stringFlag(cmd, "keycodes-dir"), "keycodes_dir", "keycodes-dir"),
		DuplicateMode: types.DuplicateModeLastWriteWins,
		MaxVersion:    resolveString(cmd, stringFlag(cmd, "max-version"), "max_version", "max-version"),
		Workers:       resolveInt(cmd, intFlag(cmd, "workers"), "workers", "workers"),
	}
	if strings.TrimSpace(opts.Dir) == "" {
		if home := resolveString(cmd, stringFlag(cmd, "qmk-home"), "qmk_home", "qmk-home"); strings.TrimSpace(home) != "" {
			opts.Dir = filepath.Join(home, "data", "constants", "keycodes")
		}
	}
	if resolveBool(cmd, boolFlag(cmd, "strict-duplicates"), "strict_duplicates", "strict-duplicates") {
		opts.DuplicateMode = types.DuplicateModeReject
	}
	return opts
}

func newAppService(opts keycodeOptions) app.Service {
	return app.NewServiceWithOptions(app.ServiceOptions{
		Workers:    opts.Workers,
		MaxVersion: opts.MaxVersion,
	})
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeNotFound:
		return 3
	case errbuilder.CodeInternal:
		return 4
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
