package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tsatke/luafront"
	"go.uber.org/zap"
)

var (
	// Version can be set with the Go linker.
	Version string = "master"
	// AppName is the name of this app, as displayed in the help
	// text of the root command.
	AppName = "luafront"
)

var (
	// fs is the file system that source files are read from.
	fs afero.Fs = afero.NewOsFs()
	// cfg holds the flags, which can also be set with LUAFRONT_* environment
	// variables.
	cfg = viper.New()
)

var (
	rootCmd = &cobra.Command{
		Use:           AppName,
		Short:         "Tokenize and parse Lua source files",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	tokensCmd = &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a file, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frontend, sync, err := newFrontend()
			if err != nil {
				return err
			}
			defer sync()

			tokens, err := frontend.TokenizeFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, tk := range tokens {
				_, _ = fmt.Fprintln(out, luafront.FormatToken(tk))
			}
			return nil
		},
	}

	astCmd = &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the syntax tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frontend, sync, err := newFrontend()
			if err != nil {
				return err
			}
			defer sync()

			program, err := frontend.ParseFile(args[0])
			if err != nil {
				return err
			}
			return luafront.Print(cmd.OutOrStdout(), program)
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Bool("comments", false, "include comments in the token output")
	flags.Bool("decode-escapes", false, "decode escape sequences of quoted strings")
	flags.BoolP("verbose", "v", false, "log diagnostics to stderr")

	if err := cfg.BindPFlags(flags); err != nil {
		panic(err)
	}
	cfg.SetEnvPrefix("LUAFRONT")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	rootCmd.AddCommand(tokensCmd, astCmd)
}

// newFrontend creates a frontend from the current configuration. The
// returned function flushes the logger.
func newFrontend() (luafront.Frontend, func(), error) {
	log := zap.NewNop()
	if cfg.GetBool("verbose") {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return luafront.Frontend{}, nil, fmt.Errorf("create logger: %w", err)
		}
	}

	frontend := luafront.New(
		luafront.WithFs(fs),
		luafront.WithLogger(log),
		luafront.WithComments(cfg.GetBool("comments")),
		luafront.WithEscapeDecoding(cfg.GetBool("decode-escapes")),
	)
	return frontend, func() { _ = log.Sync() }, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
