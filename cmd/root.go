package cmd

import (
	"fmt"
	"os"

	"cwdclip/pkg/clipboard"
	"cwdclip/pkg/config"
	"cwdclip/pkg/errors"
	"cwdclip/pkg/logger"
	"cwdclip/pkg/pathres"

	"github.com/spf13/cobra"
)

const (
	unknownValue = "unknown"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

// newRootCmd builds the only command. Flag parsing is off: every argument,
// including ones that start with a dash, is a path fragment.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cwdclip [path]",
		Short: "Copy the current directory, or a path relative to it, to the clipboard",
		Long: `Copies the working directory to the X11 clipboard using xsel or xclip.
"." copies the working directory, ".." its parent, and any other argument
is joined to the working directory.`,
		Args:               maxOnePath,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:               runCopy,
	}
}

func maxOnePath(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.ValidationError(fmt.Sprintf("accepts at most one path, received %d", len(args)))
	}
	return nil
}

func runCopy(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)
	logger.Debug().
		Str("version", versionString()).
		Str("built", orUnknown(BuildTime)).
		Str("commit", orUnknown(GitCommit)).
		Msg("starting")

	cwd, err := pathres.Current()
	if err != nil {
		return err
	}
	target, err := pathres.Resolve(cwd, args)
	if err != nil {
		return err
	}
	logger.Debug().Str("cwd", cwd).Str("path", target).Msg("resolved path")

	writer, err := clipboard.Detect(cfg.SearchPath)
	if err != nil {
		return err
	}
	return writer.Write(cmd.Context(), target)
}

func Execute() {
	if err := run(os.Args[1:]); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

func run(args []string) error {
	c := newRootCmd()
	c.SetArgs(escapeArgs(args))
	return c.Execute()
}

// escapeArgs keeps cobra's hidden completion commands from claiming a path
// argument. "./name" joins to the same path as "name".
func escapeArgs(args []string) []string {
	escaped := append([]string{}, args...)
	if len(escaped) > 0 {
		switch escaped[0] {
		case cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			escaped[0] = "./" + escaped[0]
		}
	}
	return escaped
}

func versionString() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

func orUnknown(s string) string {
	if s == "" {
		return unknownValue
	}
	return s
}
