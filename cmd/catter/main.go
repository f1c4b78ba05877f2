package main

import (
	"fmt"
	"io"
	"os"

	apppkg "github.com/kk-code-lab/catter/internal/app"
	"github.com/kk-code-lab/catter/internal/config"
	"github.com/kk-code-lab/catter/internal/logging"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const longHelp = `Preview FILE(s) in the terminal.

Files are concatenated in the order given. Files that cannot be read as
text are left out of the output. When the text is taller than the terminal
an interactive pager opens on the alternate screen:

    j, Down    next page
    k, Up      previous page
    q          quit

Options are only recognized before the first FILE.

Defaults for -e and -o, the tab width, and an optional debug log file can be
set in $XDG_CONFIG_HOME/catter/config.toml (or the file named by
$CATTER_CONFIG or --config).`

const examples = `  catter notes.txt          print notes.txt, or page it if it is long
  catter -n a.txt b.txt     print the total number of lines
  catter -e server.log      open the pager on the last page
  catter -o novel.txt       print everything without paging`

var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type options struct {
	flags      config.Flags
	configPath string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "catter [OPTION]... [FILE]...",
		Short:         "Preview text files in the terminal",
		Long:          longHelp,
		Example:       examples,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return run(cmd.OutOrStdout(), opts, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.BoolVarP(&opts.flags.LineCountOnly, "count", "n", false, "print the line count only")
	flags.BoolVarP(&opts.flags.StartAtEnd, "end", "e", false, "start the pager on the last page")
	flags.BoolVarP(&opts.flags.ForceInline, "inline", "o", false, "print long text to standard output instead of paging")
	flags.StringVar(&opts.configPath, "config", "", "config file path")
	flags.StringVar(&opts.flags.LogFile, "log-file", "", "write a debug log to this file")
	flags.StringVar(&opts.flags.LogLevel, "log-level", "", "log level (debug, info, warn, error)")

	return cmd
}

func run(stdout io.Writer, opts options, paths []string) error {
	fileCfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logCfg := config.ResolveLog(fileCfg, opts.flags)
	log, err := logging.New(logging.Config{
		Level:      logCfg.Level,
		OutputPath: logCfg.File,
		MaxSize:    logCfg.MaxSizeMB,
		MaxBackups: logCfg.MaxBackups,
		MaxAge:     logCfg.MaxAgeDays,
		Compress:   logCfg.Compress,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	viewerCfg := config.Resolve(fileCfg, opts.flags, stdoutIsTerminal())
	return apppkg.NewApplication(viewerCfg, log, stdout).Run(paths)
}

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "catter: %v\n", err)
		os.Exit(1)
	}
}
