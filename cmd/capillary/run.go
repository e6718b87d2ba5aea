package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/aglyzov/capillary/bytedict"
	"github.com/aglyzov/capillary/dict"
	"github.com/aglyzov/capillary/internal/table"
	"github.com/aglyzov/capillary/replace"
)

var levels = []string{
	"debug",
	"info",
	"warn",
	"error",
}

func parseLevel(text string) (slog.Level, error) {
	switch text {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid verbosity level %q - must be one of: %s", text, strings.Join(levels, ", "))
	}
}

func parsePolicy(text string) (dict.Policy, error) {
	switch text {
	case "first":
		return dict.KeepFirst, nil
	case "last":
		return dict.Replace, nil
	default:
		return dict.KeepFirst, fmt.Errorf("invalid policy %q - must be one of: first, last", text)
	}
}

type replacer interface {
	Copy(dst io.Writer, src io.Reader) (replace.Stats, error)
}

func newReplacer(entries []table.Entry, policy dict.Policy, byBytes bool) replacer {
	if byBytes {
		d := bytedict.New[string](dict.WithPolicy(policy))
		for _, e := range entries {
			d.InsertString(e.From, e.To)
		}
		return replace.FromByteDict(d)
	}

	d := dict.New[rune, string](dict.WithPolicy(policy), dict.WithCapacity(4*len(entries)))
	for _, e := range entries {
		d.Insert([]rune(e.From), e.To)
	}
	return replace.FromDict(d)
}

// run executes the command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	app := &cli.Command{
		Name:      "capillary",
		Usage:     "streams files through a find-and-replace table",
		ArgsUsage: "[FILE...]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "table",
				Aliases:   []string{"t"},
				Usage:     "YAML replacement table: a mapping or a list of from/to entries",
				Required:  true,
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:  "bytes",
				Usage: "match bytes instead of UTF-8 runes",
			},
			&cli.StringFlag{
				Name:  "policy",
				Usage: "which replacement wins when the table repeats a key; value can be: first, last",
				Value: "first",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "print the replacement trie instead of processing input",
			},
			&cli.StringFlag{
				Name:  "verbosity",
				Usage: "specify the level of information that should be provided during runtime; value can be: " + strings.Join(levels, ", "),
				Value: "warn",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			lvl, err := parseLevel(cmd.String("verbosity"))
			if err != nil {
				return err
			}
			logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

			policy, err := parsePolicy(cmd.String("policy"))
			if err != nil {
				return err
			}

			entries, err := table.Load(cmd.String("table"))
			if err != nil {
				return fmt.Errorf("failed to load table: %w", err)
			}
			logger.Debug("table loaded", "path", cmd.String("table"), "entries", len(entries), "policy", policy)

			if cmd.Bool("dump") {
				d := dict.New[rune, string](dict.WithPolicy(policy))
				for _, e := range entries {
					d.Insert([]rune(e.From), e.To)
				}
				d.Dump(stdout)
				return nil
			}

			r := newReplacer(entries, policy, cmd.Bool("bytes"))

			files := cmd.Args().Slice()
			if len(files) == 0 {
				files = []string{"-"}
			}
			for _, name := range files {
				if err := process(logger, r, name, stdin, stdout); err != nil {
					return err
				}
			}
			return nil
		},
	}

	// keep urfave/cli from calling os.Exit on its own
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	if err := app.Run(context.Background(), args); err != nil {
		logger.Error(err.Error())
		return 1
	}
	return 0
}

func process(logger *slog.Logger, r replacer, name string, stdin io.Reader, stdout io.Writer) error {
	src := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	stats, err := r.Copy(stdout, src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	logger.Info("processed",
		"file", name,
		"parts", stats.Parts,
		"matches", stats.Matches,
		"written", stats.Written,
	)
	return nil
}
