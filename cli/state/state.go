/*
Package state contains CLI commands building a state trie from a YAML
state file and querying it.
*/
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/trielab/statetrie/pkg/config"
	"github.com/trielab/statetrie/pkg/trie"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errNoConfig = errors.New("no state file specified, use option '--config-file' or '-c'")
var errNoKey = errors.New("no key specified, use option '--key' or '-k'")

// NewCommands returns the 'root', 'get' and 'dump' commands.
func NewCommands() []cli.Command {
	var commonFlags = []cli.Flag{
		cli.StringFlag{
			Name:  "config-file, c",
			Usage: "path to the YAML state file",
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "enable debug logging (overrides configuration)",
		},
	}
	return []cli.Command{
		{
			Name:   "root",
			Usage:  "compute the root hash of the state trie",
			Action: rootHash,
			Flags:  commonFlags,
		},
		{
			Name:   "get",
			Usage:  "look up a single key in the state trie",
			Action: getKey,
			Flags: append([]cli.Flag{cli.StringFlag{
				Name:  "key, k",
				Usage: "key to look up",
			}}, commonFlags...),
		},
		{
			Name:   "dump",
			Usage:  "dump trie node descriptions as JSON",
			Action: dump,
			Flags: append([]cli.Flag{cli.StringFlag{
				Name:  "out, o",
				Usage: "file to write the dump to (stdout if not given)",
			}}, commonFlags...),
		},
	}
}

// handleLoggingParams reads logging parameters from the config. If a user
// selected debug level, the function enables it.
func handleLoggingParams(debug bool, cfg config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if len(cfg.LogLevel) > 0 {
		var err error
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil
	return cc.Build()
}

// buildTrie loads the state file from the context and builds a trie with
// all of its entries.
func buildTrie(ctx *cli.Context) (*trie.Trie, error) {
	cfgPath := ctx.String("config-file")
	if cfgPath == "" {
		return nil, cli.NewExitError(errNoConfig, 1)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	log, err := handleLoggingParams(ctx.Bool("debug"), cfg)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}

	tr := trie.NewTrie(trie.Config{Log: log})
	for _, e := range cfg.Entries {
		tr.Put(e.Key, e.Value)
	}
	log.Debug("state loaded", zap.Int("entries", len(cfg.Entries)))
	return tr, nil
}

func rootHash(ctx *cli.Context) error {
	tr, err := buildTrie(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, tr.RootHash().StringBE())
	return nil
}

func getKey(ctx *cli.Context) error {
	key := ctx.String("key")
	if key == "" {
		return cli.NewExitError(errNoKey, 1)
	}
	tr, err := buildTrie(ctx)
	if err != nil {
		return err
	}
	v, err := tr.Get(key)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, v)
	return nil
}

func dump(ctx *cli.Context) error {
	tr, err := buildTrie(ctx)
	if err != nil {
		return err
	}

	var w io.Writer = ctx.App.Writer
	if out := ctx.String("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return cli.NewExitError(fmt.Errorf("error creating file: %w", err), 1)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	var encErr error
	tr.Traverse(func(d trie.NodeDescription) bool {
		if err := enc.Encode(d); err != nil {
			encErr = err
			return true
		}
		return false
	})
	if encErr != nil {
		return cli.NewExitError(fmt.Errorf("error encoding node description: %w", encErr), 1)
	}
	return nil
}
