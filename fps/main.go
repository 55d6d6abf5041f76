package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fundpool/fundpool/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Handle shell completion requests before anything else; Complete returns
	// immediately when not running in completion mode.
	completion().Complete("fps")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	eventFlags := map[string]complete.Predictor{
		"c": predict.Something,
		"a": predict.Something,
		"t": predict.Nothing,
	}
	reportFlags := map[string]complete.Predictor{
		"lookback":  predict.Something,
		"min-ratio": predict.Something,
		"strict":    predict.Nothing,
	}
	statementFlags := map[string]complete.Predictor{"d": predict.Nothing}
	for k, v := range reportFlags {
		statementFlags[k] = v
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"feed-file":   predict.Files("*.jsonl"),
			"timezone":    predict.Something,
			"currency":    predict.Something,
		},
		Sub: map[string]*complete.Command{
			"contribute": {Flags: eventFlags},
			"withdraw":   {Flags: eventFlags},
			"value":      {Flags: map[string]complete.Predictor{"v": predict.Something, "d": predict.Nothing}},
			"statement":  {Flags: statementFlags},
			"audit":      {Flags: reportFlags},
			"fmt":        {},
			"import": {Flags: map[string]complete.Predictor{
				"date-path":  predict.Something,
				"value-path": predict.Something,
			}},
		},
	}
}
