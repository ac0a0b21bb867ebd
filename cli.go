package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"romgen/log"
	"romgen/testrom"
)

type mode byte

const (
	makeMode    mode = iota // Write a test ROM
	infosMode               // Show ROM infos
	batchMode               // Write every ROM of a manifest
	versionMode             // Show romgen version
)

type (
	CLI struct {
		Make    Make    `cmd:"" help:"Write a test ROM. (default command)" default:"true"`
		Infos   Infos   `cmd:"" help:"Show ROM infos."`
		Batch   Batch   `cmd:"" help:"Write every ROM of a manifest."`
		Version Version `cmd:"" help:"Show romgen version."`

		Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`

		mode mode
	}

	Make struct {
		Out    string `short:"o" name:"out" help:"${out_help}"`
		Recipe string `name:"recipe" help:"${recipe_help}" type:"existingfile" optional:""`
	}

	Infos struct {
		RomPath string `arg:"" name:"/path/to/rom" type:"existingfile"`
		JSON    bool   `name:"json" help:"Print infos as JSON."`
	}

	Batch struct {
		Manifest string `arg:"" name:"/path/to/manifest" help:"${manifest_help}" type:"existingfile"`
		Dir      string `short:"C" name:"dir" help:"Write ROMs into this directory." default:"." type:"existingdir"`
		Jobs     int    `short:"j" name:"jobs" help:"Concurrent writes. (0 means one per CPU)" default:"0"`
	}

	Version struct{}
)

var vars = kong.Vars{
	"out_help":      "Output file. (defaults to " + testrom.DefaultFilename + ", or the recipe's own out path)",
	"recipe_help":   "TOML recipe describing the ROM to synthesize.",
	"manifest_help": "TOML manifest made of [[rom]] recipe tables.",
	"log_help":      "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("romgen"),
		kong.Description("NES test ROM generator."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch ctx.Command() {
	case "infos </path/to/rom>":
		cfg.mode = infosMode
	case "batch </path/to/manifest>":
		cfg.mode = batchMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = makeMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "make") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		lm = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(lm))
	return nil
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
