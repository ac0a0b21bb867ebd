package main

import (
	"fmt"
	"os"

	"romgen/ines"
	"romgen/testrom"
)

const version = "0.1.0"

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case infosMode:
		runInfos(cli.Infos)
	case batchMode:
		runBatch(cli.Batch)
	case versionMode:
		fmt.Println("romgen", version)
	default:
		runMake(cli.Make)
	}
}

func runMake(cmd Make) {
	rcp := testrom.DefaultRecipe()
	if cmd.Recipe != "" {
		var err error
		rcp, err = testrom.LoadRecipe(cmd.Recipe)
		checkf(err, "failed to load recipe %s", cmd.Recipe)
	}
	if cmd.Out != "" {
		rcp.Out = cmd.Out
	}

	rom, err := rcp.Rom()
	checkf(err, "invalid recipe")
	checkf(rom.WriteFile(rcp.Out), "failed to write %s", rcp.Out)

	fmt.Printf("Created test ROM: %s (%d bytes)\n", rcp.Out, rom.Size())
	rom.PrintInfos(os.Stdout)
}

func runInfos(cmd Infos) {
	rom, err := ines.Open(cmd.RomPath)
	checkf(err, "failed to open rom")

	if cmd.JSON {
		os.Stdout.Write(rom.InfosJSON())
		fmt.Println()
		return
	}
	rom.PrintInfos(os.Stdout)
}
