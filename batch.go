package main

import (
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"romgen/log"
	"romgen/testrom"
)

func runBatch(cmd Batch) {
	man, err := testrom.LoadManifest(cmd.Manifest)
	checkf(err, "failed to load manifest %s", cmd.Manifest)

	jobs := cmd.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	var g errgroup.Group
	g.SetLimit(jobs)

	for _, rcp := range man.Roms {
		rcp := rcp
		g.Go(func() error {
			rom, err := rcp.Rom()
			if err != nil {
				return fmt.Errorf("%s: %w", rcp.Out, err)
			}

			out := filepath.Join(cmd.Dir, rcp.Out)
			if err := rom.WriteFile(out); err != nil {
				return err
			}

			log.ModBatch.InfoZ("rom written").
				String("path", out).
				Int("bytes", rom.Size()).
				End()
			return nil
		})
	}
	checkf(g.Wait(), "batch failed")

	fmt.Printf("Created %d test ROM(s) in %s\n", len(man.Roms), cmd.Dir)
}
