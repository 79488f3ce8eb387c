package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/philipparndt/geom3/pkg/analysis"
	"github.com/philipparndt/geom3/pkg/script"
	"github.com/philipparndt/geom3/pkg/watcher"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	walkSteps string
	walkWatch bool
)

var walkCmd = &cobra.Command{
	Use:   "walk [script]",
	Short: "Run a walk script and report where the observer ends up",
	Long: `Run a walk script starting at the origin, facing along z.

Steps are separated by newlines or ';':
  shift-x|shift-y|shift-z <dist>     move in the observer's frame
  rotate-x|rotate-y|rotate-z <angle> turn in the observer's frame (radians)
  look <x> <y> <z>                   turn to face a world point
  travel <x> <y> <z>                 go to a world point`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWalk,
}

func init() {
	rootCmd.AddCommand(walkCmd)

	walkCmd.Flags().StringVarP(&walkSteps, "steps", "s", "", "inline walk script")
	walkCmd.Flags().BoolVarP(&walkWatch, "watch", "w", false, "re-run the script file whenever it changes")
}

func runWalk(cmd *cobra.Command, args []string) error {
	s, err := lookupSpace(geometryName)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if walkWatch {
			return errors.New("--watch needs a script file")
		}
		steps, err := script.ParseString(walkSteps)
		if err != nil {
			return err
		}
		return walkAndPrint(cmd.OutOrStdout(), s, steps)
	}

	filename := args[0]
	if err := walkFile(cmd.OutOrStdout(), s, filename); err != nil {
		return err
	}
	if !walkWatch {
		return nil
	}

	w, err := watcher.New(100 * time.Millisecond)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Watch(filename, func(path string) {
		if err := walkFile(cmd.OutOrStdout(), s, path); err != nil {
			log.Error().Err(err).Str("file", path).Msg("walk failed")
		}
	}); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info().Str("file", filename).Msg("watching for changes, press Ctrl+C to stop")
	w.Run(ctx)
	return nil
}

func walkFile(out io.Writer, s space, filename string) error {
	steps, err := script.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return walkAndPrint(out, s, steps)
}

func walkAndPrint(out io.Writer, s space, steps []script.Step) error {
	log.Debug().Str("geometry", s.Name()).Int("steps", len(steps)).Msg("walking")

	result, err := s.Walk(steps)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Walk (%s, %d steps)\n", s.Name(), len(steps))
	fmt.Fprintf(out, "  Position: %s\n", result.Position)
	fmt.Fprintf(out, "  Heading:  %s\n", result.Heading)
	fmt.Fprintf(out, "  From origin: %s\n", analysis.FormatMeasurement(result.FromOrigin, "units"))
	return nil
}
