package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lacquerai/datagen/internal/dataset"
	"github.com/lacquerai/datagen/internal/execcontext"
	"github.com/lacquerai/datagen/internal/runner"
	"github.com/lacquerai/datagen/internal/style"
	"github.com/lacquerai/datagen/internal/writer"
	"github.com/lacquerai/datagen/pkg/events"
)

var (
	outputFile    string
	datasetFormat string
	metricsFile   string

	// shape is fixed for every run; tests shrink it.
	shape = dataset.DefaultShape
)

func runGenerate(cmd *cobra.Command) error {
	format, err := writer.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}

	report := viper.GetString("output")

	var listener events.Listener
	if !viper.GetBool("quiet") && report == "text" {
		listener = newProgressListener(cmd.ErrOrStderr())
	}

	r := runner.NewRunner(runner.Options{
		Path:        viper.GetString("file"),
		Format:      format,
		MetricsFile: viper.GetString("metrics-file"),
		Shape:       shape,
		Listener:    listener,
	})

	result, err := r.Run(execcontext.RunContext{
		Context: cmd.Context(),
		StdOut:  cmd.OutOrStdout(),
		StdErr:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	log.Debug().Str("run_id", result.RunID).Str("path", result.OutputPath).Msg("Run finished")

	switch report {
	case "json":
		style.PrintJSON(cmd.OutOrStdout(), result)
	case "yaml":
		style.PrintYAML(cmd.OutOrStdout(), result)
	default:
		if !viper.GetBool("quiet") {
			printSummary(cmd.OutOrStdout(), result, viper.GetBool("verbose"))
		}
	}

	return nil
}

func printSummary(w io.Writer, result *runner.Result, verbose bool) {
	style.Success(w, fmt.Sprintf("Wrote %s records to %s (%s)",
		humanize.Comma(int64(result.Records)),
		style.FormatFilePath(result.OutputPath),
		humanize.Bytes(uint64(result.Bytes)),
	))

	if !verbose {
		return
	}

	detail := func(label, value string) {
		fmt.Fprintf(w, "  %s %s\n", style.MutedStyle.Render(fmt.Sprintf("%-13s", label+":")), value)
	}
	detail("Run ID", result.RunID)
	detail("Format", string(result.Format))
	detail("Map entries", humanize.Comma(int64(result.MapEntries)))
	detail("Collisions", humanize.Comma(int64(result.Collisions)))
	detail("Duration", result.Duration.Round(time.Millisecond).String())
}
