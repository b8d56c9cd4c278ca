package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cpusched/internal/loader"
	"cpusched/internal/render"
	"cpusched/internal/responses"
	"cpusched/internal/schedulers"
)

var errUnknownOutput = errors.New("unknown output format")

var titles = map[schedulers.Algorithm]string{
	schedulers.FCFS:  "First-come, first-serve",
	schedulers.SJFNP: "Shortest-job-first",
	schedulers.SRTF:  "Shortest-remaining-time-first",
	schedulers.RR:    "Round-robin",
}

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var (
		file      string
		algorithm string
		quantum   int
		output    string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate scheduling of the processes in a CSV or YAML file",
		Example: `  cpusched simulate --file procs.csv
  cpusched simulate --file procs.yaml --algorithm srtf --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithms := schedulers.Algorithms
			if !strings.EqualFold(algorithm, "all") {
				alg, err := schedulers.ParseAlgorithm(algorithm)
				if err != nil {
					return err
				}
				algorithms = []schedulers.Algorithm{alg}
			}
			if output != "table" && output != "json" {
				return fmt.Errorf("%w %q (want table or json)", errUnknownOutput, output)
			}
			if cmd.Flags().Changed("quantum") {
				opts.config.RoundRobinTimeQuantum = quantum
			}

			request, err := loader.LoadFile(file)
			if err != nil {
				return err
			}
			processes, err := request.Validate(opts.config.MaxTimeUnit)
			if err != nil {
				return err
			}

			var all []responses.ScheduleResponse
			for _, alg := range algorithms {
				strategy, err := schedulers.New(alg, schedulers.Options{TimeQuantum: opts.config.RoundRobinTimeQuantum})
				if err != nil {
					return err
				}
				schedule, err := schedulers.Simulate(strategy, processes)
				if err != nil {
					return fmt.Errorf("%s: %w", alg, err)
				}
				opts.logger.Debug("simulated", "algorithm", alg, "processes", len(processes), "total_time", schedule.Metric.TotalTime)
				all = append(all, schedulers.GenerateResponse(schedule))
			}

			out := cmd.OutOrStdout()
			if output == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(all)
			}
			for _, response := range all {
				render.Schedule(out, titles[schedulers.Algorithm(response.Algorithm)], response)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Process file (.csv or .yaml)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "all", "Algorithm: fcfs, sjf, srtf, rr or all")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round-robin time quantum (overrides config)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table or json")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
