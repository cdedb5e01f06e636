// Package main provides the kmeans CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/dataset"
	"github.com/hupe1980/kmeans/internal/config"
	"github.com/hupe1980/kmeans/plot"
	"github.com/hupe1980/kmeans/promcollector"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kmeans",
		Short: "Cluster numeric records with Lloyd's k-means",
		Long: `kmeans partitions delimited numeric records into k clusters.

Each input line holds the components of one record. Unless --no-tags is
given, the last column is a tag that is excluded from clustering and used
to score the result.

Inputs:
  path/to/data.tsv[.gz|.zst|.lz4]
  -                               (stdin)
  s3://bucket/key                 (AWS default credential chain)
  minio://host:port/bucket/key    (MINIO_ACCESS_KEY, MINIO_SECRET_KEY, MINIO_SECURE)`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kmeans v%s (%s)\n", version, commit)
		},
	})

	runCmd := &cobra.Command{
		Use:   "run [input]",
		Short: "Cluster the records of an input",
		Args:  cobra.ExactArgs(1),
		RunE:  runRun,
	}
	runCmd.Flags().String("config", "", "YAML configuration file")
	runCmd.Flags().IntP("k", "k", 0, "Number of clusters")
	runCmd.Flags().String("centroids", "", `Initial centroids, e.g. "1,1;9,9"`)
	runCmd.Flags().Int64("seed", 0, "Random seed (default: time based)")
	runCmd.Flags().Int("max-rounds", kmeans.DefaultMaxRounds, "Round limit")
	runCmd.Flags().Float64("tolerance", 0, "Convergence tolerance (0 means identical centroids)")
	runCmd.Flags().String("empty-cluster", "reseed", "Empty cluster policy: reseed, keep or fail")
	runCmd.Flags().String("delimiter", "tab", `Field delimiter ("tab" or one character)`)
	runCmd.Flags().Bool("no-tags", false, "Treat the last column as a feature")
	runCmd.Flags().BoolP("interactive", "i", false, "Ask for k and the initial centroids")
	runCmd.Flags().BoolP("verbose", "v", false, "Print clusters and centroids after every round")
	runCmd.Flags().String("log-level", "warn", "Log level: debug, info, warn or error")
	runCmd.Flags().String("log-format", "text", "Log format: text or json")
	runCmd.Flags().String("scatter", "", "Write a scatter chart (HTML) to this file")
	runCmd.Flags().String("sizes", "", "Write a cluster size chart (HTML) to this file")
	runCmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file")
	runCmd.Flags().StringP("output", "o", "", "Write the encoded result to this file")
	runCmd.Flags().String("codec", "go-json", "Result encoding: json or go-json")
	rootCmd.AddCommand(runCmd)

	return rootCmd
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFromEnvOrFile(configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	interactive, _ := cmd.Flags().GetBool("interactive")

	src, err := parseSource(args[0])
	if err != nil {
		return err
	}
	if interactive && src.scheme == "-" {
		return errors.New("--interactive cannot read records from stdin")
	}
	store, err := src.store(ctx, cmd.InOrStdin())
	if err != nil {
		return err
	}
	readOpts, err := cfg.ReadOptions()
	if err != nil {
		return err
	}
	ds, err := dataset.Open(ctx, store, src.blobName(), readOpts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded %d records of dimension %d\n", ds.Len(), ds.Dim())

	if interactive {
		if err := prompt(cmd.InOrStdin(), out, cfg, ds); err != nil {
			return err
		}
	}
	if cfg.K == 0 {
		return errors.New("k is required: pass -k, set it in the config file or use --interactive")
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	opts = append(opts, kmeans.WithLogger(logger))

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts = append(opts, kmeans.WithObserver(&narrator{out: out, ds: ds}))
	}

	var reg *prometheus.Registry
	if cfg.Output.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		col, err := promcollector.New(reg)
		if err != nil {
			return err
		}
		opts = append(opts, kmeans.WithMetricsCollector(col))
	}

	clusterer, err := kmeans.New(cfg.K, opts...)
	if err != nil {
		return err
	}
	if cfg.Centroids == nil {
		fmt.Fprintln(out, "Selecting random centroids")
	}
	res, err := clusterer.Fit(ctx, ds, cfg.Centroids)
	if err != nil {
		return err
	}

	if err := writeReport(out, ds, res); err != nil {
		return err
	}

	if cfg.Output.Scatter != "" {
		if err := writeFile(cfg.Output.Scatter, func(w io.Writer) error { return plot.Scatter(w, ds, res) }); err != nil {
			return err
		}
	}
	if cfg.Output.Sizes != "" {
		if err := writeFile(cfg.Output.Sizes, func(w io.Writer) error { return plot.Sizes(w, res) }); err != nil {
			return err
		}
	}
	if cfg.Output.Result != "" {
		cd, err := cfg.ResultCodec()
		if err != nil {
			return err
		}
		data, err := res.Encode(cd)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Output.Result, data, 0o644); err != nil { //nolint:gosec // result files are not secret
			return fmt.Errorf("write result: %w", err)
		}
	}
	if reg != nil {
		if err := prometheus.WriteToTextfile(cfg.Output.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("k") {
		cfg.K, _ = flags.GetInt("k")
	}
	if flags.Changed("centroids") {
		s, _ := flags.GetString("centroids")
		centroids, err := parseCentroids(s)
		if err != nil {
			return err
		}
		cfg.Centroids = centroids
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetInt64("seed")
		cfg.Seed = &seed
	}
	if flags.Changed("max-rounds") {
		cfg.MaxRounds, _ = flags.GetInt("max-rounds")
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance, _ = flags.GetFloat64("tolerance")
	}
	if flags.Changed("empty-cluster") {
		cfg.EmptyCluster, _ = flags.GetString("empty-cluster")
	}
	if flags.Changed("delimiter") {
		cfg.Input.Delimiter, _ = flags.GetString("delimiter")
	}
	if flags.Changed("no-tags") {
		cfg.Input.NoTags, _ = flags.GetBool("no-tags")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
	if flags.Changed("scatter") {
		cfg.Output.Scatter, _ = flags.GetString("scatter")
	}
	if flags.Changed("sizes") {
		cfg.Output.Sizes, _ = flags.GetString("sizes")
	}
	if flags.Changed("metrics-file") {
		cfg.Output.MetricsFile, _ = flags.GetString("metrics-file")
	}
	if flags.Changed("output") {
		cfg.Output.Result, _ = flags.GetString("output")
	}
	if flags.Changed("codec") {
		cfg.Output.Codec, _ = flags.GetString("codec")
	}

	return nil
}

// prompt fills in k and optionally the initial centroids interactively.
func prompt(in io.Reader, out io.Writer, cfg *config.Config, ds *dataset.Dataset) error {
	p := newPrompter(in, out)

	if cfg.K == 0 {
		k, err := p.askK(ds.Len())
		if err != nil {
			return err
		}
		cfg.K = k
	}
	if cfg.Centroids != nil {
		return nil
	}

	manual, err := p.askYesNo("Do you want to input centroids")
	if err != nil {
		return err
	}
	if manual {
		cfg.Centroids, err = p.askCentroids(cfg.K, ds.Dim())
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
