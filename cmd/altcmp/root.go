package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/frederic-klein/altcmp/internal/compare"
	"github.com/frederic-klein/altcmp/internal/config"
	"github.com/frederic-klein/altcmp/internal/fetch"
	"github.com/frederic-klein/altcmp/internal/index"
	"github.com/frederic-klein/altcmp/internal/log"
	"github.com/frederic-klein/altcmp/internal/mapping"
	"github.com/frederic-klein/altcmp/internal/pkglist"
	"github.com/frederic-klein/altcmp/internal/report"
)

const (
	version = "0.1.0"

	altListFile    = "alt_packages.txt"
	secondListFile = "second_packages.txt"
)

// app carries what the subcommands share: the merged config and the filesystem.
type app struct {
	v          *viper.Viper
	fs         afero.Fs
	configPath string
	cfg        *config.Application
	logCloser  io.Closer
}

func newApp(v *viper.Viper, fs afero.Fs) *app {
	return &app{v: v, fs: fs}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                "altcmp",
		Short:              "Compare package versions between ALT Linux Sisyphus and other repositories",
		Long:               "altcmp fetches the ALT Linux package list and a Debian-style Packages index, joins them through a name mapping file and reports which side carries the newer version.",
		Version:            version,
		SilenceUsage:       true,
		PersistentPreRunE:  a.load,
		PersistentPostRunE: a.close,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "application config file")
	flags.String("alt-url", config.DefaultAltURL, "URL or path of the ALT Linux package list")
	flags.String("second-url", config.DefaultSecondURL, "URL or path of the second repository Packages index")
	flags.StringP("mapping-file", "m", config.DefaultMappingFile, "path to the package mapping file")
	flags.StringP("output-file", "o", "", "also write the report to this file (without colors)")
	flags.String("output", "table", "report format (table, json, yaml)")
	flags.BoolP("silent", "s", false, "suppress console output except errors")
	flags.CountP("verbose", "v", "increase verbosity (-v = info, -vv = debug)")

	for key, name := range map[string]string{
		"alt-url":      "alt-url",
		"second-url":   "second-url",
		"mapping-file": "mapping-file",
		"output-file":  "output-file",
		"output":       "output",
		"silent":       "silent",
		"verbosity":    "verbose",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}

	rootCmd.AddCommand(
		newCompareCmd(a),
		newStatsCmd(a),
		newFetchCmd(a),
	)
	return rootCmd
}

// load merges defaults, config file, environment and flags, then sets up logging.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadApplicationConfig(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	closer, err := log.Setup(log.Config{
		Level:        cfg.Log.ParsedLevel(),
		Structured:   cfg.Log.Structured,
		FileLocation: cfg.Log.FileLocation,
		Console:      cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.logCloser = closer

	log.Debugf("application config:\n%s", cfg)
	return nil
}

func (a *app) close(_ *cobra.Command, _ []string) error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}

func (a *app) fetcher() *fetch.Fetcher {
	return fetch.New(fetch.Config{
		Workers:  a.cfg.Fetch.Workers,
		Retries:  a.cfg.Fetch.Retries,
		Timeout:  a.cfg.Fetch.Timeout,
		CacheDir: a.cfg.Fetch.CacheDir,
		CacheTTL: a.cfg.Fetch.CacheTTL,
	}, a.fs)
}

func (a *app) jobs() []fetch.Job {
	return []fetch.Job{
		{Label: a.cfg.Labels.Alt, URL: a.cfg.AltURL, File: altListFile},
		{Label: a.cfg.Labels.Second, URL: a.cfg.SecondURL, File: secondListFile},
	}
}

// comparator loads the mapping, fetches and parses both listings.
func (a *app) comparator(ctx context.Context) (*compare.Comparator, error) {
	m, err := mapping.Load(a.fs, a.cfg.MappingFile)
	if err != nil {
		return nil, fmt.Errorf("loading mapping: %w", err)
	}

	results := a.fetcher().Fetch(ctx, a.jobs())
	if err := fetch.Errors(results); err != nil {
		return nil, err
	}

	altPackages, err := parseListing(index.FormatALT, results[0])
	if err != nil {
		return nil, err
	}
	secondPackages, err := parseListing(index.FormatDebian, results[1])
	if err != nil {
		return nil, err
	}

	return compare.New(altPackages, secondPackages, m), nil
}

func parseListing(format index.Format, r fetch.Result) (pkglist.Versions, error) {
	p, err := index.ParserFor(format)
	if err != nil {
		return nil, err
	}
	packages, err := p.Parse(r.Data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s listing: %w", r.Job.Label, err)
	}
	log.Infof("parsed %d %s packages", len(packages), r.Job.Label)
	return packages, nil
}

func (a *app) reportOptions(useColor bool) report.Options {
	return report.Options{
		Labels: report.Labels{Alt: a.cfg.Labels.Alt, Second: a.cfg.Labels.Second},
		Color:  useColor,
	}
}

// present writes the report to the output file, if any, and to stdout unless silent.
func (a *app) present(cmd *cobra.Command, build func(useColor bool) (report.Presenter, error)) error {
	if a.cfg.OutputFile != "" {
		p, err := build(false)
		if err != nil {
			return err
		}
		if err := a.writeReport(a.cfg.OutputFile, p); err != nil {
			return err
		}
		log.Infof("report written to %s", a.cfg.OutputFile)
	}

	if a.cfg.Silent {
		return nil
	}

	out := cmd.OutOrStdout()
	p, err := build(colorEnabled(out))
	if err != nil {
		return err
	}
	return p.Present(out)
}

func (a *app) writeReport(path string, p report.Presenter) error {
	if err := a.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := a.fs.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := p.Present(f); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

func colorEnabled(w io.Writer) bool {
	return w == io.Writer(os.Stdout) && !color.NoColor
}
