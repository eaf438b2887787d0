package main

import (
	"github.com/spf13/cobra"
	"github.com/yaoapp/jsbench/bench"
	"github.com/yaoapp/jsbench/runtime/console"
	"github.com/yaoapp/kun/log"
)

// config the options of a benchmark subcommand, from the flags and the
// optional YAML file
type config struct {
	bench.Option `yaml:",inline"`
	Engine       string   `yaml:"engine,omitempty"`
	Console      string   `yaml:"console,omitempty"`
	File         string   `yaml:"file,omitempty"`
	Flags        []string `yaml:"flags,omitempty"`
	JSON         bool     `yaml:"json,omitempty"`
	Cache        bool     `yaml:"compilation_cache,omitempty"`
	path         string
}

// bind register the flags shared by the benchmark subcommands
func (cfg *config) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&cfg.Iterations, "iterations", "i", cfg.Iterations, "executions per strategy per run")
	flags.IntVarP(&cfg.Runs, "runs", "r", cfg.Runs, "number of runs")
	flags.StringVar(&cfg.Unit, "unit", cfg.Unit, "reported unit, us or ms")
	flags.StringVar(&cfg.Console, "console", cfg.Console, "console mode, silent or stdout")
	flags.StringSliceVar(&cfg.Flags, "flags", nil, "extra V8 flags")
	flags.BoolVar(&cfg.JSON, "json", false, "print the summaries as JSON")
	flags.StringVarP(&cfg.path, "config", "c", "", "YAML file with the options")
}

// load apply the YAML file, the flags set on the command line win
func (cfg *config) load(cmd *cobra.Command, defaults bench.Option) error {
	if cfg.path != "" {
		file := *cfg
		if err := bench.LoadOption(cfg.path, &file); err != nil {
			return err
		}

		flags := cmd.Flags()
		override := map[string]func(){
			"iterations": func() { file.Iterations = cfg.Iterations },
			"runs":       func() { file.Runs = cfg.Runs },
			"unit":       func() { file.Unit = cfg.Unit },
			"console":    func() { file.Console = cfg.Console },
			"flags":      func() { file.Flags = cfg.Flags },
			"json":       func() { file.JSON = cfg.JSON },
			"engine":     func() { file.Engine = cfg.Engine },
			"file":       func() { file.File = cfg.File },
			"cache":      func() { file.Cache = cfg.Cache },
		}
		for name, apply := range override {
			if flags.Changed(name) {
				apply()
			}
		}
		*cfg = file
	}

	// the script output would break the JSON document
	if cfg.JSON && cfg.Console != string(console.Silent) {
		log.Warn("[jsbench] the console is silent with --json")
		cfg.Console = string(console.Silent)
	}

	cfg.Option.Validate(defaults)
	return cfg.Option.Check()
}
