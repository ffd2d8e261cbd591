// Package config loads the alertmigrate HCL configuration file.
//
// A config file is optional. When present it can list the target files, the
// exclude rules, the names inserted by the migration and the worktree guard:
//
//	targets = ["${cwd}/src/app/(main)/settings/page.tsx"]
//	exclude = ["legacy/"]
//
//	migration {
//	  hook_name   = "useCustomAlert"
//	  hook_module = "@/components/CustomAlert"
//	}
//
//	guard {
//	  require_clean = true
//	}
//
// Expressions can reference `env.NAME` and `cwd`, and call concat, format,
// join, lower and upper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/mouse-blink/alertmigrate/internal/domain/rewrite"
	m "github.com/mouse-blink/alertmigrate/internal/model"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// DefaultFileName is loaded from the working directory when no config file
// is given explicitly.
const DefaultFileName = "alertmigrate.hcl"

// Config is the resolved configuration of one run.
type Config struct {
	Targets      []m.Path
	Exclude      []string
	IgnoreFiles  []string
	Migration    m.Migration
	RequireClean bool

	// Source is the file the config was loaded from, empty for defaults.
	Source string
}

// Options supplies the values visible to config expressions.
type Options struct {
	Env map[string]string
	Cwd string
}

// hclConfigFile represents the top-level structure of a config file for decoding.
type hclConfigFile struct {
	Targets     []string           `hcl:"targets,optional"`
	Exclude     []string           `hcl:"exclude,optional"`
	IgnoreFiles []string           `hcl:"ignore_files,optional"`
	Migration   *hclMigrationBlock `hcl:"migration,block"`
	Guard       *hclGuardBlock     `hcl:"guard,block"`
}

type hclMigrationBlock struct {
	HookName        string `hcl:"hook_name,optional"`
	HookModule      string `hcl:"hook_module,optional"`
	BareCall        string `hcl:"bare_call,optional"`
	ReplacementCall string `hcl:"replacement_call,optional"`
	HandleName      string `hcl:"handle_name,optional"`
	Indent          string `hcl:"indent,optional"`
}

type hclGuardBlock struct {
	RequireClean bool `hcl:"require_clean,optional"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{Migration: m.DefaultMigration()}
}

// OptionsFromEnvironment captures the process environment and working directory.
func OptionsFromEnvironment() (Options, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Options{}, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	env := make(map[string]string)

	for _, kv := range os.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok && name != "" {
			env[name] = value
		}
	}

	return Options{Env: env, Cwd: cwd}, nil
}

// Discover loads path when it is set. Otherwise it loads DefaultFileName from
// the working directory if that file exists, and falls back to Default.
func Discover(path string, opts Options) (*Config, error) {
	if path != "" {
		return Load(path, opts)
	}

	if _, err := os.Stat(DefaultFileName); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to stat %s: %w", DefaultFileName, err)
	}

	return Load(DefaultFileName, opts)
}

// Load parses and decodes the config file at path.
func Load(path string, opts Options) (*Config, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	return decode(file, path, opts)
}

// Parse decodes config source held in memory. filename is used in diagnostics.
func Parse(src []byte, filename string, opts Options) (*Config, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}

	return decode(file, filename, opts)
}

func decode(file *hcl.File, filename string, opts Options) (*Config, error) {
	var parsed hclConfigFile

	diags := gohcl.DecodeBody(file.Body, evalContext(opts), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}

	cfg := Default()
	cfg.Source = filename
	cfg.Exclude = parsed.Exclude
	cfg.IgnoreFiles = parsed.IgnoreFiles

	for _, target := range parsed.Targets {
		cfg.Targets = append(cfg.Targets, m.Path(target))
	}

	if parsed.Migration != nil {
		cfg.Migration = mergeMigration(cfg.Migration, *parsed.Migration)
	}

	if parsed.Guard != nil {
		cfg.RequireClean = parsed.Guard.RequireClean
	}

	if err := rewrite.Validate(cfg.Migration); err != nil {
		return nil, fmt.Errorf("config file %s: %w", filename, err)
	}

	return cfg, nil
}

// mergeMigration overrides the fields of base that block sets.
func mergeMigration(base m.Migration, block hclMigrationBlock) m.Migration {
	override := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}

	override(&base.HookName, block.HookName)
	override(&base.HookModule, block.HookModule)
	override(&base.BareCall, block.BareCall)
	override(&base.ReplacementCall, block.ReplacementCall)
	override(&base.HandleName, block.HandleName)
	override(&base.Indent, block.Indent)

	return base
}

func evalContext(opts Options) *hcl.EvalContext {
	env := cty.EmptyObjectVal
	if len(opts.Env) > 0 {
		vals := make(map[string]cty.Value, len(opts.Env))
		for k, v := range opts.Env {
			vals[k] = cty.StringVal(v)
		}

		env = cty.ObjectVal(vals)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": env,
			"cwd": cty.StringVal(opts.Cwd),
		},
		Functions: map[string]function.Function{
			"concat": stdlib.ConcatFunc,
			"format": stdlib.FormatFunc,
			"join":   stdlib.JoinFunc,
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
		},
	}
}

// TargetPaths returns args when given, then the configured targets, then the
// built-in default list.
func (c *Config) TargetPaths(args []string) []m.Path {
	if len(args) > 0 {
		paths := make([]m.Path, 0, len(args))
		for _, arg := range args {
			paths = append(paths, m.Path(arg))
		}

		return paths
	}

	if len(c.Targets) > 0 {
		return c.Targets
	}

	return m.DefaultTargets()
}
