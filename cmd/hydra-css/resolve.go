package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"thirdcoast.systems/hydra/pkg/css"
)

// elementSpec is one element in a definition file, or the flags of a single
// resolve.
type elementSpec struct {
	Name          string `yaml:"name" json:"name"`
	Classes       string `yaml:"classes" json:"classes,omitempty"`
	Styles        string `yaml:"styles" json:"styles,omitempty"`
	ClassOverride string `yaml:"classOverride" json:"classOverride,omitempty"`
	StyleOverride string `yaml:"styleOverride" json:"styleOverride,omitempty"`
	Disabled      bool   `yaml:"disabled" json:"disabled,omitempty"`
	ReadOnly      bool   `yaml:"readOnly" json:"readOnly,omitempty"`
}

type elementFile struct {
	Strict   bool          `yaml:"strict"`
	Elements []elementSpec `yaml:"elements"`
}

type resolved struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	Style string `json:"style"`
	Error string `json:"error,omitempty"`
}

type resolveOptions struct {
	file       string
	strict     bool
	jsonOutput bool
	element    elementSpec
}

func newResolveCmd() *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the class and style an element would render",
		Example: `  hydra-css resolve --class "btn btn-primary" --disabled
  hydra-css resolve --style "color: red" --style-override "color: blue; bogus" --strict
  hydra-css resolve --file elements.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "YAML element definition file")
	f.BoolVar(&opts.strict, "strict", false, "Reject malformed style overrides as a whole")
	f.BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	f.StringVar(&opts.element.Name, "name", "element", "Element name shown in the output")
	f.StringVar(&opts.element.Classes, "class", "", "Base classes")
	f.StringVar(&opts.element.Styles, "style", "", "Base style declarations")
	f.StringVar(&opts.element.ClassOverride, "class-override", "", "Class override replacing the base classes")
	f.StringVar(&opts.element.StyleOverride, "style-override", "", "Style override replacing the base styles")
	f.BoolVar(&opts.element.Disabled, "disabled", false, "Resolve in the disabled state")
	f.BoolVar(&opts.element.ReadOnly, "readonly", false, "Resolve in the read-only state")

	return cmd
}

func runResolve(cmd *cobra.Command, opts *resolveOptions) error {
	specs := []elementSpec{opts.element}
	strict := opts.strict

	if strings.TrimSpace(opts.file) != "" {
		file, err := loadElementFile(opts.file)
		if err != nil {
			return err
		}
		specs = file.Elements
		strict = strict || file.Strict
	}

	results := make([]resolved, 0, len(specs))
	for _, spec := range specs {
		results = append(results, resolve(spec, strict))
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	return renderTable(cmd.OutOrStdout(), results)
}

func loadElementFile(path string) (*elementFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read element file: %w", err)
	}
	var file elementFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse element file %s: %w", path, err)
	}
	if len(file.Elements) == 0 {
		return nil, errors.New("element file defines no elements")
	}
	return &file, nil
}

func resolve(spec elementSpec, strict bool) resolved {
	in := css.Input{
		Disabled:      spec.Disabled,
		ReadOnly:      spec.ReadOnly,
		ClassOverride: spec.ClassOverride,
		StyleOverride: spec.StyleOverride,
		Classes:       css.NewTokenSet(spec.Classes),
		Styles:        css.ParseStyleOverride(spec.Styles),
	}

	var r css.Resolver
	out := resolved{Name: spec.Name, Class: r.ResolveClass(in)}
	if !strict {
		out.Style = r.ResolveStyle(in)
		return out
	}

	style, err := r.ResolveStyleStrict(in)
	out.Style = style
	if err != nil {
		slog.Warn("style override rejected", "element", spec.Name, "error", err)
		out.Error = err.Error()
	}
	return out
}

func renderTable(w io.Writer, results []resolved) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCLASS\tSTYLE\tERROR")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Class, r.Style, r.Error)
	}
	return tw.Flush()
}
