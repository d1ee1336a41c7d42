package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/asm12/internal/assemble"
	"github.com/lookbusy1344/asm12/internal/browse"
	"github.com/lookbusy1344/asm12/internal/config"
	"github.com/lookbusy1344/asm12/internal/diag"
	"github.com/lookbusy1344/asm12/internal/listing"
	"github.com/lookbusy1344/asm12/internal/macro"
)

var version = "dev"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "asm",
		Short:   "A two-pass assembler for the 12-bit pedagogical instruction set",
		Version: version,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml (default: platform config dir)")

	loadCfg := func() *config.Config {
		var cfg *config.Config
		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v; using defaults\n", err)
			cfg = config.DefaultConfig()
		}
		return cfg
	}

	var warnAsErr bool
	assembleCmd := &cobra.Command{
		Use:   "assemble FILE...",
		Short: "Assemble one or more .as files into .ob/.ent/.ext",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadCfg()
			if warnAsErr {
				cfg.Assemble.WarningsAsErrors = true
			}

			exitCode := 0
			for _, path := range args {
				base := stripExt(path)
				res, err := assemble.File(base, cfg)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					exitCode = 1
					continue
				}
				if res.Unit != nil && len(res.Unit.Sink.Warnings) > 0 {
					fmt.Fprint(os.Stderr, res.Unit.Sink.FormatWarnings())
				}
				if res.Unit == nil || res.Unit.Sink.HasErrors() {
					if res.Unit != nil {
						fmt.Fprint(os.Stderr, res.Unit.Sink.FormatErrors())
					}
					exitCode = 1
					continue
				}
				fmt.Printf("%s: wrote %s\n", path, strings.Join(res.Wrote, ", "))
			}
			if exitCode != 0 {
				os.Exit(exitCode)
			}
			return nil
		},
	}
	assembleCmd.Flags().BoolVar(&warnAsErr, "warnings-as-errors", false, "treat warnings as fatal")

	expandCmd := &cobra.Command{
		Use:   "expand FILE...",
		Short: "Run only the macro preprocessor and print the expanded source",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				raw, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				sink := diag.New()
				pre := macro.New(path, sink)
				expanded := pre.Expand(string(raw))
				if sink.HasErrors() {
					fmt.Fprint(os.Stderr, sink.FormatErrors())
					os.Exit(1)
				}
				fmt.Print(expanded)
			}
			return nil
		},
	}

	xrefCmd := &cobra.Command{
		Use:   "xref FILE...",
		Short: "Print a symbol cross-reference for each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadCfg()
			for _, path := range args {
				u, ok := buildUnit(path, cfg)
				if !ok {
					continue
				}
				entries := listing.BuildXRef(u)
				fmt.Print(listing.XRefReport(entries))
			}
			return nil
		},
	}

	lintCmd := &cobra.Command{
		Use:   "lint FILE...",
		Short: "Run style checks over each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadCfg()
			for _, path := range args {
				raw, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				u, _ := buildUnit(path, cfg)
				issues := listing.Lint(string(raw), u, nil)
				for _, issue := range issues {
					fmt.Println(issue.String())
				}
			}
			return nil
		},
	}

	browseCmd := &cobra.Command{
		Use:   "browse FILE",
		Short: "Open a read-only TUI over an assembled file's memory and symbols",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := stripExt(args[0])
			raw, err := os.ReadFile(base + ".as")
			if err != nil {
				return err
			}
			sink := diag.New()
			pre := macro.New(base+".as", sink)
			expanded := pre.Expand(string(raw))
			u := assemble.FirstPass(base+".as", expanded, pre.Table())
			assemble.SecondPass(u)
			b := browse.New(u, expanded)
			return b.Run()
		},
	}

	rootCmd.AddCommand(assembleCmd, expandCmd, xrefCmd, lintCmd, browseCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func stripExt(path string) string {
	if strings.HasSuffix(path, ".as") {
		return strings.TrimSuffix(path, ".as")
	}
	return path
}

func buildUnit(path string, cfg *config.Config) (*assemble.Unit, bool) {
	base := stripExt(path)
	raw, err := os.ReadFile(base + ".as")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return nil, false
	}
	sink := diag.New()
	pre := macro.New(base+".as", sink)
	expanded := pre.Expand(string(raw))
	u := assemble.FirstPass(base+".as", expanded, pre.Table())
	assemble.SecondPass(u)
	return u, true
}
