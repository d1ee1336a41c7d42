package assemble

import (
	"fmt"
	"os"

	"github.com/lookbusy1344/asm12/internal/config"
	"github.com/lookbusy1344/asm12/internal/diag"
	"github.com/lookbusy1344/asm12/internal/macro"
)

// Result is the outcome of assembling one source file.
type Result struct {
	Unit     *Unit
	Expanded string
	Wrote    []string // suffixes actually written: some subset of .am/.ob/.ent/.ext
}

// File runs the full pipeline for one source file: macro expansion, first
// pass, second pass, and (if the unit has no errors) the object/entries/
// externals files. baseName is the path without its .as extension; it is
// used to derive every output file's name. cfg controls whether the
// expanded source is kept on disk and whether warnings are promoted to
// errors.
func File(baseName string, cfg *config.Config) (*Result, error) {
	srcPath := baseName + ".as"
	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", srcPath, err)
	}

	res := &Result{}

	preSink := diag.New()
	pre := macro.New(srcPath, preSink)
	expanded := pre.Expand(string(raw))
	res.Expanded = expanded

	u := NewUnit(srcPath)
	u.Sink.Errors = append(u.Sink.Errors, preSink.Errors...)
	u.Sink.Warnings = append(u.Sink.Warnings, preSink.Warnings...)
	if u.Sink.HasErrors() {
		return &Result{Unit: u, Expanded: expanded}, nil
	}

	if cfg != nil && cfg.Assemble.KeepExpanded {
		if err := os.WriteFile(baseName+".am", []byte(expanded), 0o644); err == nil {
			res.Wrote = append(res.Wrote, ".am")
		}
	}

	fp := FirstPass(srcPath, expanded, pre.Table())
	fp.Sink.Errors = append(preSink.Errors, fp.Sink.Errors...)
	fp.Sink.Warnings = append(preSink.Warnings, fp.Sink.Warnings...)
	res.Unit = fp
	if fp.Sink.HasErrors() {
		return res, nil
	}

	SecondPass(fp)
	if fp.Sink.HasErrors() {
		return res, nil
	}
	if cfg != nil && cfg.Assemble.WarningsAsErrors && len(fp.Sink.Warnings) > 0 {
		return res, nil
	}

	if err := WriteOutputs(fp, baseName); err != nil {
		return res, fmt.Errorf("writing outputs for %s: %w", baseName, err)
	}
	res.Wrote = append(res.Wrote, ".ob")
	if renderEntriesFile(fp) != "" {
		res.Wrote = append(res.Wrote, ".ent")
	}
	if renderExternalsFile(fp) != "" {
		res.Wrote = append(res.Wrote, ".ext")
	}

	return res, nil
}
