package assemble

import (
	"fmt"
	"os"
	"strings"

	"github.com/lookbusy1344/asm12/internal/encode"
	"github.com/lookbusy1344/asm12/internal/symtab"
)

// WriteOutputs renders and writes the object (.ob), entries (.ent), and
// externals (.ext) files for a fully-resolved unit. The .ent/.ext files
// are only written when there is at least one entry/external symbol to
// list. All writes happen against a temporary name first and are renamed
// into place only once every file has rendered cleanly; any failure
// removes whatever was already written so a partial run never leaves a
// stale artifact beside a failed one.
func WriteOutputs(u *Unit, baseName string) error {
	type pending struct {
		finalPath string
		tempPath  string
		content   string
	}

	var files []pending

	files = append(files, pending{
		finalPath: baseName + ".ob",
		tempPath:  baseName + ".ob.tmp",
		content:   renderObjectFile(u),
	})

	if ent := renderEntriesFile(u); ent != "" {
		files = append(files, pending{
			finalPath: baseName + ".ent",
			tempPath:  baseName + ".ent.tmp",
			content:   ent,
		})
	}

	if ext := renderExternalsFile(u); ext != "" {
		files = append(files, pending{
			finalPath: baseName + ".ext",
			tempPath:  baseName + ".ext.tmp",
			content:   ext,
		})
	}

	written := make([]string, 0, len(files))
	cleanup := func() {
		for _, p := range written {
			os.Remove(p)
		}
	}

	for _, f := range files {
		if err := os.WriteFile(f.tempPath, []byte(f.content), 0o644); err != nil {
			cleanup()
			return fmt.Errorf("writing %s: %w", f.tempPath, err)
		}
		if err := os.Rename(f.tempPath, f.finalPath); err != nil {
			os.Remove(f.tempPath)
			cleanup()
			return fmt.Errorf("renaming %s: %w", f.tempPath, err)
		}
		written = append(written, f.finalPath)
	}

	return nil
}

func renderObjectFile(u *Unit) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\t%d\n", u.IC, u.DC)
	for _, e := range u.Image.Entries() {
		fmt.Fprintf(&sb, "%s\n", encode.Base64Word(e.Word))
	}
	return sb.String()
}

func renderEntriesFile(u *Unit) string {
	var sb strings.Builder
	for _, sym := range u.Symbols.Enumerate() {
		if sym.Kind == symtab.Entry || sym.Kind == symtab.EntryAndCodeOrData {
			fmt.Fprintf(&sb, "%s\t%d\n", sym.Name, sym.Address)
		}
	}
	return sb.String()
}

func renderExternalsFile(u *Unit) string {
	var sb strings.Builder
	for _, ext := range u.Externals {
		fmt.Fprintf(&sb, "%s\t%d\n", ext.Name, ext.Address)
	}
	return sb.String()
}
