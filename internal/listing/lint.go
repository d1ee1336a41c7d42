package listing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lookbusy1344/asm12/internal/assemble"
)

// LintLevel is the severity of a style finding.
type LintLevel int

const (
	LintWarning LintLevel = iota // best-practice violation
	LintInfo                     // style suggestion
)

func (l LintLevel) String() string {
	switch l {
	case LintWarning:
		return "warning"
	case LintInfo:
		return "info"
	default:
		return "unknown"
	}
}

// LintIssue is a single style finding, independent of the hard errors and
// warnings the assembler itself raises.
type LintIssue struct {
	Level   LintLevel
	Line    int
	Message string
	Code string
}

func (i *LintIssue) String() string {
	return fmt.Sprintf("line %d: %s: %s [%s]", i.Line, i.Level, i.Message, i.Code)
}

// LintOptions controls which style checks run.
type LintOptions struct {
	CheckTrailingWhitespace bool
	CheckTabs               bool
	CheckMnemonicCase       bool
	CheckUnusedLabels       bool
}

// DefaultLintOptions enables every check.
func DefaultLintOptions() *LintOptions {
	return &LintOptions{
		CheckTrailingWhitespace: true,
		CheckTabs:               true,
		CheckMnemonicCase:       true,
		CheckUnusedLabels:       true,
	}
}

// Lint runs style checks over source (the raw, pre-expansion text) and
// over u's resolved symbol table, returning every finding sorted by line.
func Lint(source string, u *assemble.Unit, opts *LintOptions) []*LintIssue {
	if opts == nil {
		opts = DefaultLintOptions()
	}

	var issues []*LintIssue
	lines := strings.Split(source, "\n")

	for i, raw := range lines {
		lineNo := i + 1
		if opts.CheckTrailingWhitespace && raw != strings.TrimRight(raw, " \t") {
			issues = append(issues, &LintIssue{Level: LintInfo, Line: lineNo, Message: "trailing whitespace", Code: "TRAILING_WS"})
		}
		if opts.CheckTabs && strings.Contains(raw, "\t") {
			issues = append(issues, &LintIssue{Level: LintInfo, Line: lineNo, Message: "tab character in source line", Code: "TAB_CHAR"})
		}
		if opts.CheckMnemonicCase {
			trimmed := strings.TrimSpace(raw)
			fields := strings.Fields(trimmed)
			for _, f := range fields {
				if f != strings.ToLower(f) && f == strings.ToUpper(f) && len(f) > 1 {
					issues = append(issues, &LintIssue{Level: LintInfo, Line: lineNo, Message: fmt.Sprintf("uppercase token %q; mnemonics and directives are conventionally lowercase", f), Code: "MIXED_CASE"})
				}
			}
		}
	}

	if opts.CheckUnusedLabels && u != nil {
		for _, sym := range u.Symbols.Enumerate() {
			if !sym.DefinedHere {
				continue
			}
			if !referencedAnywhere(u, sym.Name) {
				issues = append(issues, &LintIssue{Level: LintWarning, Line: 0, Message: fmt.Sprintf("label %q is defined but never referenced", sym.Name), Code: "UNUSED_LABEL"})
			}
		}
	}

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Line < issues[j].Line })
	return issues
}

func referencedAnywhere(u *assemble.Unit, name string) bool {
	for _, e := range u.Image.Entries() {
		if e.SymbolRef == name {
			return true
		}
	}
	for _, ext := range u.Externals {
		if ext.Name == name {
			return true
		}
	}
	return false
}
