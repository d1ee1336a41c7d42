package assemble

import (
	"strings"

	"github.com/lookbusy1344/asm12/internal/lex"
	"github.com/lookbusy1344/asm12/internal/macro"
)

// validateLabel checks a label name: 1-31 characters, first character
// alphabetic, remainder alphanumeric, distinct from every opcode
// mnemonic, directive keyword, and macro name. Register tokens (@r0-@r7)
// can never collide with a valid label: a label can't contain '@'.
func validateLabel(name string, macros *macro.Table) bool {
	if name == "" || len(name) > MaxLabelLength {
		return false
	}
	if !isAlpha(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isAlphaNumeric(name[i]) {
			return false
		}
	}
	lower := strings.ToLower(name)
	if lex.Opcodes[lower] || lex.Directives[lower] {
		return false
	}
	if macros != nil {
		if _, ok := macros.Lookup(name); ok {
			return false
		}
	}
	return true
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlphaNumeric(b byte) bool {
	return isAlpha(b) || (b >= '0' && b <= '9')
}

// startsWithDigit reports whether name's first rune is a decimal digit —
// used to distinguish LabelStartsWithDigit from the generic InvalidLabel.
func startsWithDigit(name string) bool {
	return name != "" && name[0] >= '0' && name[0] <= '9'
}
