package assemble

import (
	"strconv"
	"strings"

	"github.com/lookbusy1344/asm12/internal/encode"
)

// operand is one parsed instruction operand.
type operand struct {
	mode  encode.Mode
	reg   int    // valid when mode is Register or IndirectRegister
	value int    // valid when mode is Immediate
	label string // valid when mode is Direct
}

// parseOperand classifies a single operand token against the addressing
// grammar:
//
//	'#' signed-int   -- immediate  (mode 0)
//	ident            -- direct     (mode 1)
//	'*' ident        -- indirect via register (mode 3); ident must be r0-r7
//	'@r' digit       -- register   (mode 5)
func parseOperand(tok string) (operand, bool) {
	if tok == "" {
		return operand{}, false
	}
	switch {
	case tok[0] == '#':
		v, err := strconv.Atoi(tok[1:])
		if err != nil {
			return operand{}, false
		}
		return operand{mode: encode.ModeImmediate, value: v}, true

	case tok[0] == '*':
		reg, ok := parseBareRegister(tok[1:])
		if !ok {
			return operand{}, false
		}
		return operand{mode: encode.ModeIndirectRegister, reg: reg}, true

	case strings.HasPrefix(tok, "@r") && len(tok) == 3 && tok[2] >= '0' && tok[2] <= '7':
		return operand{mode: encode.ModeRegister, reg: int(tok[2] - '0')}, true

	default:
		return operand{mode: encode.ModeDirect, label: tok}, true
	}
}

// parseBareRegister parses the register name following the '*' indirect
// marker (e.g. "r3"), without the '@' prefix used by direct register mode.
func parseBareRegister(s string) (int, bool) {
	if len(s) != 2 || s[0] != 'r' {
		return 0, false
	}
	if s[1] < '0' || s[1] > '7' {
		return 0, false
	}
	return int(s[1] - '0'), true
}

// operandCount is the number of operands each opcode takes.
var operandCount = map[string]int{
	"mov": 2, "cmp": 2, "add": 2, "sub": 2, "lea": 2,
	"not": 1, "clr": 1, "inc": 1, "dec": 1, "jmp": 1,
	"bne": 1, "red": 1, "prn": 1, "jsr": 1,
	"rts": 0, "stop": 0,
}

// modeSet is a set of legal addressing modes for one operand position.
type modeSet map[encode.Mode]bool

var allModes = modeSet{encode.ModeImmediate: true, encode.ModeDirect: true, encode.ModeIndirectRegister: true, encode.ModeRegister: true}
var directOnly = modeSet{encode.ModeDirect: true}
var destOnly = modeSet{encode.ModeDirect: true, encode.ModeIndirectRegister: true, encode.ModeRegister: true}
var jumpDest = modeSet{encode.ModeDirect: true, encode.ModeIndirectRegister: true}
var movArithSrc = modeSet{encode.ModeImmediate: true, encode.ModeDirect: true, encode.ModeIndirectRegister: true, encode.ModeRegister: true}
var none = modeSet{}

// srcLegal and destLegal give the allowed addressing modes per opcode.
var srcLegal = map[string]modeSet{
	"mov": movArithSrc, "add": movArithSrc, "sub": movArithSrc,
	"cmp": allModes,
	"lea": directOnly,
}

var destLegal = map[string]modeSet{
	"mov": destOnly, "add": destOnly, "sub": destOnly,
	"cmp": allModes,
	"lea": destOnly,
	"not": destOnly, "clr": destOnly, "inc": destOnly, "dec": destOnly, "red": destOnly,
	"jmp": jumpDest, "bne": jumpDest, "jsr": jumpDest,
	"prn": allModes,
}

// isRegisterLike reports whether a mode shares the register-pair word
// (register or indirect-register) rather than a word of its own.
func isRegisterLike(m encode.Mode) bool {
	return m == encode.ModeRegister || m == encode.ModeIndirectRegister
}
