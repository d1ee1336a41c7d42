package assemble

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lookbusy1344/asm12/internal/diag"
	"github.com/lookbusy1344/asm12/internal/encode"
	"github.com/lookbusy1344/asm12/internal/image"
	"github.com/lookbusy1344/asm12/internal/lex"
	"github.com/lookbusy1344/asm12/internal/macro"
	"github.com/lookbusy1344/asm12/internal/symtab"
)

// FirstPass consumes the macro-expanded source and builds the symbol
// table, data image, and address assignment for one file. macros may be
// nil if the source never went through the preprocessor.
func FirstPass(filename, source string, macros *macro.Table) *Unit {
	u := NewUnit(filename)
	lines := strings.Split(source, "\n")

	for i, raw := range lines {
		pos := diag.Position{File: filename, Line: i + 1}
		if len(raw) > MaxLineLength {
			u.Sink.Error(pos, diag.LineTooLong, fmt.Sprintf("line exceeds %d characters", MaxLineLength))
			continue
		}
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if trimmed[0] == ';' {
			continue
		}
		processLine(u, macros, pos, raw)
	}

	return u
}

func processLine(u *Unit, macros *macro.Table, pos diag.Position, raw string) {
	cur := lex.NewCursor(raw)
	word, delim := cur.NextWord()
	if word == "" {
		return
	}

	var label string
	hasLabel := false
	if delim == lex.DelimColon {
		label = lex.TrimDelim(word)
		hasLabel = true
		word, delim = cur.NextWord()
	}

	if word == "" {
		if hasLabel {
			u.Sink.Error(pos, diag.InvalidSyntax, "label with no directive or instruction")
		}
		return
	}

	head := strings.ToLower(lex.TrimDelim(word))

	switch head {
	case ".data":
		declareLineLabel(u, macros, pos, label, hasLabel)
		handleData(u, cur, pos)
	case ".string":
		declareLineLabel(u, macros, pos, label, hasLabel)
		handleString(u, cur, pos)
	case ".entry":
		if hasLabel {
			u.Sink.Warn(pos, diag.MeaninglessLabel, "label before .entry is ignored")
		}
		handleEntry(u, macros, cur, pos)
	case ".extern":
		if hasLabel {
			u.Sink.Warn(pos, diag.MeaninglessLabel, "label before .extern is ignored")
		}
		handleExtern(u, macros, cur, pos)
	default:
		if !lex.Opcodes[head] {
			u.Sink.Error(pos, diag.InvalidOpcode, fmt.Sprintf("unknown instruction %q", head))
			return
		}
		if !declareLineLabel(u, macros, pos, label, hasLabel) {
			return
		}
		handleInstruction(u, head, cur, pos, delim)
	}
}

// declareLineLabel validates and declares a label found at the head of a
// directive/instruction line, at the address the line's first word will
// occupy. Returns false if the label was invalid (the line should be
// abandoned).
func declareLineLabel(u *Unit, macros *macro.Table, pos diag.Position, label string, has bool) bool {
	if !has {
		return true
	}
	if !validateLabel(label, macros) {
		kind := diag.InvalidLabel
		if startsWithDigit(label) {
			kind = diag.LabelStartsWithDigit
		}
		u.Sink.Error(pos, kind, fmt.Sprintf("invalid label %q", label))
		return false
	}
	addr := u.NextAddress
	if err := u.Symbols.Declare(label, addr, symtab.CodeOrData); err != nil {
		kind := diag.DuplicateLabel
		if err == symtab.ErrBothDirectives {
			kind = diag.BothDirectives
		}
		u.Sink.Error(pos, kind, fmt.Sprintf("%v: %q", err, label))
		return false
	}
	return true
}

func handleData(u *Unit, cur *lex.Cursor, pos diag.Position) {
	type item struct {
		literal bool
		value   int
		label   string
	}
	var items []item
	expectMore := true
	sawComma := false
	for expectMore {
		if cur.AtEnd() {
			if sawComma {
				u.Sink.Error(pos, diag.ExtraComma, "trailing comma in .data list")
				return
			}
			break
		}
		word, delim := cur.NextWord()
		raw := lex.TrimDelim(word)
		if raw == "" {
			u.Sink.Error(pos, diag.ExtraComma, "unexpected comma in .data list")
			return
		}
		if lex.IsNumber(raw) {
			v, err := strconv.Atoi(raw)
			if err != nil {
				u.Sink.Error(pos, diag.InvalidOperand, fmt.Sprintf("invalid .data value %q", raw))
				return
			}
			if !encode.InRange(v) {
				u.Sink.Error(pos, diag.InvalidValue, fmt.Sprintf("value %d out of 12-bit range", v))
				return
			}
			items = append(items, item{literal: true, value: v})
		} else {
			items = append(items, item{label: raw})
		}
		if delim == lex.DelimComma {
			expectMore = true
			sawComma = true
		} else {
			expectMore = false
			sawComma = false
		}
	}

	if len(items) == 0 {
		u.Sink.Error(pos, diag.EmptyDirective, ".data requires at least one value")
		return
	}
	if cur.Rest() != "" {
		u.Sink.Error(pos, diag.ExtraText, "text after .data list")
		return
	}

	for _, it := range items {
		addr := u.reserve(1)
		if it.literal {
			u.Image.Append(addr, image.VariantImmediateValue, encode.Immediate(it.value))
		} else {
			u.Image.AppendDeferred(addr, image.VariantImmediateValue, it.label)
			u.Symbols.Reference(it.label)
		}
		u.DC++
	}
}

func handleString(u *Unit, cur *lex.Cursor, pos diag.Position) {
	body, ok := cur.ScanQuotedString()
	if !ok {
		if cur.Rest() == "" {
			u.Sink.Error(pos, diag.EmptyDirective, ".string requires a quoted value")
		} else {
			u.Sink.Error(pos, diag.MissingQuote, "unterminated string literal")
		}
		return
	}
	if cur.Rest() != "" {
		u.Sink.Error(pos, diag.ExtraText, "text after .string literal")
		return
	}
	if body == "" {
		u.Sink.Error(pos, diag.EmptyDirective, ".string requires at least one character")
		return
	}
	for i := 0; i < len(body); i++ {
		addr := u.reserve(1)
		u.Image.Append(addr, image.VariantImmediateValue, encode.Immediate(int(body[i])))
		u.DC++
	}
	addr := u.reserve(1)
	u.Image.Append(addr, image.VariantImmediateValue, encode.Immediate(0))
	u.DC++
}

func handleEntry(u *Unit, macros *macro.Table, cur *lex.Cursor, pos diag.Position) {
	word, _ := cur.NextWord()
	name := lex.TrimDelim(word)
	if name == "" {
		u.Sink.Warn(pos, diag.EmptyDirective, ".entry requires a symbol name")
		return
	}
	if !validateLabel(name, macros) {
		u.Sink.Error(pos, diag.InvalidLabel, fmt.Sprintf("invalid label %q", name))
		return
	}
	if cur.Rest() != "" {
		u.Sink.Error(pos, diag.ExtraText, "text after .entry name")
		return
	}
	if _, err := u.Symbols.DeclareEntry(name); err != nil {
		u.Sink.Error(pos, diag.BothDirectives, fmt.Sprintf("%q is both external and an entry", name))
	}
}

func handleExtern(u *Unit, macros *macro.Table, cur *lex.Cursor, pos diag.Position) {
	word, _ := cur.NextWord()
	name := lex.TrimDelim(word)
	if name == "" {
		u.Sink.Warn(pos, diag.EmptyDirective, ".extern requires a symbol name")
		return
	}
	if !validateLabel(name, macros) {
		u.Sink.Error(pos, diag.InvalidLabel, fmt.Sprintf("invalid label %q", name))
		return
	}
	if cur.Rest() != "" {
		u.Sink.Error(pos, diag.ExtraText, "text after .extern name")
		return
	}
	if _, err := u.Symbols.DeclareExternal(name); err != nil {
		u.Sink.Error(pos, diag.BothDirectives, fmt.Sprintf("%q is both external and locally defined", name))
	}
}

func handleInstruction(u *Unit, mnemonic string, cur *lex.Cursor, pos diag.Position, headDelim lex.Delim) {
	count := operandCount[mnemonic]
	if count == 0 {
		if cur.Rest() != "" {
			u.Sink.Error(pos, diag.TooManyOperands, fmt.Sprintf("%s takes no operands", mnemonic))
			return
		}
		addr := u.reserve(1)
		word := encode.Instruction(-1, -1, opcodeNumber[mnemonic], encode.AREAbsolute)
		u.Image.Append(addr, image.VariantInstruction, word)
		u.IC++
		return
	}

	operands := make([]operand, 0, count)
	for i := 0; i < count; i++ {
		if cur.AtEnd() {
			u.Sink.Error(pos, diag.MissingOperand, fmt.Sprintf("%s expects %d operand(s)", mnemonic, count))
			return
		}
		word, delim := cur.NextWord()
		raw := lex.TrimDelim(word)
		if raw == "" {
			u.Sink.Error(pos, diag.ExtraComma, "unexpected comma")
			return
		}
		op, ok := parseOperand(raw)
		if !ok {
			u.Sink.Error(pos, diag.InvalidOperand, fmt.Sprintf("invalid operand %q", raw))
			return
		}
		operands = append(operands, op)

		last := i == count-1
		if !last && delim != lex.DelimComma {
			u.Sink.Error(pos, diag.MissingComma, "expected comma between operands")
			return
		}
		if last && delim == lex.DelimComma {
			u.Sink.Error(pos, diag.ExtraComma, "trailing comma after last operand")
			return
		}
	}

	if cur.Rest() != "" {
		u.Sink.Error(pos, diag.ExtraText, "text after last operand")
		return
	}

	var srcOp, destOp *operand
	if count == 2 {
		srcOp, destOp = &operands[0], &operands[1]
	} else {
		destOp = &operands[0]
	}

	if srcOp != nil {
		if legal, ok := srcLegal[mnemonic]; !ok || !legal[srcOp.mode] {
			u.Sink.Error(pos, diag.IllegalOperand, fmt.Sprintf("illegal src addressing mode for %s", mnemonic))
			return
		}
	}
	if destOp != nil {
		if legal, ok := destLegal[mnemonic]; !ok || !legal[destOp.mode] {
			u.Sink.Error(pos, diag.IllegalOperand, fmt.Sprintf("illegal dest addressing mode for %s", mnemonic))
			return
		}
	}

	srcMode := encode.Mode(-1)
	destMode := encode.Mode(-1)
	if srcOp != nil {
		srcMode = srcOp.mode
	}
	if destOp != nil {
		destMode = destOp.mode
	}

	instrAddr := u.reserve(1)
	instrWord := encode.Instruction(srcMode, destMode, opcodeNumber[mnemonic], encode.AREAbsolute)
	u.Image.Append(instrAddr, image.VariantInstruction, instrWord)
	u.IC++

	switch count {
	case 1:
		if err := emitOperandWord(u, destOp, true); err != nil {
			u.Sink.Error(pos, diag.InvalidValue, err.Error())
		}
	case 2:
		if isRegisterLike(srcOp.mode) && isRegisterLike(destOp.mode) {
			addr := u.reserve(1)
			u.Image.Append(addr, image.VariantRegisterPair, encode.RegisterPair(srcOp.reg, destOp.reg))
			u.IC++
		} else {
			if err := emitOperandWord(u, srcOp, false); err != nil {
				u.Sink.Error(pos, diag.InvalidValue, err.Error())
			}
			if err := emitOperandWord(u, destOp, true); err != nil {
				u.Sink.Error(pos, diag.InvalidValue, err.Error())
			}
		}
	}
}

func emitOperandWord(u *Unit, op *operand, isDest bool) error {
	addr := u.reserve(1)
	u.IC++
	switch op.mode {
	case encode.ModeImmediate:
		if !encode.InRange(op.value) {
			u.Image.Append(addr, image.VariantImmediateValue, encode.Immediate(0))
			return fmt.Errorf("immediate value %d out of 12-bit range", op.value)
		}
		u.Image.Append(addr, image.VariantImmediateValue, encode.Immediate(op.value))
	case encode.ModeDirect:
		u.Image.AppendDeferred(addr, image.VariantAddressReference, op.label)
		u.Symbols.Reference(op.label)
	case encode.ModeRegister, encode.ModeIndirectRegister:
		var w encode.Word
		if isDest {
			w = encode.SingleRegisterDest(op.reg)
		} else {
			w = encode.SingleRegisterSrc(op.reg)
		}
		u.Image.Append(addr, image.VariantSingleRegister, w)
	}
	return nil
}
