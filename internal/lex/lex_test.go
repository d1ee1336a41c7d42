package lex

import "testing"

func TestNextWordSkipsWhitespace(t *testing.T) {
	c := NewCursor("   mov   r1, r2")
	word, delim := c.NextWord()
	if word != "mov" || delim != DelimSpace {
		t.Errorf("NextWord() = (%q, %v), want (mov, DelimSpace)", word, delim)
	}
}

func TestNextWordReturnsCommaDelimiter(t *testing.T) {
	c := NewCursor("r1,r2")
	word, delim := c.NextWord()
	if word != "r1," || delim != DelimComma {
		t.Errorf("NextWord() = (%q, %v), want (r1,, DelimComma)", word, delim)
	}
}

func TestNextWordReturnsColonDelimiter(t *testing.T) {
	c := NewCursor("LOOP: stop")
	word, delim := c.NextWord()
	if word != "LOOP:" || delim != DelimColon {
		t.Errorf("NextWord() = (%q, %v), want (LOOP:, DelimColon)", word, delim)
	}
}

func TestTrimDelim(t *testing.T) {
	if got := TrimDelim("r1,"); got != "r1" {
		t.Errorf("TrimDelim(r1,) = %q, want r1", got)
	}
	if got := TrimDelim("LOOP:"); got != "LOOP" {
		t.Errorf("TrimDelim(LOOP:) = %q, want LOOP", got)
	}
	if got := TrimDelim("r1"); got != "r1" {
		t.Errorf("TrimDelim(r1) = %q, want r1", got)
	}
}

func TestScanQuotedString(t *testing.T) {
	c := NewCursor(`"abc"`)
	body, ok := c.ScanQuotedString()
	if !ok || body != "abc" {
		t.Errorf("ScanQuotedString() = (%q, %v), want (abc, true)", body, ok)
	}
}

func TestScanQuotedStringUnterminated(t *testing.T) {
	c := NewCursor(`"abc`)
	_, ok := c.ScanQuotedString()
	if ok {
		t.Error("expected ok=false for an unterminated string")
	}
}

func TestIsRegister(t *testing.T) {
	for _, tok := range []string{"@r0", "@r7"} {
		if !IsRegister(tok) {
			t.Errorf("IsRegister(%q) = false, want true", tok)
		}
	}
	for _, tok := range []string{"@r8", "@x1", "r1", "@"} {
		if IsRegister(tok) {
			t.Errorf("IsRegister(%q) = true, want false", tok)
		}
	}
}

func TestIsNumber(t *testing.T) {
	for _, tok := range []string{"5", "-3", "+17", "0"} {
		if !IsNumber(tok) {
			t.Errorf("IsNumber(%q) = false, want true", tok)
		}
	}
	for _, tok := range []string{"", "+", "-", "5a", "a5"} {
		if IsNumber(tok) {
			t.Errorf("IsNumber(%q) = true, want false", tok)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := map[string]Kind{
		"mov":    KindOpcode,
		".data":  KindDirective,
		"@r3":    KindRegister,
		"-17":    KindNumber,
		"LOOP":   KindLabel,
	}
	for tok, want := range cases {
		if got := Classify(tok); got != want {
			t.Errorf("Classify(%q) = %v, want %v", tok, got, want)
		}
	}
}
