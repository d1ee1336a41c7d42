package encode

import "testing"

func TestBase64WordRoundTrip(t *testing.T) {
	cases := []Word{0, 1, 5, 17, 0xFFF, 0x800, 0x7FF}
	for _, w := range cases {
		s := Base64Word(w)
		got, err := DecodeBase64Word(s)
		if err != nil {
			t.Fatalf("DecodeBase64Word(%q): %v", s, err)
		}
		if got != w {
			t.Errorf("round trip: word %012b -> %q -> %012b", w, s, got)
		}
	}
}

func TestBase64WordKnownPairs(t *testing.T) {
	// 5 -> 000000000101 -> hi=000000 ('A'), lo=000101 ('F')
	if got := Base64Word(FromSigned(5)); got != "AF" {
		t.Errorf("Base64Word(5) = %q, want AF", got)
	}
	// -3 -> 111111111101 -> hi=111111 ('/'), lo=111101 ('9')
	if got := Base64Word(FromSigned(-3)); got != "/9" {
		t.Errorf("Base64Word(-3) = %q, want /9", got)
	}
	// 17 -> 000000010001 -> hi=000000 ('A'), lo=010001 ('R')
	if got := Base64Word(FromSigned(17)); got != "AR" {
		t.Errorf("Base64Word(17) = %q, want AR", got)
	}
}

func TestInRange(t *testing.T) {
	if !InRange(-2048) || !InRange(2047) {
		t.Error("boundary values -2048 and 2047 must be in range")
	}
	if InRange(-2049) || InRange(2048) {
		t.Error("values just outside the 12-bit range must be rejected")
	}
}

func TestFromSignedTwosComplement(t *testing.T) {
	if got := Binary12(FromSigned(-1)); got != "111111111111" {
		t.Errorf("FromSigned(-1) = %s, want all ones", got)
	}
	if got := Binary12(FromSigned(-2048)); got != "100000000000" {
		t.Errorf("FromSigned(-2048) = %s, want 100000000000", got)
	}
	if got := Binary12(FromSigned(2047)); got != "011111111111" {
		t.Errorf("FromSigned(2047) = %s, want 011111111111", got)
	}
}

// TestInstructionEncoding checks the S3 scenario: "mov @r3,@r5" encodes as
// instruction word 101 0000 101 00 with a shared register-pair word
// 00011 00101 00.
func TestInstructionEncoding(t *testing.T) {
	const movOpcode = 0 // opcode group order puts mov first
	w := Instruction(ModeRegister, ModeRegister, movOpcode, AREAbsolute)
	if got := Binary12(w); got != "101000010100" {
		t.Errorf("Instruction(reg,reg,mov,abs) = %s, want 101000010100", got)
	}

	pair := RegisterPair(3, 5)
	if got := Binary12(pair); got != "000110010100" {
		t.Errorf("RegisterPair(3,5) = %s, want 000110010100", got)
	}
}

func TestSingleRegisterWords(t *testing.T) {
	if got := Binary12(SingleRegisterDest(5)); got != "000000010100" {
		t.Errorf("SingleRegisterDest(5) = %s, want 000000010100", got)
	}
	if got := Binary12(SingleRegisterSrc(3)); got != "000110000000" {
		t.Errorf("SingleRegisterSrc(3) = %s, want 000110000000", got)
	}
}

func TestAddressReference(t *testing.T) {
	w := AddressReference(0, AREExternal)
	if got := Binary12(w); got != "000000000001" {
		t.Errorf("AddressReference(0, external) = %s, want 000000000001", got)
	}
	w = AddressReference(100, ARERelocatable)
	if got := Binary12(w); got != "000110010010" {
		t.Errorf("AddressReference(100, relocatable) = %s, want 000110010010", got)
	}
}

func TestDecodeBase64WordInvalid(t *testing.T) {
	if _, err := DecodeBase64Word("A"); err == nil {
		t.Error("expected error for a single-character input")
	}
	if _, err := DecodeBase64Word("A!"); err == nil {
		t.Error("expected error for a character outside the alphabet")
	}
}
