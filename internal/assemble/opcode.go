package assemble

// opcodeNumber is the 4-bit opcode field value for each mnemonic, the
// standard ordering for this instruction set (confirmed against the
// worked example "mov @r3,@r5", which encodes opcode field 0000).
var opcodeNumber = map[string]int{
	"mov": 0, "cmp": 1, "add": 2, "sub": 3,
	"not": 4, "clr": 5, "lea": 6, "inc": 7, "dec": 8,
	"jmp": 9, "bne": 10, "red": 11, "prn": 12, "jsr": 13,
	"rts": 14, "stop": 15,
}
