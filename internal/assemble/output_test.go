package assemble

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteOutputsObjectFileFormat(t *testing.T) {
	u := FirstPass("t.as", ".data 5,-3,17\n", nil)
	mustNotError(t, u)

	dir := t.TempDir()
	base := filepath.Join(dir, "prog")
	if err := WriteOutputs(u, base); err != nil {
		t.Fatalf("WriteOutputs: %v", err)
	}

	got, err := os.ReadFile(base + ".ob")
	if err != nil {
		t.Fatalf("reading .ob: %v", err)
	}
	want := "0\t3\nAF\n/9\nAR\n"
	if string(got) != want {
		t.Errorf(".ob content = %q, want %q", got, want)
	}

	if _, err := os.Stat(base + ".ent"); !os.IsNotExist(err) {
		t.Error(".ent must not be written when there are no entry symbols")
	}
	if _, err := os.Stat(base + ".ext"); !os.IsNotExist(err) {
		t.Error(".ext must not be written when there are no external symbols")
	}
}

func TestWriteOutputsEntriesAndExternals(t *testing.T) {
	src := ".entry M\n.extern K\nM: jmp K\n"
	u := FirstPass("t.as", src, nil)
	mustNotError(t, u)
	SecondPass(u)
	mustNotError(t, u)

	dir := t.TempDir()
	base := filepath.Join(dir, "prog")
	if err := WriteOutputs(u, base); err != nil {
		t.Fatalf("WriteOutputs: %v", err)
	}

	ent, err := os.ReadFile(base + ".ent")
	if err != nil {
		t.Fatalf("reading .ent: %v", err)
	}
	if string(ent) != "M\t100\n" {
		t.Errorf(".ent content = %q, want %q", ent, "M\t100\n")
	}

	ext, err := os.ReadFile(base + ".ext")
	if err != nil {
		t.Fatalf("reading .ext: %v", err)
	}
	if string(ext) != "K\t101\n" {
		t.Errorf(".ext content = %q, want %q", ext, "K\t101\n")
	}
}

func TestWriteOutputsNoTempFilesLeftBehind(t *testing.T) {
	u := FirstPass("t.as", ".data 1\n", nil)
	mustNotError(t, u)

	dir := t.TempDir()
	base := filepath.Join(dir, "prog")
	if err := WriteOutputs(u, base); err != nil {
		t.Fatalf("WriteOutputs: %v", err)
	}
	if _, err := os.Stat(base + ".ob.tmp"); !os.IsNotExist(err) {
		t.Error("temp file must not remain after a successful write")
	}
}
