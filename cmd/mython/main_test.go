package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestRunWrongArgCountExitsOne(t *testing.T) {
	if code := run([]string{"mython", "only_one_arg"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunMissingInputFileExitsTwo(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.txt")
	code := run([]string{"mython", filepath.Join(dir, "does_not_exist.my"), outPath})
	if code != 2 {
		t.Fatalf("expected exit code 2 for a missing input file, got %d", code)
	}
}

func TestRunUnopenableOutputFileExitsTwo(t *testing.T) {
	dir := t.TempDir()
	inPath := writeFile(t, dir, "in.my", "print 1\n")
	code := run([]string{"mython", inPath, filepath.Join(dir, "missing-dir", "out.txt")})
	if code != 2 {
		t.Fatalf("expected exit code 2 for an unopenable output file, got %d", code)
	}
}

func TestRunSuccessWritesOutputAndExitsZero(t *testing.T) {
	dir := t.TempDir()
	inPath := writeFile(t, dir, "in.my", "print 1+2*3\n")
	outPath := filepath.Join(dir, "out.txt")

	code := run([]string{"mython", inPath, outPath})
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "7\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRunRuntimeErrorExitsOne(t *testing.T) {
	dir := t.TempDir()
	inPath := writeFile(t, dir, "in.my", "print 1/0\n")
	outPath := filepath.Join(dir, "out.txt")

	code := run([]string{"mython", inPath, outPath})
	if code != 1 {
		t.Fatalf("expected exit code 1 for a runtime error, got %d", code)
	}
}
