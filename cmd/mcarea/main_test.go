package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopheracademy/mcarea/montecarlo"
	"github.com/gopheracademy/mcarea/sweep"
)

const input = "0 0 5\n1 0 5\n0 1 5\n"

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	config.output = filepath.Join(dir, "data.csv")
	config.plot = ""
	config.seed = montecarlo.DefaultSeed
	config.progress = false
	config.sweep = sweep.Config{Start: 100, End: 1600, Step: 500, Runs: 3}
	return dir
}

func TestRun(t *testing.T) {
	setup(t)

	var status bytes.Buffer
	if err := run(strings.NewReader(input), &status); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "Processing N = 100\n" +
		"Processing N = 600\n" +
		"Processing N = 1100\n" +
		"Processing N = 1600\n" +
		"OK\n"
	if got := status.String(); got != want {
		t.Errorf("status mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	data, err := os.ReadFile(config.output)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 5 || lines[0] != "N,Narrow_Area,Wide_Area" {
		t.Errorf("Unexpected csv:\n%s", data)
	}
}

func TestRunReproducible(t *testing.T) {
	setup(t)

	var outputs [2][]byte
	for i := range outputs {
		if err := run(strings.NewReader(input), &bytes.Buffer{}); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		data, err := os.ReadFile(config.output)
		if err != nil {
			t.Fatal(err)
		}
		outputs[i] = data
	}
	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Errorf("Expected byte-identical output")
	}

	config.seed = 1
	if err := run(strings.NewReader(input), &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(config.output)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(outputs[0], data) {
		t.Errorf("Expected a different seed to change the output")
	}
}

func TestRunPlot(t *testing.T) {
	dir := setup(t)
	config.plot = filepath.Join(dir, "areas.png")

	if err := run(strings.NewReader(input), &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(config.plot); err != nil {
		t.Errorf("Expected plot file: %v", err)
	}
}

func TestRunBadInput(t *testing.T) {
	setup(t)
	var status bytes.Buffer
	if err := run(strings.NewReader("0 0 5 1 0"), &status); err == nil {
		t.Fatalf("Expected error for short input")
	}
	if status.Len() != 0 {
		t.Errorf("Expected no status output, got %q", status.String())
	}
}

func TestRunUnwritableOutput(t *testing.T) {
	dir := setup(t)
	config.output = filepath.Join(dir, "missing", "data.csv")
	if err := run(strings.NewReader(input), &bytes.Buffer{}); err == nil {
		t.Fatalf("Expected error for unwritable output path")
	}
}

func TestRunInvalidSweep(t *testing.T) {
	setup(t)
	config.sweep.End = 1
	if err := run(strings.NewReader(input), &bytes.Buffer{}); err == nil {
		t.Fatalf("Expected error for end before start")
	}
}

func TestPositiveVar(t *testing.T) {
	var n int64 = 5
	v := PositiveVar(&n)
	if v.String() != "5" {
		t.Errorf("Expected \"5\", got %q", v.String())
	}
	if err := v.Set("42"); err != nil || n != 42 {
		t.Errorf("Set(42): n=%d err=%v", n, err)
	}
	for _, s := range []string{"0", "-3", "x", ""} {
		if err := v.Set(s); err == nil {
			t.Errorf("Expected error for %q", s)
		}
	}
	if n != 42 {
		t.Errorf("Expected n unchanged after bad Set, got %d", n)
	}

	var runs int
	iv := PositiveIntVar(&runs)
	if err := iv.Set("10"); err != nil || runs != 10 {
		t.Errorf("Set(10): runs=%d err=%v", runs, err)
	}
	if err := iv.Set("0"); err == nil {
		t.Errorf("Expected error for 0 runs")
	}
}
