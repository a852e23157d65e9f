package main

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/gobstones/gbsc/internal/fixture"
)

func TestRunEmitTokensListsLexemes(t *testing.T) {
	files := fixture.Files("p.gbs", "program { }")

	code, out, errOut := captureEmit(t, func(w *os.File) int {
		return runEmitTokens(w, files)
	})

	if code != 0 {
		t.Fatalf("runEmitTokens exit=%d\nstderr:\n%s", code, errOut)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
	if !strings.Contains(out, "program") {
		t.Fatalf("token dump missing program keyword:\n%s", out)
	}
	if !strings.Contains(out, "EOF") {
		t.Fatalf("token dump missing trailing EOF:\n%s", out)
	}
}

func TestRunEmitASTTextReportsDefProgram(t *testing.T) {
	files := fixture.Files("p.gbs", "program { }")

	code, out, errOut := captureEmit(t, func(w *os.File) int {
		return runEmitAST(w, files)
	})

	if code != 0 {
		t.Fatalf("runEmitAST exit=%d\nstderr:\n%s", code, errOut)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
	if !strings.Contains(out, "DefProgram") {
		t.Fatalf("AST dump missing DefProgram:\n%s", out)
	}
}

func TestRunEmitASTJSONReportsTag(t *testing.T) {
	*astFormat = "json"
	defer func() { *astFormat = "text" }()

	files := fixture.Files("p.gbs", "program { }")

	code, out, errOut := captureEmit(t, func(w *os.File) int {
		return runEmitAST(w, files)
	})

	if code != 0 {
		t.Fatalf("runEmitAST exit=%d\nstderr:\n%s", code, errOut)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
	if !strings.Contains(out, `"tag": "DefProgram"`) {
		t.Fatalf("JSON AST missing tag field:\n%s", out)
	}
}

func TestRunCheckReportsFirstError(t *testing.T) {
	files := fixture.Files("p.gbs", "program { x := }")

	code, _, errOut := captureEmit(t, func(w *os.File) int {
		return runCheck(files)
	})

	if code != 1 {
		t.Fatalf("runCheck exit=%d, want 1", code)
	}
	if errOut == "" {
		t.Fatalf("expected a syntax error on stderr")
	}
}

// captureEmit redirects the process's stdout/stderr to pipes for the
// duration of fn, which also receives the stdout pipe's write end
// directly (the emit helpers take their output *os.File as an argument).
func captureEmit(t *testing.T, fn func(w *os.File) int) (code int, stdout string, stderr string) {
	t.Helper()

	oldStderr := os.Stderr
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stderr: %v", err)
	}
	os.Stderr = wErr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stdout: %v", err)
	}

	code = fn(wOut)

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stderr = oldStderr

	outBytes, _ := io.ReadAll(rOut)
	errBytes, _ := io.ReadAll(rErr)
	_ = rOut.Close()
	_ = rErr.Close()

	return code, string(outBytes), string(errBytes)
}
