package logutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	logger := GetLogger("[foo] ")
	var sb strings.Builder
	SetOutput(&sb)
	t.Cleanup(func() { SetOutput(io.Discard) })

	logger.Println("message")
	if got := sb.String(); !strings.HasPrefix(got, "[foo] ") || !strings.HasSuffix(got, "message\n") {
		t.Errorf("got log output %q", got)
	}

	// Loggers obtained after SetOutput also use the new output.
	sb.Reset()
	GetLogger("[bar] ").Println("another")
	if got := sb.String(); !strings.HasPrefix(got, "[bar] ") {
		t.Errorf("got log output %q", got)
	}
}

func TestSetOutputFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "log")
	if err := SetOutputFile(name); err != nil {
		t.Fatal(err)
	}
	GetLogger("[file] ").Println("to file")
	if err := SetOutputFile(""); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[file] ") {
		t.Errorf("log file contains %q", data)
	}
}

func TestSetOutputFile_Error(t *testing.T) {
	err := SetOutputFile(filepath.Join(t.TempDir(), "no", "such", "dir", "log"))
	if err == nil {
		t.Errorf("SetOutputFile with bad path returned nil error")
	}
}
