package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_DisabledByDefault(t *testing.T) {
	dir := t.TempDir()
	logFile, err := Setup(dir, false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
	if _, err := os.Stat(filepath.Join(dir, logFileName)); !os.IsNotExist(err) {
		t.Error("Expected no log file to be created")
	}
}

func TestSetup_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logFile, err := Setup(dir, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()
	defer Setup("", false)

	Log.Infof("session %s started", "abc")
	log.Println("std message")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "session abc started") {
		t.Error("Expected leveled message in log file")
	}
	if !strings.Contains(content, "std message") {
		t.Error("Expected standard logger message in log file")
	}
}

func TestSetup_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	// Write just over the rotation threshold
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	logFile, err := Setup(dir, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer logFile.Close()
	defer Setup("", false)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetup_NoStdoutStderr(t *testing.T) {
	logFile, err := Setup(t.TempDir(), true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer logFile.Close()
	defer Setup("", false)

	output := log.Writer()
	if output == os.Stdout || output == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}
