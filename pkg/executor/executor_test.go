package executor

import (
	"context"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	out, err := New().Execute(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Execute() = %q, want hello", out)
	}
}

func TestExecuteFailureIncludesCommand(t *testing.T) {
	_, err := New().Execute(context.Background(), "false")
	if err == nil {
		t.Fatal("Execute() should fail for a non-zero exit")
	}
	if !strings.Contains(err.Error(), "'false'") {
		t.Errorf("error %q should name the command", err)
	}
}

func TestExecuteInDir(t *testing.T) {
	dir := t.TempDir()
	out, err := New().ExecuteInDir(context.Background(), dir, "pwd")
	if err != nil {
		t.Fatalf("ExecuteInDir() error = %v", err)
	}
	if !strings.Contains(strings.TrimSpace(out), dir) {
		t.Errorf("ExecuteInDir() ran in %q, want %q", out, dir)
	}
}

func TestLook(t *testing.T) {
	if _, err := New().Look("echo"); err != nil {
		t.Errorf("Look(echo) error = %v", err)
	}
	if _, err := New().Look("definitely-not-a-real-binary"); err == nil {
		t.Error("Look() should fail for a missing binary")
	}
}
