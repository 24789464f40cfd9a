package main

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"

	"github.com/gf-haseeb/taskdeck/task"
)

func TestParseID(t *testing.T) {
	if id, err := parseID("list", "42"); err != nil || id != 42 {
		t.Errorf("expected 42, got %d (%v)", id, err)
	}
	for _, bad := range []string{"0", "-1", "abc", ""} {
		if _, err := parseID("list", bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseStatus(t *testing.T) {
	status, err := parseStatus(" In_Progress ")
	if err != nil {
		t.Fatalf("failed to parse status: %v", err)
	}
	if status != task.StatusInProgress {
		t.Errorf("expected in_progress, got %q", status)
	}

	if _, err := parseStatus("archived"); !errors.Is(err, task.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestParsePriority(t *testing.T) {
	priority, err := parsePriority("HIGH")
	if err != nil {
		t.Fatalf("failed to parse priority: %v", err)
	}
	if priority != task.PriorityHigh {
		t.Errorf("expected high, got %q", priority)
	}

	if _, err := parsePriority("urgent"); !errors.Is(err, task.ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestParseDueDate(t *testing.T) {
	due, err := parseDueDate("2026-09-15")
	if err != nil {
		t.Fatalf("failed to parse due date: %v", err)
	}
	if due.Year() != 2026 || due.Month() != 9 || due.Day() != 15 {
		t.Errorf("unexpected date: %v", due)
	}

	if _, err := parseDueDate("2026-09-15T10:00:00Z"); err != nil {
		t.Errorf("expected RFC3339 to parse, got %v", err)
	}
	if _, err := parseDueDate("next tuesday"); err == nil {
		t.Error("expected error for freeform date")
	}
}

func TestHasChangedFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("title", "", "")
	flags.String("status", "", "")
	if err := flags.Parse([]string{"--title", "x"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}

	if !hasChangedFlags(flags, "title", "status") {
		t.Error("expected changed title to be detected")
	}
	if hasChangedFlags(flags, "status") {
		t.Error("expected status to be unchanged")
	}
}

func TestFormatTags(t *testing.T) {
	if got := formatTags(nil); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}
	if got := formatTags([]string{"a", "b"}); got != "a,b" {
		t.Errorf("expected 'a,b', got %q", got)
	}
}
