package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hello", String("key", "value"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if record["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", record["msg"])
	}
	if record["key"] != "value" {
		t.Errorf("key = %v, want value", record["key"])
	}
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug("scrape started")
	if !strings.Contains(buf.String(), "scrape started") {
		t.Errorf("output missing message: %s", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("info record emitted at warn level: %s", buf.String())
	}

	logger.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("warn record missing: %s", buf.String())
	}
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	base, err := New(Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	NewComponentLogger(base, "scraper").Info("page fetched")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record[FieldComponent] != "scraper" {
		t.Errorf("component = %v, want scraper", record[FieldComponent])
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("dropped", Error(nil))
	// nothing to assert beyond not panicking
}
