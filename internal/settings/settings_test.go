package settings

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	if err := Save(path, Record{LoadFrom: "/tmp"}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	rec, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if rec.LoadFrom != "/tmp" {
		t.Errorf("LoadFrom = %q, want %q", rec.LoadFrom, "/tmp")
	}
}

func TestSave_WritesLoadfromKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := Save(path, Record{LoadFrom: "/srv/code/main.go"}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read settings file: %v", err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("settings file is not valid JSON: %v", err)
	}
	if len(raw) != 1 || raw["loadfrom"] != "/srv/code/main.go" {
		t.Errorf("settings file = %s, want only loadfrom", data)
	}
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"loadfrom":"/a","junk":"`+strings.Repeat("x", 100)+`"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, Record{LoadFrom: "/b"}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "junk") {
		t.Errorf("old content survived: %s", data)
	}
}

func TestSave_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.json")
	if err := Save(path, Record{LoadFrom: "/x"}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("settings file not created: %v", err)
	}
}

func TestLoad_MissingCreatesDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(t.TempDir(), "settings.json")

	rec, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if rec.LoadFrom != home {
		t.Errorf("LoadFrom = %q, want home %q", rec.LoadFrom, home)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Load did not create the settings file: %v", err)
	}
	var onDisk Record
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("created file is not valid JSON: %v", err)
	}
	if onDisk.LoadFrom != home {
		t.Errorf("file loadfrom = %q, want %q", onDisk.LoadFrom, home)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed settings")
	} else if !strings.Contains(err.Error(), "parsing settings file") {
		t.Errorf("error = %v, want parsing error", err)
	}
}

func TestLoadOrDefault_MalformedWarnsAndKeepsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("[1,2"), 0o644); err != nil {
		t.Fatal(err)
	}

	var warn bytes.Buffer
	rec := LoadOrDefault(path, &warn)
	if rec.LoadFrom != home {
		t.Errorf("LoadFrom = %q, want %q", rec.LoadFrom, home)
	}
	if !strings.HasPrefix(warn.String(), "Warning:") {
		t.Errorf("warning = %q, want Warning prefix", warn.String())
	}
	data, _ := os.ReadFile(path)
	if string(data) != "[1,2" {
		t.Errorf("malformed file was rewritten: %q", data)
	}
}

func TestLoadOrDefault_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := Save(path, Record{LoadFrom: "/opt"}); err != nil {
		t.Fatal(err)
	}
	var warn bytes.Buffer
	rec := LoadOrDefault(path, &warn)
	if rec.LoadFrom != "/opt" {
		t.Errorf("LoadFrom = %q, want /opt", rec.LoadFrom)
	}
	if warn.Len() != 0 {
		t.Errorf("unexpected warning: %q", warn.String())
	}
}

func TestPath(t *testing.T) {
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd error: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir error: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	t.Setenv(EnvPath, "")
	if got := Path(); got != FileName {
		t.Errorf("Path() = %q, want %q", got, FileName)
	}

	t.Setenv(EnvPath, "/etc/redcode.json")
	if got := Path(); got != "/etc/redcode.json" {
		t.Errorf("Path() = %q, want env override", got)
	}
}

func TestRemember(t *testing.T) {
	rec := Record{LoadFrom: "/home/u"}
	if rec.Remember("") {
		t.Error("Remember(\"\") should report no change")
	}
	if rec.LoadFrom != "/home/u" {
		t.Errorf("LoadFrom changed on empty path: %q", rec.LoadFrom)
	}
	if !rec.Remember("/home/u/src/main.go") {
		t.Error("Remember should report a change")
	}
	if rec.LoadFrom != "/home/u/src/main.go" {
		t.Errorf("LoadFrom = %q, want the opened file path", rec.LoadFrom)
	}
}

func TestSetField(t *testing.T) {
	var rec Record
	if err := SetField(&rec, "loadfrom", "/var"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if rec.LoadFrom != "/var" {
		t.Errorf("LoadFrom = %q, want /var", rec.LoadFrom)
	}
	if err := SetField(&rec, "loadfrom", ""); err == nil {
		t.Error("expected error for empty loadfrom")
	}
	if err := SetField(&rec, "bogus", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}
