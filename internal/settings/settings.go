package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the default settings file name, relative to the working
// directory.
const FileName = "settings.json"

// EnvPath overrides the settings file location.
const EnvPath = "REDCODE_SETTINGS"

// Record is the persisted settings.
type Record struct {
	LoadFrom string `json:"loadfrom"`
}

// Default returns a Record pointing at the user's home directory.
func Default() (Record, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Record{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	return Record{LoadFrom: home}, nil
}

// Path returns the settings file location.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return FileName
}

// Load reads the record stored at path. If the file does not exist, a default
// record is written to path and returned.
func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			rec, err := Default()
			if err != nil {
				return Record{}, err
			}
			if err := Save(path, rec); err != nil {
				return Record{}, fmt.Errorf("creating settings file: %w", err)
			}
			return rec, nil
		}
		return Record{}, fmt.Errorf("reading settings file: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("parsing settings file: %w", err)
	}
	return rec, nil
}

// LoadOrDefault is like Load but never fails: unreadable or malformed
// settings produce a warning on warn and the default record. The broken file
// is left in place.
func LoadOrDefault(path string, warn io.Writer) Record {
	rec, err := Load(path)
	if err == nil {
		return rec
	}
	fmt.Fprintf(warn, "Warning: %v; using defaults\n", err)
	rec, err = Default()
	if err != nil {
		fmt.Fprintf(warn, "Warning: %v\n", err)
	}
	return rec
}

// Save writes rec to path, replacing any previous content.
func Save(path string, rec Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating settings directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// Remember records openedPath as the start location of the next open dialog.
// Empty paths are ignored.
func (r *Record) Remember(openedPath string) bool {
	if openedPath == "" {
		return false
	}
	r.LoadFrom = openedPath
	return true
}

// SetField sets a single settings field by key name. Returns error if key is unknown.
func SetField(rec *Record, key, value string) error {
	switch key {
	case "loadfrom":
		if value == "" {
			return fmt.Errorf("loadfrom must not be empty")
		}
		rec.LoadFrom = value
	default:
		return fmt.Errorf("unknown settings key: %s", key)
	}
	return nil
}
