package protocol

import (
	"os"
	"path/filepath"
)

// LoadFile loads a single protocol XML file from disk.
func LoadFile(path string) (*Protocol, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(path, err)
	}
	defer f.Close()
	return Load(f)
}

// LoadDir loads every *.xml file directly inside dir, keyed by
// protocol name as declared in each document.
func LoadDir(dir string) (map[string]*Protocol, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newError(dir, err)
	}
	out := make(map[string]*Protocol)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".xml" {
			continue
		}
		proto, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out[proto.Name] = proto
	}
	return out, nil
}
