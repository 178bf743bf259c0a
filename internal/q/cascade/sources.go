package cascade

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// source supplies flat configuration values. Keys are lowercased; values are nil, bool, int, float64, string, or []string.
type source interface {
	name() string
	provenance() Provenance
	values() (map[string]any, error)
}

type defaultsSource struct {
	m map[string]any
}

type jsonFileSource struct {
	path string // expanded with ExpandPath at load time
}

type envSource struct {
	keyToEnv map[string]string // config key -> env var name
}

// WithDefaults registers m as a source of default values. Keys are matched case-insensitively. A nil map contributes no values.
func (c *Loader) WithDefaults(m map[string]any) *Loader {
	c.sources = append(c.sources, &defaultsSource{m: m})
	return c
}

// WithJSONFile registers a JSON file as a source. The file is read at load time; a missing file is skipped.
func (c *Loader) WithJSONFile(path string) *Loader {
	c.sources = append(c.sources, &jsonFileSource{path: path})
	return c
}

// WithNearestJSONFile searches upward from start (a directory or file; if empty, the working directory) for the first non-empty file named fileName and registers it. It panics
// if fileName is absolute. If no file is found, the loader is unchanged.
func (c *Loader) WithNearestJSONFile(fileName string, start string) *Loader {
	if filepath.IsAbs(fileName) {
		panic("fileName shouldn't be absolute")
	}

	if start == "" {
		if wd, err := os.Getwd(); err == nil {
			start = wd
		}
	}
	if start == "" {
		return c
	}
	if fi, err := os.Stat(start); err == nil && !fi.IsDir() {
		start = filepath.Dir(start)
	}

	for dir := start; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, fileName)
		if data, err := os.ReadFile(candidate); err == nil && strings.TrimSpace(string(data)) != "" {
			c.sources = append(c.sources, &jsonFileSource{path: candidate})
			return c
		}
		if filepath.Dir(dir) == dir {
			return c
		}
	}
}

// WithEnv registers environment variables as a source. m maps a config key to an environment variable name.
func (c *Loader) WithEnv(m map[string]string) *Loader {
	c.sources = append(c.sources, &envSource{keyToEnv: m})
	return c
}

func (s *defaultsSource) name() string           { return "Defaults" }
func (s *defaultsSource) provenance() Provenance { return Provenance{SourceType: "default"} }

func (s *defaultsSource) values() (map[string]any, error) {
	out := make(map[string]any, len(s.m))
	for k, v := range s.m {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, fmt.Errorf("key '%s': %w", k, err)
		}
		if err := put(out, k, nv); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *jsonFileSource) name() string { return "JSON File: " + s.path }

func (s *jsonFileSource) provenance() Provenance {
	return Provenance{SourceType: "json_file", SourceIdentifier: ExpandPath(s.path)}
}

func (s *jsonFileSource) values() (map[string]any, error) {
	data, err := os.ReadFile(ExpandPath(s.path))
	if err != nil {
		return nil, fmt.Errorf("read json file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return map[string]any{}, nil
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	out := make(map[string]any, len(obj))
	for k, v := range obj {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, fmt.Errorf("key '%s': %w", k, err)
		}
		if err := put(out, k, nv); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *envSource) name() string           { return "ENV" }
func (s *envSource) provenance() Provenance { return Provenance{SourceType: "env"} }

// values returns the set, non-empty variables. An empty variable does not override lower sources.
func (s *envSource) values() (map[string]any, error) {
	out := map[string]any{}
	for key, envVar := range s.keyToEnv {
		if envVar == "" {
			continue
		}
		if val := os.Getenv(envVar); val != "" {
			if err := put(out, key, val); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// put stores v under the lowercased key, rejecting keys that differ only in case.
func put(m map[string]any, key string, v any) error {
	lower := strings.ToLower(key)
	if _, exists := m[lower]; exists {
		return fmt.Errorf("key conflict: key '%s' was already set", key)
	}
	m[lower] = v
	return nil
}

// normalizeValue converts Go and JSON-decoded values (JSON arrays are []any) into the flat value types. Objects are not supported.
func normalizeValue(v any) (any, error) {
	switch vv := v.(type) {
	case nil, bool, int, float64, string, []string:
		return vv, nil
	case []any:
		out := make([]string, len(vv))
		for i, e := range vv {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("array element %d: expected string, got %T", i, e)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("type %T is not allowed", v)
	}
}
