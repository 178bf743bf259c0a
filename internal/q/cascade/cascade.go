package cascade

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Loader builds a prioritized cascade of configuration sources and applies them to a destination struct. The zero value is ready to use; New exists for fluent chaining.
type Loader struct {
	sources []source // ordered from low to high priority
}

// Provenance records which source last set a key.
type Provenance struct {
	SourceType       string // "default", "json_file", or "env"
	SourceIdentifier string // ex: "/path/to/file.json"; "" for defaults and env
}

func (p Provenance) String() string {
	if p.SourceIdentifier == "" {
		return p.SourceType
	}
	return p.SourceType + " " + p.SourceIdentifier
}

// Provenances maps each key that some source set to the source that set it last.
type Provenances map[string]Provenance

// Keys returns the keys in sorted order.
func (p Provenances) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// New returns a new Loader. It is equivalent to &Loader{}.
func New() *Loader {
	return &Loader{}
}

// StrictlyLoad loads configuration from c's sources into dest, from low to high priority. dest must be a non-nil pointer to a struct whose settable fields are bool, string, int, or
// []string (other fields are skipped unless a source names them, which is an error).
//
// It returns, for every key that was set, the source that set it last.
func (c *Loader) StrictlyLoad(dest any) (Provenances, error) {
	if dest == nil {
		return nil, fmt.Errorf("dest must be a non-nil pointer to struct")
	}
	destVal := reflect.ValueOf(dest)
	if destVal.Kind() != reflect.Ptr || destVal.IsNil() {
		return nil, fmt.Errorf("dest must be a non-nil pointer to struct")
	}
	structVal := destVal.Elem()
	if structVal.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dest must be a pointer to struct, got %s", structVal.Kind())
	}

	fields, err := indexFields(structVal.Type())
	if err != nil {
		return nil, err
	}

	prov := Provenances{}
	for _, src := range c.sources {
		m, err := src.values()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				continue
			}
			return nil, fmt.Errorf("%s: %w", src.name(), err)
		}

		for _, key := range sortedKeys(m) {
			idx, ok := fields[key]
			if !ok {
				continue
			}
			if err := setField(structVal.Field(idx), m[key]); err != nil {
				return nil, fmt.Errorf("%s: %s: %w", src.name(), key, err)
			}
			prov[key] = src.provenance()
		}
	}
	return prov, nil
}

// indexFields maps each settable field's lowercased key to its index.
func indexFields(t reflect.Type) (map[string]int, error) {
	fields := map[string]int{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		key := fieldKey(f)
		if key == "-" {
			continue
		}
		if prev, exists := fields[key]; exists {
			return nil, fmt.Errorf("struct contains case-insensitive field key collision for %q: %s and %s", key, t.Field(prev).Name, f.Name)
		}
		fields[key] = i
	}
	return fields, nil
}

// fieldKey returns the key for f: the cascade tag name, then the json tag name, then the field name, lowercased.
func fieldKey(f reflect.StructField) string {
	for _, tagName := range []string{"cascade", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(tagName), ",")
		name = strings.TrimSpace(name)
		if name == "-" && tagName == "cascade" {
			return "-"
		}
		if name != "" && name != "-" {
			return strings.ToLower(name)
		}
	}
	return strings.ToLower(f.Name)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// setField sets fVal from raw, coercing where reasonable. raw is one of nil, bool, int, float64, string, []string.
func setField(fVal reflect.Value, raw any) error {
	if raw == nil {
		return nil
	}

	switch fVal.Kind() {
	case reflect.Bool:
		switch v := raw.(type) {
		case bool:
			fVal.SetBool(v)
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("cannot parse bool from %q", v)
			}
			fVal.SetBool(b)
		default:
			return fmt.Errorf("cannot coerce %T to bool", raw)
		}

	case reflect.String:
		switch v := raw.(type) {
		case string:
			fVal.SetString(v)
		case bool:
			fVal.SetString(strconv.FormatBool(v))
		case int:
			fVal.SetString(strconv.Itoa(v))
		case float64:
			fVal.SetString(strconv.FormatFloat(v, 'f', -1, 64))
		default:
			return fmt.Errorf("cannot coerce %T to string", raw)
		}

	case reflect.Int:
		switch v := raw.(type) {
		case int:
			fVal.SetInt(int64(v))
		case float64:
			if v != math.Trunc(v) {
				return fmt.Errorf("cannot coerce %v to int", v)
			}
			fVal.SetInt(int64(v))
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("cannot parse int from %q", v)
			}
			fVal.SetInt(int64(n))
		default:
			return fmt.Errorf("cannot coerce %T to int", raw)
		}

	case reflect.Slice:
		if fVal.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice element type %s", fVal.Type().Elem().Kind())
		}
		var ss []string
		switch v := raw.(type) {
		case []string:
			ss = v
		case string:
			ss = []string{v}
		default:
			return fmt.Errorf("cannot coerce %T to []string", raw)
		}
		slice := reflect.MakeSlice(fVal.Type(), len(ss), len(ss))
		for i, s := range ss {
			slice.Index(i).SetString(s)
		}
		fVal.Set(slice)

	default:
		return fmt.Errorf("unsupported field kind %s", fVal.Kind())
	}
	return nil
}
