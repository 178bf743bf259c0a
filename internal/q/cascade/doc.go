// Package cascade loads layered configuration into a flat Go struct from multiple sources with predictable precedence.
//
// Register sources from lowest to highest priority using the With* methods, then call StrictlyLoad. Later sources overwrite earlier ones key by key.
//
// Sources
//   - Defaults from a map[string]any.
//   - JSON files read at load time. WithJSONFile registers a specific path. WithNearestJSONFile searches upward from a starting path for the first non-empty file with a given
//     relative name.
//   - Environment variables mapped to configuration keys via WithEnv. Missing and empty variables are ignored; present values are strings.
//
// Keys and coercion: keys are case-insensitive and match a field's cascade tag, json tag, or name (in that order). Unknown keys are ignored. Supported field kinds are bool, string,
// int, and []string. Strings are parsed into bools and ints, whole JSON numbers into ints, and a lone string into a one-element []string.
//
// Errors: StrictlyLoad fails fast when a readable source cannot be parsed or supplies a value that cannot be coerced. Missing sources, unreadable sources, and empty files are skipped.
// Errors name the source.
//
// Example
//
//	type Config struct {
//	    Host string
//	    Port int
//	}
//
//	var cfg Config
//	prov, err := New().
//	    WithDefaults(map[string]any{"host": "localhost", "port": 8080}).
//	    WithNearestJSONFile(".app.json", "").
//	    WithEnv(map[string]string{"host": "APP_HOST", "port": "APP_PORT"}).
//	    StrictlyLoad(&cfg)
package cascade
