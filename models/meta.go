package models

// Meta is the open metadata mapping attached to every backend response.
// Keys vary per endpoint; values are the scalar/JSON variants produced by
// encoding/json. The typed accessors below keep call sites honest without
// closing the mapping to new backend keys.
type Meta map[string]any

// Provenance values reported under the "mode" key.
const (
	ModeAI       = "ai"       // answer came from the live AI backend
	ModeFallback = "fallback" // backend substituted a canned answer
	ModeDemo     = "demo"     // backend running without live data sources
)

// Mode returns the answer provenance tag, or "" when absent.
func (m Meta) Mode() string {
	return m.String("mode")
}

// Source returns the data source tag, or "" when absent.
func (m Meta) Source() string {
	return m.String("source")
}

// String returns the string value under key, or "" for missing/non-string.
func (m Meta) String(key string) string {
	v, _ := m[key].(string)
	return v
}

// Float returns the numeric value under key, or 0 for missing/non-numeric.
func (m Meta) Float(key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// Int returns the numeric value under key truncated to int.
// JSON numbers decode as float64, so both variants are handled.
func (m Meta) Int(key string) int {
	return int(m.Float(key))
}

// Bool returns the boolean value under key, or false for missing/non-bool.
func (m Meta) Bool(key string) bool {
	v, _ := m[key].(bool)
	return v
}
