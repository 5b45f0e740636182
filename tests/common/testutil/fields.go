//go:build unit || e2e

package testutil

// Field sets key in the request map; a nil value removes the key
// entirely, which is how validation grids express a missing field.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
