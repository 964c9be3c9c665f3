// Package hydrate merges loosely-typed store documents into typed values.
package hydrate

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Hydrate merges a raw document into the typed value pointed to by out and
// reports whether any data was actually merged. Absent or empty documents
// leave out untouched and report false with no error. A document that fails
// to decode reports false together with the decode error, so that call sites
// can tell a malformed document apart from a missing one and log it.
//
// Keys prefixed with "_" are storage metadata and are dropped before the
// merge. Timestamps are normalized to RFC 3339 UTC strings so that string
// fields can receive them. Unknown keys are tolerated.
func Hydrate(doc map[string]any, out any) (bool, error) {
	if len(doc) == 0 {
		return false, nil
	}

	cleaned, ok := sanitize(doc).(map[string]any)
	if !ok || len(cleaned) == 0 {
		return false, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return false, err
	}

	if err := decoder.Decode(cleaned); err != nil {
		return false, fmt.Errorf("decoding document: %w", err)
	}

	return true, nil
}

// sanitize copies the value, dropping "_"-prefixed keys and converting
// timestamps to their canonical textual form. The input is never mutated.
func sanitize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		cleaned := make(map[string]any, len(v))
		for key, item := range v {
			if len(key) > 0 && key[0] == '_' {
				continue
			}
			cleaned[key] = sanitize(item)
		}
		return cleaned
	case []any:
		cleaned := make([]any, len(v))
		for i, item := range v {
			cleaned[i] = sanitize(item)
		}
		return cleaned
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return value
	}
}
