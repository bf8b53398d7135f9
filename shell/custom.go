package shell

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// normalizeStateDoc pre-processes a custom-state document before it
// reaches the engine deserializer: in every `columns[].hidden` list and
// in the top-level `deck` list, the sentinels "unknown" and -1 become
// the explicit unknown-card token and every other entry becomes its
// string form. All other fields pass through unmodified.
func normalizeStateDoc(raw []byte) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing custom state: %w", err)
	}

	if cols, ok := doc["columns"].([]any); ok {
		for _, entry := range cols {
			col, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			if hidden, ok := col["hidden"].([]any); ok {
				col["hidden"] = normalizeCards(hidden)
			}
		}
	}
	if deck, ok := doc["deck"].([]any); ok {
		doc["deck"] = normalizeCards(deck)
	}
	return json.Marshal(doc)
}

func normalizeCards(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, normalizeCard(v))
	}
	return out
}

func normalizeCard(v any) string {
	switch t := v.(type) {
	case string:
		if t == "unknown" {
			return "unknown"
		}
		return t
	case float64:
		if t == -1 {
			return "unknown"
		}
		if t == math.Trunc(t) {
			return strconv.Itoa(int(t))
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
