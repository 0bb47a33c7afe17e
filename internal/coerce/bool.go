package coerce

import "strings"

// boolTable maps the spellings the extraction service emits for
// boolean-like fields, Italian and English, to their values.
var boolTable = map[string]bool{
	"true":  true,
	"false": false,
	"1":     true,
	"0":     false,
	"si":    true,
	"sì":    true,
	"no":    false,
}

// Bool coerces mixed boolean representations. Native booleans pass
// through, known spellings are looked up case-insensitively, numeric 1
// counts as true. Anything else is false; no error is ever raised.
func Bool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if b, ok := boolTable[strings.ToLower(strings.TrimSpace(v))]; ok {
			return b
		}
		return false
	case int:
		return v == 1
	case int64:
		return v == 1
	case float64:
		return v == 1
	default:
		return false
	}
}
