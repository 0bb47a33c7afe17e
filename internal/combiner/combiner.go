// Package combiner merges per-document extraction results into one
// canonical record. One extraction run produces a record per source
// document (registry extract, identity document, financial statement);
// the combiner resolves field-level conflicts by source priority,
// repairs the shapes the extraction service is known to mangle and
// hands the person lists to the normalizer. It never fails on malformed
// input: a broken field degrades to its default so one bad value cannot
// block assembly of the rest of the document.
package combiner

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/verbale-labs/verbale-core/internal/coerce"
	"github.com/verbale-labs/verbale-core/internal/core/domain"
	"github.com/verbale-labs/verbale-core/internal/normalizer"
)

// Source is one per-document extraction result. Higher priority wins
// field conflicts; ties are broken by name so the merge is independent
// of slice order.
type Source struct {
	Name     string
	Priority int
	Fields   map[string]any
}

// booleanFields are the top-level keys coerced through the mixed
// boolean representation table.
var booleanFields = map[string]struct{}{
	"presente":               {},
	"audioconferenza":        {},
	"voto_palese":            {},
	"documenti_allegati":     {},
	"collegio_sindacale":     {},
	"revisore_presente":      {},
	"partecipante_straniero": {},
}

// personListFields are the keys holding person lists, which get the
// delimited-name splitting treatment when they arrive as plain strings.
var personListFields = map[string]struct{}{
	"soci":           {},
	"amministratori": {},
}

// Combiner merges extraction sources into canonical records.
// Stateless apart from the logger: every call operates on its own data,
// nothing is memoized across calls.
type Combiner struct {
	logger *slog.Logger
}

// New creates a Combiner.
func New(logger *slog.Logger) *Combiner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Combiner{logger: logger}
}

// Combine merges the sources and builds the canonical record.
func (c *Combiner) Combine(sources []Source) *domain.CanonicalRecord {
	merged := c.MergeFields(sources)

	representative := strings.TrimSpace(stringify(merged["rappresentante"]))

	shareholders := normalizer.Shareholders(asList(merged["soci"]))
	administrators := normalizer.Administrators(asList(merged["amministratori"]), representative)
	officers := normalizer.ChairAndSecretary(administrators, shareholders, representative)

	return &domain.CanonicalRecord{
		Company:        normalizer.Company(merged),
		Meeting:        normalizer.Meeting(merged),
		Shareholders:   shareholders,
		Administrators: administrators,
		Representative: representative,
		Chair:          officers.Chair,
		Secretary:      officers.Secretary,
		NormalizedAt:   time.Now().UTC(),
	}
}

// MergeFields resolves field-level conflicts and coerces every merged
// value: JSON-encoded strings are parsed, delimited name lists split,
// boolean-like fields routed through the representation table.
func (c *Combiner) MergeFields(sources []Source) map[string]any {
	ordered := make([]Source, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority > ordered[j].Priority
		}
		return ordered[i].Name < ordered[j].Name
	})

	merged := make(map[string]any)
	for _, src := range ordered {
		for key, value := range src.Fields {
			if _, taken := merged[key]; taken {
				continue
			}
			if isEmptyValue(value) {
				continue
			}
			merged[key] = value
		}
	}

	for key, value := range merged {
		merged[key] = c.coerceField(key, value)
	}
	return merged
}

// coerceField repairs one merged value. Strings that encode JSON lists
// or objects are parsed first: the extraction service occasionally
// serializes structured fields as text.
func (c *Combiner) coerceField(key string, value any) any {
	if s, ok := value.(string); ok {
		if parsed, ok := parseEncodedJSON(s); ok {
			value = parsed
		} else if _, isPersons := personListFields[key]; isPersons {
			value = splitNameList(s)
		}
	}

	if _, isBool := booleanFields[key]; isBool {
		if _, ok := value.(bool); !ok {
			c.logger.Debug("coercing boolean field", "field", key, "raw", fmt.Sprint(value))
		}
		return coerce.Bool(value)
	}
	return value
}

// parseEncodedJSON detects a string holding an encoded JSON list or
// object and parses it. Scalars encoded as JSON stay strings.
func parseEncodedJSON(s string) (any, bool) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}
	if !gjson.Valid(trimmed) {
		return nil, false
	}
	var out any
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		return nil, false
	}
	return out, true
}

// splitNameList turns a delimited list of names into entries, unless
// the string reads as a single full name. "Rossi, Mario" is two
// single-word halves of one name; "Mario Rossi, Luca Bianchi" is two
// people.
func splitNameList(s string) any {
	sep := ";"
	if !strings.Contains(s, sep) {
		sep = ","
	}
	if !strings.Contains(s, sep) {
		return s
	}

	var parts []string
	for _, p := range strings.Split(s, sep) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return s
	}

	if len(parts) == 2 && !strings.Contains(parts[0], " ") && !strings.Contains(parts[1], " ") {
		return s
	}

	out := make([]any, 0, len(parts))
	for _, p := range parts {
		out = append(out, p)
	}
	return out
}

// asList normalizes a merged field into the entry slice the normalizer
// expects. Single mappings and single strings become one-element lists.
func asList(value any) []any {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		return v
	case map[string]any:
		return []any{v}
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []any{v}
	default:
		return []any{v}
	}
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
