// Package normalizer builds canonical sub-records from raw extracted
// fields. The extraction service enforces no schema: entries may be bare
// strings, partial mappings, nulls or empty values. Every builder fills
// missing fields with documented defaults and drops what cannot carry
// information; none of them returns an error for data-shape problems.
package normalizer

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/verbale-labs/verbale-core/internal/coerce"
	"github.com/verbale-labs/verbale-core/internal/core/domain"
)

// Shareholders normalizes a raw shareholder list. Policy:
//   - an empty input yields a single placeholder with all defaults;
//   - non-empty strings become {nome: trimmed string};
//   - non-mapping, non-string entries and empty mappings are dropped;
//   - if nothing survives filtering, the placeholder is returned;
//   - surviving records get every missing or null field defaulted.
//
// Input order is preserved.
func Shareholders(raw []any) []domain.Shareholder {
	entries := make([]map[string]any, 0, len(raw))
	for _, e := range raw {
		switch v := e.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				entries = append(entries, map[string]any{"nome": s})
			}
		case map[string]any:
			if len(v) > 0 {
				entries = append(entries, v)
			}
		}
	}

	if len(entries) == 0 {
		return []domain.Shareholder{placeholderShareholder()}
	}

	out := make([]domain.Shareholder, 0, len(entries))
	for _, m := range entries {
		rec := placeholderShareholder()
		decodeInto(m, &rec)
		rec.Name = strings.TrimSpace(rec.Name)
		out = append(out, rec)
	}
	return out
}

func placeholderShareholder() domain.Shareholder {
	return domain.Shareholder{
		Name:                "",
		Participation:       domain.ParticipationDirect,
		ProxyHolder:         "",
		SubjectType:         domain.SubjectNaturalPerson,
		LegalRepresentative: "",
		StakePercentage:     "",
		StakeAmount:         "",
		Present:             true,
	}
}

// decodeInto overlays a raw mapping onto a pre-defaulted record.
// Null values are stripped first so defaults survive, and fields that
// fail to coerce are left at their default rather than aborting the
// record.
func decodeInto(raw map[string]any, target any) {
	clean := make(map[string]any, len(raw))
	for k, v := range raw {
		if v == nil {
			continue
		}
		clean[k] = v
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook:       boolSpellingHook,
	})
	if err != nil {
		return
	}
	// Decode errors mean individual malformed fields; everything that
	// could be set has been set, the rest keeps its default.
	_ = dec.Decode(clean)
}

// boolSpellingHook routes conversions into bool fields through the
// mixed representation table ("si", "sì", "no", "1", ...).
func boolSpellingHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() == reflect.Bool && from.Kind() != reflect.Bool {
		return coerce.Bool(data), nil
	}
	return data, nil
}
