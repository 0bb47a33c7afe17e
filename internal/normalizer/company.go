package normalizer

import (
	"fmt"
	"strings"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
)

// Company builds the company sub-record from raw extracted fields.
func Company(raw map[string]any) domain.Company {
	return domain.Company{
		Name:             rawString(raw, "denominazione"),
		RegisteredOffice: rawString(raw, "sede_legale"),
		TaxCode:          rawString(raw, "codice_fiscale"),
		ShareCapital:     ShareCapital(raw["capitale_sociale"]),
	}
}

// ShareCapital resolves the share-capital figure into its three money
// fields. A mapping is read field by field with per-field defaults; a
// scalar (the common extraction shape) is cleaned and applied to all
// three, falling back to the documented default when the cleaned string
// carries no figure at all.
func ShareCapital(raw any) domain.ShareCapital {
	if m, ok := raw.(map[string]any); ok {
		return domain.ShareCapital{
			Resolved:   stringOr(m["deliberato"], domain.DefaultCapitalResolved),
			Subscribed: stringOr(m["sottoscritto"], domain.DefaultCapitalSubscribed),
			Paid:       stringOr(m["versato"], domain.DefaultCapitalPaid),
		}
	}

	s := stringify(raw)
	s = strings.Trim(s, "{}\"' ")
	if !strings.ContainsAny(s, "0123456789.,") {
		s = domain.DefaultCapitalResolved
	}
	return domain.ShareCapital{Resolved: s, Subscribed: s, Paid: s}
}

func stringOr(v any, def string) string {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return def
	}
	return s
}

func rawString(m map[string]any, key string) string {
	return strings.TrimSpace(stringify(m[key]))
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
