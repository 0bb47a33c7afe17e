package normalizer

import (
	"strings"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
)

// Administrators normalizes a raw administrator list. When the list is
// empty but the sources carried a representative name, that single name
// becomes the sole administrator ("Amministratore Unico"); with no
// signal at all a placeholder is emitted so downstream consumers always
// see at least one record. Survivors get present (true), role
// (defaulted when blank) and assente_giustificato (false) backfilled.
func Administrators(raw []any, fallbackRepresentative string) []domain.Administrator {
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
		fallback := strings.TrimSpace(fallbackRepresentative)
		if fallback != "" {
			return []domain.Administrator{{
				Name:    fallback,
				Role:    domain.DefaultAdministratorRole,
				Present: true,
			}}
		}
		return []domain.Administrator{{Present: true}}
	}

	out := make([]domain.Administrator, 0, len(entries))
	for _, m := range entries {
		rec := domain.Administrator{Present: true}
		decodeInto(m, &rec)
		rec.Name = strings.TrimSpace(rec.Name)
		if strings.TrimSpace(rec.Role) == "" {
			rec.Role = domain.DefaultAdministratorRole
		}
		out = append(out, rec)
	}
	return out
}
