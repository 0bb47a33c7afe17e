package normalizer

import (
	"strings"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
)

// Officers holds the derived chair and secretary selection.
type Officers struct {
	Chair     string
	Secretary string
}

// ChairAndSecretary derives the two meeting roles. The chair is the
// first administrator with a non-empty name, falling back to the raw
// representative string: the role is typically executive, so
// administrators are preferred. The secretary is drawn from the
// combined pool, shareholders first, because the role is clerical and
// open to either group.
func ChairAndSecretary(administrators []domain.Administrator, shareholders []domain.Shareholder, fallbackRepresentative string) Officers {
	officers := Officers{Chair: strings.TrimSpace(fallbackRepresentative)}

	for _, a := range administrators {
		if a.Name != "" {
			officers.Chair = a.Name
			break
		}
	}

	for _, s := range shareholders {
		if s.Name != "" {
			officers.Secretary = s.Name
			break
		}
	}
	if officers.Secretary == "" {
		for _, a := range administrators {
			if a.Name != "" {
				officers.Secretary = a.Name
				break
			}
		}
	}

	return officers
}
