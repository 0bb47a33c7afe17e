package normalizer

import (
	"strings"

	"github.com/verbale-labs/verbale-core/internal/coerce"
	"github.com/verbale-labs/verbale-core/internal/core/domain"
)

// Meeting builds the meeting sub-record from raw extracted fields.
// Enum-like fields are matched loosely on the extraction spellings;
// anything unrecognized falls back to the ordinary, regularly-convened,
// unanimously-approved defaults.
func Meeting(raw map[string]any) domain.Meeting {
	return domain.Meeting{
		Date:           rawString(raw, "data_assemblea"),
		StartTime:      rawString(raw, "ora_assemblea_str"),
		EndTime:        rawString(raw, "ora_fine_str"),
		Location:       rawString(raw, "luogo_assemblea"),
		AssemblyKind:   assemblyKind(rawString(raw, "tipo_assemblea")),
		ConveningKind:  conveningKind(rawString(raw, "tipo_convocazione")),
		VoteOutcome:    voteOutcome(rawString(raw, "esito_votazione")),
		OpenBallot:     coerce.Bool(raw["voto_palese"]),
		Teleconference: coerce.Bool(raw["audioconferenza"]),
		AttachedDocs:   coerce.Bool(raw["documenti_allegati"]),
		OversightBoard: coerce.Bool(raw["collegio_sindacale"]),
		AuditorPresent: coerce.Bool(raw["revisore_presente"]),
		AuditorName:    rawString(raw, "nome_revisore"),
		ForeignSpeaker: coerce.Bool(raw["partecipante_straniero"]),
	}
}

func assemblyKind(s string) domain.AssemblyKind {
	if strings.Contains(strings.ToLower(s), "straordinaria") {
		return domain.AssemblyExtraordinary
	}
	return domain.AssemblyOrdinary
}

func conveningKind(s string) domain.ConveningKind {
	if strings.Contains(strings.ToLower(s), "totalitaria") {
		return domain.ConveningTotalAttendance
	}
	return domain.ConveningRegular
}

func voteOutcome(s string) domain.VoteOutcome {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "respint"):
		return domain.VoteRejected
	case strings.Contains(lower, "maggioranza"):
		return domain.VoteMajority
	default:
		return domain.VoteUnanimous
	}
}
