package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/verbale-labs/verbale-core/internal/core/domain"
)

func TestMeeting(t *testing.T) {
	got := Meeting(map[string]any{
		"data_assemblea":    "2024-04-30",
		"ora_assemblea_str": "10:00",
		"ora_fine_str":      "11:30",
		"luogo_assemblea":   "sede sociale",
		"tipo_assemblea":    "Assemblea Straordinaria",
		"tipo_convocazione": "totalitaria",
		"esito_votazione":   "approvata a maggioranza",
		"voto_palese":       "si",
		"audioconferenza":   "sì",
		"revisore_presente": true,
		"nome_revisore":     "Dott. Bruni",
	})

	assert.Equal(t, "2024-04-30", got.Date)
	assert.Equal(t, "10:00", got.StartTime)
	assert.Equal(t, "11:30", got.EndTime)
	assert.Equal(t, domain.AssemblyExtraordinary, got.AssemblyKind)
	assert.Equal(t, domain.ConveningTotalAttendance, got.ConveningKind)
	assert.Equal(t, domain.VoteMajority, got.VoteOutcome)
	assert.True(t, got.OpenBallot)
	assert.True(t, got.Teleconference)
	assert.True(t, got.AuditorPresent)
	assert.Equal(t, "Dott. Bruni", got.AuditorName)
	assert.False(t, got.ForeignSpeaker)
}

func TestMeeting_Defaults(t *testing.T) {
	got := Meeting(map[string]any{})

	assert.Equal(t, domain.AssemblyOrdinary, got.AssemblyKind)
	assert.Equal(t, domain.ConveningRegular, got.ConveningKind)
	assert.Equal(t, domain.VoteUnanimous, got.VoteOutcome)
	assert.False(t, got.OpenBallot)
	assert.False(t, got.Teleconference)
	assert.False(t, got.OversightBoard)
}

func TestMeeting_RejectedOutcome(t *testing.T) {
	got := Meeting(map[string]any{"esito_votazione": "proposta respinta"})
	assert.Equal(t, domain.VoteRejected, got.VoteOutcome)
}
