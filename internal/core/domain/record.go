package domain

import "time"

// ParticipationType describes how a shareholder takes part in the meeting.
type ParticipationType string

const (
	ParticipationDirect ParticipationType = "Diretta"
	ParticipationProxy  ParticipationType = "Delega"
)

// SubjectType distinguishes natural persons from legal entities.
type SubjectType string

const (
	SubjectNaturalPerson SubjectType = "Persona Fisica"
	SubjectLegalEntity   SubjectType = "Persona Giuridica"
)

// AssemblyKind is the formal kind of the assembly.
type AssemblyKind string

const (
	AssemblyOrdinary      AssemblyKind = "ordinaria"
	AssemblyExtraordinary AssemblyKind = "straordinaria"
)

// ConveningKind describes how the assembly was convened.
type ConveningKind string

const (
	ConveningRegular         ConveningKind = "regolarmente convocata"
	ConveningTotalAttendance ConveningKind = "totalitaria"
)

// VoteOutcome is the result of the assembly vote.
type VoteOutcome string

const (
	VoteUnanimous VoteOutcome = "unanimità"
	VoteMajority  VoteOutcome = "maggioranza"
	VoteRejected  VoteOutcome = "respinta"
)

// Default values applied by the normalizer when a source omits a field.
const (
	DefaultAdministratorRole = "Amministratore Unico"
	DefaultCapitalResolved   = "10.000,00"
	DefaultCapitalSubscribed = "10.000,00"
	DefaultCapitalPaid       = "2.500,00"
)

// Shareholder is one participant in the share register.
// Every shareholder carries all fields, defaulted when the source is silent.
type Shareholder struct {
	Name                string            `json:"name" mapstructure:"nome"`
	Participation       ParticipationType `json:"participation_type" mapstructure:"tipo_partecipazione"`
	ProxyHolder         string            `json:"proxy_holder" mapstructure:"delegato"`
	SubjectType         SubjectType       `json:"subject_type" mapstructure:"tipo_soggetto"`
	LegalRepresentative string            `json:"legal_representative" mapstructure:"rappresentante_legale"`
	StakePercentage     string            `json:"stake_percentage" mapstructure:"quota_percentuale"`
	StakeAmount         string            `json:"stake_amount" mapstructure:"quota_valore"`
	Present             bool              `json:"present" mapstructure:"presente"`
}

// Administrator is one member of the administrative body.
type Administrator struct {
	Name            string `json:"name" mapstructure:"nome"`
	Role            string `json:"role" mapstructure:"carica"`
	Present         bool   `json:"present" mapstructure:"presente"`
	AbsentJustified bool   `json:"absent_justified" mapstructure:"assente_giustificato"`
}

// ShareCapital always carries the three money figures, even when the
// source provided a single scalar.
type ShareCapital struct {
	Resolved   string `json:"resolved" mapstructure:"deliberato"`
	Subscribed string `json:"subscribed" mapstructure:"sottoscritto"`
	Paid       string `json:"paid" mapstructure:"versato"`
}

// Company identifies the company holding the meeting.
type Company struct {
	Name             string       `json:"name" mapstructure:"denominazione"`
	RegisteredOffice string       `json:"registered_office" mapstructure:"sede_legale"`
	TaxCode          string       `json:"tax_code" mapstructure:"codice_fiscale"`
	ShareCapital     ShareCapital `json:"share_capital"`
}

// Meeting holds the logistics and procedural flags of the assembly.
type Meeting struct {
	Date           string        `json:"date" mapstructure:"data_assemblea"`
	StartTime      string        `json:"start_time" mapstructure:"ora_assemblea_str"`
	EndTime        string        `json:"end_time" mapstructure:"ora_fine_str"`
	Location       string        `json:"location" mapstructure:"luogo_assemblea"`
	AssemblyKind   AssemblyKind  `json:"assembly_kind" mapstructure:"tipo_assemblea"`
	ConveningKind  ConveningKind `json:"convening_kind" mapstructure:"tipo_convocazione"`
	VoteOutcome    VoteOutcome   `json:"vote_outcome" mapstructure:"esito_votazione"`
	OpenBallot     bool          `json:"open_ballot" mapstructure:"voto_palese"`
	Teleconference bool          `json:"teleconference" mapstructure:"audioconferenza"`
	AttachedDocs   bool          `json:"attached_documents" mapstructure:"documenti_allegati"`
	OversightBoard bool          `json:"oversight_board_present" mapstructure:"collegio_sindacale"`
	AuditorPresent bool          `json:"auditor_present" mapstructure:"revisore_presente"`
	AuditorName    string        `json:"auditor_name" mapstructure:"nome_revisore"`
	ForeignSpeaker bool          `json:"foreign_language_participant" mapstructure:"partecipante_straniero"`
}

// CanonicalRecord is the fully normalized representation of one meeting,
// independent of source document shape. It is immutable once handed to a
// template: templates produce content plans and never write back into it.
type CanonicalRecord struct {
	Company        Company         `json:"company"`
	Meeting        Meeting         `json:"meeting"`
	Shareholders   []Shareholder   `json:"shareholders"`
	Administrators []Administrator `json:"administrators"`
	Representative string          `json:"representative"`
	Chair          string          `json:"chair"`
	Secretary      string          `json:"secretary"`
	NormalizedAt   time.Time       `json:"normalized_at"`
}

// NamedShareholders returns the shareholders with a non-empty name.
func (r *CanonicalRecord) NamedShareholders() []Shareholder {
	var out []Shareholder
	for _, s := range r.Shareholders {
		if s.Name != "" {
			out = append(out, s)
		}
	}
	return out
}

// NamedAdministrators returns the administrators with a non-empty name.
func (r *CanonicalRecord) NamedAdministrators() []Administrator {
	var out []Administrator
	for _, a := range r.Administrators {
		if a.Name != "" {
			out = append(out, a)
		}
	}
	return out
}
