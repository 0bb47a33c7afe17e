package templates

import (
	"fmt"
	"strings"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
)

// Placeholder tokens substituted for missing values so a partial record
// still yields a reviewable draft.
const (
	TokenCompany   = "[DENOMINAZIONE]"
	TokenOffice    = "[SEDE_LEGALE]"
	TokenTaxCode   = "[CODICE_FISCALE]"
	TokenCapital   = "[CAPITALE_SOCIALE]"
	TokenDate      = "[DATA]"
	TokenTime      = "[ORA]"
	TokenEndTime   = "[ORA_FINE]"
	TokenLocation  = "[LUOGO]"
	TokenChair     = "[PRESIDENTE]"
	TokenSecretary = "[SEGRETARIO]"
	TokenName      = "[NOME]"
	TokenStake     = "[QUOTA]"
	TokenAuditor   = "[REVISORE]"
)

// orToken returns the value, or the bracketed token when it is blank.
func orToken(value, token string) string {
	if strings.TrimSpace(value) == "" {
		return token
	}
	return value
}

// base carries the behaviour shared by every variant: the preview
// rendering and the section builders for the boilerplate all minutes
// share. Variants embed it and add their own deliberations.
type base struct{}

// RenderPreview flattens a content plan to plain text. The flattening
// is the same one the assembler feeds to the writer, so preview and
// artifact agree on content.
func (base) RenderPreview(plan *domain.ContentPlan) string {
	if plan == nil {
		return ""
	}
	return plan.PlainText()
}

// newPlan starts a plan with the company header and title blocks.
func (base) newPlan(key, title string, rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := &domain.ContentPlan{TemplateKey: key, Title: title}

	plan.AddHeading(1, orToken(rec.Company.Name, TokenCompany))
	plan.AddParagraph(fmt.Sprintf("Sede legale: %s - Codice fiscale: %s - Capitale sociale deliberato Euro %s, sottoscritto Euro %s, versato Euro %s",
		orToken(rec.Company.RegisteredOffice, TokenOffice),
		orToken(rec.Company.TaxCode, TokenTaxCode),
		orToken(rec.Company.ShareCapital.Resolved, TokenCapital),
		orToken(rec.Company.ShareCapital.Subscribed, TokenCapital),
		orToken(rec.Company.ShareCapital.Paid, TokenCapital)))
	plan.AddHeading(2, title)
	return plan
}

// opening writes the convening paragraph.
func (base) opening(plan *domain.ContentPlan, rec *domain.CanonicalRecord) {
	convening := "regolarmente convocata"
	if rec.Meeting.ConveningKind == domain.ConveningTotalAttendance {
		convening = "in forma totalitaria"
	}
	plan.AddParagraph(fmt.Sprintf("Il giorno %s, alle ore %s, presso %s, si è riunita %s l'assemblea %s dei soci della società %s.",
		orToken(rec.Meeting.Date, TokenDate),
		orToken(rec.Meeting.StartTime, TokenTime),
		orToken(rec.Meeting.Location, TokenLocation),
		convening,
		string(rec.Meeting.AssemblyKind),
		orToken(rec.Company.Name, TokenCompany)))

	if rec.Meeting.Teleconference {
		plan.AddParagraph("L'assemblea si svolge con l'ausilio di mezzi di audioconferenza, nel rispetto dello statuto sociale.")
	}
}

// officers writes the chair election paragraph.
func (base) officers(plan *domain.ContentPlan, rec *domain.CanonicalRecord) {
	plan.AddParagraph(fmt.Sprintf("Assume la presidenza dell'assemblea %s, il quale, constatata la regolare costituzione della stessa, chiama a fungere da segretario %s.",
		orToken(rec.Chair, TokenChair),
		orToken(rec.Secretary, TokenSecretary)))
}

// attendance writes the shareholder and administrator presence lists.
func (base) attendance(plan *domain.ContentPlan, rec *domain.CanonicalRecord) {
	plan.AddParagraph("Sono presenti i soci:")

	var soci []string
	for _, s := range rec.Shareholders {
		if !s.Present {
			continue
		}
		entry := fmt.Sprintf("%s, titolare di una quota pari al %s del capitale sociale",
			orToken(s.Name, TokenName),
			orToken(s.StakePercentage, TokenStake))
		if s.Participation == domain.ParticipationProxy && s.ProxyHolder != "" {
			entry += fmt.Sprintf(", per delega conferita a %s", s.ProxyHolder)
		}
		if s.SubjectType == domain.SubjectLegalEntity && s.LegalRepresentative != "" {
			entry += fmt.Sprintf(", in persona del legale rappresentante %s", s.LegalRepresentative)
		}
		soci = append(soci, entry)
	}
	if len(soci) == 0 {
		soci = append(soci, TokenName)
	}
	plan.AddList(soci)

	var organi []string
	for _, a := range rec.Administrators {
		if a.Name == "" {
			continue
		}
		switch {
		case a.Present:
			organi = append(organi, fmt.Sprintf("%s (%s)", a.Name, a.Role))
		case a.AbsentJustified:
			organi = append(organi, fmt.Sprintf("%s (%s), assente giustificato", a.Name, a.Role))
		default:
			organi = append(organi, fmt.Sprintf("%s (%s), assente", a.Name, a.Role))
		}
	}
	if len(organi) > 0 {
		plan.AddParagraph("Per l'organo amministrativo:")
		plan.AddList(organi)
	}

	if rec.Meeting.OversightBoard {
		plan.AddParagraph("È presente il Collegio Sindacale.")
	}
	if rec.Meeting.AuditorPresent {
		plan.AddParagraph(fmt.Sprintf("È presente il revisore legale %s.", orToken(rec.Meeting.AuditorName, TokenAuditor)))
	}
	if rec.Meeting.ForeignSpeaker {
		plan.AddParagraph("Partecipa un soggetto di lingua straniera; il presidente accerta che lo stesso comprende la lingua italiana ovvero è assistito da interprete.")
	}
}

// deliberations writes the resolution block with its vote outcome.
func (base) deliberations(plan *domain.ContentPlan, rec *domain.CanonicalRecord, items []string) {
	plan.AddParagraph("L'assemblea, dopo esauriente discussione, " + voteClause(rec.Meeting) + ",")
	plan.AddHeading(3, "DELIBERA")
	plan.AddList(items)
}

// closing writes the closing paragraph and the signature block.
func (b base) closing(plan *domain.ContentPlan, rec *domain.CanonicalRecord) {
	if rec.Meeting.AttachedDocs {
		plan.AddParagraph("I documenti discussi vengono allegati al presente verbale a formarne parte integrante.")
	}
	plan.AddParagraph(fmt.Sprintf("Null'altro essendovi da deliberare e nessuno chiedendo la parola, il presidente dichiara sciolta l'assemblea alle ore %s, previa lettura e unanime approvazione del presente verbale.",
		orToken(rec.Meeting.EndTime, TokenEndTime)))
	plan.AddSignature(orToken(rec.Chair, TokenChair), orToken(rec.Secretary, TokenSecretary))
}

func voteClause(m domain.Meeting) string {
	ballot := "con voto palese"
	if !m.OpenBallot {
		ballot = "con voto segreto"
	}
	switch m.VoteOutcome {
	case domain.VoteMajority:
		return "a maggioranza dei presenti, " + ballot
	case domain.VoteRejected:
		return "respinta la proposta " + ballot
	default:
		return "all'unanimità, " + ballot
	}
}

// Required-field name sets shared across variants.
func commonRequiredFields() []string {
	return []string{
		"company.name",
		"company.tax_code",
		"meeting.date",
		"meeting.start_time",
		"meeting.location",
		"shareholders",
		"administrators",
		"chair",
		"secretary",
	}
}

func withFields(extra ...string) []string {
	return append(commonRequiredFields(), extra...)
}

// MissingFields runs a template's pre-flight check: every required
// field the record does not carry comes back as a report message.
func MissingFields(tpl driven.Template, rec *domain.CanonicalRecord) []string {
	var report []string
	for _, field := range tpl.RequiredFields() {
		if !fieldPresent(rec, field) {
			report = append(report, fmt.Sprintf("campo richiesto mancante: %s", field))
		}
	}
	return report
}

func fieldPresent(rec *domain.CanonicalRecord, field string) bool {
	switch field {
	case "company.name":
		return rec.Company.Name != ""
	case "company.registered_office":
		return rec.Company.RegisteredOffice != ""
	case "company.tax_code":
		return rec.Company.TaxCode != ""
	case "company.share_capital":
		return rec.Company.ShareCapital.Subscribed != ""
	case "meeting.date":
		return rec.Meeting.Date != ""
	case "meeting.start_time":
		return rec.Meeting.StartTime != ""
	case "meeting.end_time":
		return rec.Meeting.EndTime != ""
	case "meeting.location":
		return rec.Meeting.Location != ""
	case "meeting.auditor_name":
		return rec.Meeting.AuditorName != ""
	case "shareholders":
		return len(rec.NamedShareholders()) > 0
	case "shareholders.stake_percentage":
		for _, s := range rec.NamedShareholders() {
			if s.StakePercentage == "" {
				return false
			}
		}
		return len(rec.NamedShareholders()) > 0
	case "administrators":
		return len(rec.NamedAdministrators()) > 0
	case "chair":
		return rec.Chair != ""
	case "secretary":
		return rec.Secretary != ""
	default:
		// Unknown field names never block generation.
		return true
	}
}
