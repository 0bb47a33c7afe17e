package templates

import (
	"fmt"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
)

var (
	_ driven.Template = (*AdministratorAppointment)(nil)
	_ driven.Template = (*RevocationAndAppointment)(nil)
	_ driven.Template = (*AuditorAppointment)(nil)
	_ driven.Template = (*SupervisoryBoardAppointment)(nil)
	_ driven.Template = (*SoleDirector)(nil)
	_ driven.Template = (*BoardOfDirectors)(nil)
)

// appointee returns the first named administrator, the natural
// candidate for appointment variants, falling back to a token.
func appointee(rec *domain.CanonicalRecord) string {
	for _, a := range rec.Administrators {
		if a.Name != "" {
			return a.Name
		}
	}
	return TokenName
}

// AdministratorAppointment records the appointment of a new
// administrator.
type AdministratorAppointment struct{ base }

func (t *AdministratorAppointment) Name() string { return "nomina_amministratore" }

func (t *AdministratorAppointment) RequiredFields() []string {
	return commonRequiredFields()
}

func (t *AdministratorAppointment) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea - Nomina dell'organo amministrativo", rec)
	t.opening(plan, rec)
	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph("Il presidente ricorda ai presenti la necessità di procedere alla nomina dell'organo amministrativo della società.")
	t.deliberations(plan, rec, []string{
		fmt.Sprintf("di nominare amministratore della società il sig. %s, che dichiara di accettare la carica;", appointee(rec)),
		"di stabilire che la carica avrà la durata prevista dallo statuto sociale;",
		"di determinare il compenso dell'organo amministrativo in separata deliberazione.",
	})

	t.closing(plan, rec)
	return plan
}

// RevocationAndAppointment records the revocation of the administrator
// in office and the contextual appointment of a successor.
type RevocationAndAppointment struct{ base }

func (t *RevocationAndAppointment) Name() string { return "revoca_e_nomina" }

func (t *RevocationAndAppointment) RequiredFields() []string {
	return commonRequiredFields()
}

func (t *RevocationAndAppointment) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea - Revoca e nomina dell'organo amministrativo", rec)
	t.opening(plan, rec)
	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph("Il presidente espone le ragioni che rendono opportuna la revoca dell'organo amministrativo in carica e la contestuale nomina di un nuovo organo.")
	t.deliberations(plan, rec, []string{
		"di revocare l'organo amministrativo in carica, con effetto immediato;",
		fmt.Sprintf("di nominare quale nuovo amministratore il sig. %s, che dichiara di accettare la carica;", appointee(rec)),
		"di dare mandato al nuovo amministratore per le comunicazioni di legge al Registro delle Imprese.",
	})

	t.closing(plan, rec)
	return plan
}

// AuditorAppointment records the appointment of the statutory auditor.
type AuditorAppointment struct{ base }

func (t *AuditorAppointment) Name() string { return "nomina_revisore" }

func (t *AuditorAppointment) RequiredFields() []string {
	return withFields("meeting.auditor_name")
}

func (t *AuditorAppointment) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea - Nomina del revisore legale", rec)
	t.opening(plan, rec)
	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph("Il presidente illustra l'obbligo di nomina dell'organo di revisione legale dei conti ai sensi dell'art. 2477 c.c.")
	t.deliberations(plan, rec, []string{
		fmt.Sprintf("di nominare revisore legale dei conti %s, che dichiara di accettare l'incarico;", orToken(rec.Meeting.AuditorName, TokenAuditor)),
		"di stabilire che l'incarico avrà durata di tre esercizi;",
		"di determinare il corrispettivo annuo per l'incarico secondo la proposta agli atti.",
	})

	t.closing(plan, rec)
	return plan
}

// SupervisoryBoardAppointment records the appointment of the
// supervisory board (collegio sindacale).
type SupervisoryBoardAppointment struct{ base }

func (t *SupervisoryBoardAppointment) Name() string { return "nomina_collegio_sindacale" }

func (t *SupervisoryBoardAppointment) RequiredFields() []string {
	return commonRequiredFields()
}

func (t *SupervisoryBoardAppointment) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea - Nomina del Collegio Sindacale", rec)
	t.opening(plan, rec)
	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph("Il presidente ricorda che ricorrono i presupposti di legge per la nomina dell'organo di controllo.")
	t.deliberations(plan, rec, []string{
		"di istituire il Collegio Sindacale, composto di tre membri effettivi e due supplenti;",
		"di nominare i componenti del Collegio Sindacale come da proposta allegata al presente verbale;",
		"di determinare il compenso dei sindaci secondo le tariffe professionali vigenti.",
	})

	t.closing(plan, rec)
	return plan
}

// SoleDirector records the choice of a sole-director governance model.
type SoleDirector struct{ base }

func (t *SoleDirector) Name() string { return "amministratore_unico" }

func (t *SoleDirector) RequiredFields() []string {
	return commonRequiredFields()
}

func (t *SoleDirector) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea - Nomina dell'Amministratore Unico", rec)
	t.opening(plan, rec)
	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph("Il presidente propone di adottare il modello di amministrazione con Amministratore Unico.")
	t.deliberations(plan, rec, []string{
		"di affidare l'amministrazione della società ad un Amministratore Unico;",
		fmt.Sprintf("di nominare Amministratore Unico il sig. %s, che dichiara di accettare la carica;", appointee(rec)),
		"di attribuire all'Amministratore Unico i poteri di ordinaria e straordinaria amministrazione.",
	})

	t.closing(plan, rec)
	return plan
}

// BoardOfDirectors records the appointment of a board of directors.
type BoardOfDirectors struct{ base }

func (t *BoardOfDirectors) Name() string { return "consiglio_di_amministrazione" }

func (t *BoardOfDirectors) RequiredFields() []string {
	return commonRequiredFields()
}

func (t *BoardOfDirectors) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea - Nomina del Consiglio di Amministrazione", rec)
	t.opening(plan, rec)
	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph("Il presidente propone di affidare l'amministrazione della società ad un Consiglio di Amministrazione.")

	var consiglieri []string
	for _, a := range rec.NamedAdministrators() {
		consiglieri = append(consiglieri, fmt.Sprintf("il sig. %s, con la carica di %s;", a.Name, a.Role))
	}
	if len(consiglieri) == 0 {
		consiglieri = append(consiglieri, fmt.Sprintf("il sig. %s;", TokenName))
	}

	items := append([]string{"di nominare quali componenti del Consiglio di Amministrazione:"}, consiglieri...)
	items = append(items,
		"di stabilire che il Consiglio resterà in carica per la durata prevista dallo statuto;",
		"di rinviare al Consiglio la nomina del presidente e l'attribuzione delle deleghe.")
	t.deliberations(plan, rec, items)

	t.closing(plan, rec)
	return plan
}
