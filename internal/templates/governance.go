package templates

import (
	"fmt"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
)

var (
	_ driven.Template = (*RatificationOfActs)(nil)
	_ driven.Template = (*SupervisorRevocation)(nil)
	_ driven.Template = (*IrregularMeeting)(nil)
	_ driven.Template = (*Corrections)(nil)
)

// RatificationOfActs records the ratification of acts carried out by
// the administrators without prior authorization.
type RatificationOfActs struct{ base }

func (t *RatificationOfActs) Name() string { return "ratifica_operato" }

func (t *RatificationOfActs) RequiredFields() []string {
	return commonRequiredFields()
}

func (t *RatificationOfActs) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea - Ratifica dell'operato dell'organo amministrativo", rec)
	t.opening(plan, rec)
	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph("Il presidente illustra gli atti compiuti dall'organo amministrativo di cui si chiede la ratifica, fornendo ogni chiarimento richiesto dai presenti.")
	t.deliberations(plan, rec, []string{
		"di ratificare integralmente l'operato dell'organo amministrativo per gli atti illustrati;",
		"di manlevare l'organo amministrativo da ogni responsabilità per gli atti ratificati;",
		"di conferire mandato per gli adempimenti conseguenti.",
	})

	t.closing(plan, rec)
	return plan
}

// SupervisorRevocation records the revocation of a member of the
// oversight body for just cause.
type SupervisorRevocation struct{ base }

func (t *SupervisorRevocation) Name() string { return "revoca_sindaco" }

func (t *SupervisorRevocation) RequiredFields() []string {
	return commonRequiredFields()
}

func (t *SupervisorRevocation) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea - Revoca di componente dell'organo di controllo", rec)
	t.opening(plan, rec)
	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph("Il presidente espone la giusta causa che fonda la proposta di revoca del componente dell'organo di controllo, ai sensi dell'art. 2400 c.c.")
	t.deliberations(plan, rec, []string{
		"di revocare, per giusta causa, il componente dell'organo di controllo indicato in premessa;",
		"di dare mandato all'organo amministrativo di richiedere l'approvazione della delibera al Tribunale competente;",
		"di provvedere alla sostituzione del componente revocato nei termini di legge.",
	})

	t.closing(plan, rec)
	return plan
}

// IrregularMeeting records minutes for an assembly held without regular
// convening formality, noting the sanatoria by full attendance.
type IrregularMeeting struct{ base }

func (t *IrregularMeeting) Name() string { return "assemblea_irregolare" }

func (t *IrregularMeeting) RequiredFields() []string {
	return commonRequiredFields()
}

func (t *IrregularMeeting) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea non regolarmente convocata", rec)
	t.opening(plan, rec)
	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph("Il presidente dà atto che l'assemblea non è stata convocata nelle forme di statuto; essendo tuttavia presente l'intero capitale sociale e informati tutti i componenti degli organi sociali, l'assemblea si dichiara validamente costituita in forma totalitaria ai sensi dell'art. 2479-bis c.c.")
	t.deliberations(plan, rec, []string{
		"di dare atto della valida costituzione dell'assemblea in forma totalitaria;",
		"di approvare gli argomenti posti in discussione come da ordine del giorno dichiarato in apertura.",
	})

	t.closing(plan, rec)
	return plan
}

// Corrections records the correction of material errors in previously
// approved minutes.
type Corrections struct{ base }

func (t *Corrections) Name() string { return "rettifiche" }

func (t *Corrections) RequiredFields() []string {
	return commonRequiredFields()
}

func (t *Corrections) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea - Rettifica di precedente verbale", rec)
	t.opening(plan, rec)
	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph(fmt.Sprintf("Il presidente segnala la presenza di errori materiali nel verbale della precedente assemblea della società %s e ne propone la rettifica.",
		orToken(rec.Company.Name, TokenCompany)))
	t.deliberations(plan, rec, []string{
		"di rettificare il verbale della precedente assemblea limitatamente agli errori materiali segnalati;",
		"di confermare in ogni altra parte il contenuto del verbale rettificato;",
		"di depositare il presente verbale unitamente a quello rettificato.",
	})

	t.closing(plan, rec)
	return plan
}
