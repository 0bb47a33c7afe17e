package templates

import (
	"fmt"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
)

var (
	_ driven.Template = (*StandardApproval)(nil)
	_ driven.Template = (*FullMinutes)(nil)
	_ driven.Template = (*GenericMinutes)(nil)
)

// StandardApproval is the ordinary balance-sheet approval minutes, the
// most common variant.
type StandardApproval struct{ base }

func (t *StandardApproval) Name() string { return "verbale_standard" }

func (t *StandardApproval) RequiredFields() []string {
	return withFields("company.share_capital")
}

func (t *StandardApproval) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea ordinaria - Approvazione del bilancio", rec)
	t.opening(plan, rec)
	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph("Il presidente illustra ai presenti il bilancio dell'esercizio chiuso, unitamente alla nota integrativa, e fornisce i chiarimenti richiesti.")
	t.deliberations(plan, rec, []string{
		"di approvare il bilancio dell'esercizio così come presentato dall'organo amministrativo;",
		"di destinare il risultato dell'esercizio secondo la proposta dell'organo amministrativo.",
	})

	t.closing(plan, rec)
	return plan
}

// FullMinutes is the long-form variant: full attendance detail and the
// complete order of business.
type FullMinutes struct{ base }

func (t *FullMinutes) Name() string { return "verbale_completo" }

func (t *FullMinutes) RequiredFields() []string {
	return withFields("company.registered_office", "company.share_capital", "meeting.end_time")
}

func (t *FullMinutes) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea dei soci", rec)
	t.opening(plan, rec)

	plan.AddParagraph("Ordine del giorno:")
	plan.AddList([]string{
		"esame e approvazione del bilancio di esercizio;",
		"destinazione del risultato di esercizio;",
		"varie ed eventuali.",
	})

	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph(fmt.Sprintf("Il presidente constata che l'assemblea è %s e che tutti i presenti si dichiarano edotti sugli argomenti all'ordine del giorno.",
		string(rec.Meeting.ConveningKind)))
	plan.AddParagraph("Si passa quindi alla trattazione dell'ordine del giorno. Il presidente dà lettura del bilancio e della relazione sulla gestione, soffermandosi sulle principali voci.")

	t.deliberations(plan, rec, []string{
		"di approvare il bilancio dell'esercizio e la relazione che lo accompagna;",
		"di destinare il risultato di esercizio come da proposta dell'organo amministrativo;",
		"di conferire mandato all'organo amministrativo per gli adempimenti conseguenti.",
	})

	t.closing(plan, rec)
	return plan
}

// GenericMinutes covers deliberations that no dedicated variant models;
// the order of business stays free-form.
type GenericMinutes struct{ base }

func (t *GenericMinutes) Name() string { return "verbale_generico" }

func (t *GenericMinutes) RequiredFields() []string {
	return commonRequiredFields()
}

func (t *GenericMinutes) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea", rec)
	t.opening(plan, rec)
	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph("Il presidente espone ai presenti gli argomenti posti all'ordine del giorno e apre la discussione.")
	t.deliberations(plan, rec, []string{
		"di approvare quanto proposto dal presidente in merito agli argomenti all'ordine del giorno;",
		"di conferire mandato all'organo amministrativo per l'esecuzione delle delibere assunte.",
	})

	t.closing(plan, rec)
	return plan
}
