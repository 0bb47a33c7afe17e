package templates

import (
	"fmt"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
)

var (
	_ driven.Template = (*DividendDistribution)(nil)
	_ driven.Template = (*ExpenseReimbursement)(nil)
)

// DividendDistribution records the distribution of profits to the
// shareholders in proportion to their stakes.
type DividendDistribution struct{ base }

func (t *DividendDistribution) Name() string { return "distribuzione_utili" }

func (t *DividendDistribution) RequiredFields() []string {
	return withFields("shareholders.stake_percentage")
}

func (t *DividendDistribution) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea - Distribuzione di utili", rec)
	t.opening(plan, rec)
	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph("Il presidente dà atto dell'esistenza di utili distribuibili risultanti dall'ultimo bilancio approvato e propone la loro distribuzione ai soci.")

	items := []string{"di distribuire ai soci gli utili disponibili, in proporzione alle rispettive quote di partecipazione:"}
	for _, s := range rec.NamedShareholders() {
		items = append(items, fmt.Sprintf("al socio %s, titolare del %s del capitale sociale;",
			s.Name, orToken(s.StakePercentage, TokenStake)))
	}
	items = append(items, "di dare mandato all'organo amministrativo di provvedere al pagamento entro i termini di legge.")
	t.deliberations(plan, rec, items)

	t.closing(plan, rec)
	return plan
}

// ExpenseReimbursement records the authorization of expense
// reimbursements in favour of the administrators.
type ExpenseReimbursement struct{ base }

func (t *ExpenseReimbursement) Name() string { return "rimborso_spese" }

func (t *ExpenseReimbursement) RequiredFields() []string {
	return commonRequiredFields()
}

func (t *ExpenseReimbursement) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	plan := t.newPlan(t.Name(), "Verbale di assemblea - Rimborso spese all'organo amministrativo", rec)
	t.opening(plan, rec)
	t.officers(plan, rec)
	t.attendance(plan, rec)

	plan.AddParagraph("Il presidente illustra le spese sostenute dall'organo amministrativo nell'interesse della società e documentate agli atti.")
	t.deliberations(plan, rec, []string{
		"di autorizzare il rimborso delle spese sostenute dall'organo amministrativo, come da documentazione agli atti;",
		"di stabilire che i rimborsi futuri avverranno dietro presentazione di idonea documentazione giustificativa.",
	})

	t.closing(plan, rec)
	return plan
}
