package domain

// Validate checks the business fields a reviewable set of minutes needs.
// It returns a list of distinct human-readable messages, never an error:
// generation may proceed on a partial record, the caller decides whether
// the report blocks it.
func (r *CanonicalRecord) Validate() []string {
	var report []string

	if r.Company.Name == "" {
		report = append(report, "denominazione della società mancante")
	}
	if r.Company.TaxCode == "" {
		report = append(report, "codice fiscale mancante")
	}
	if len(r.NamedShareholders()) == 0 {
		report = append(report, "nessun socio con nome valorizzato")
	}
	if len(r.NamedAdministrators()) == 0 {
		report = append(report, "nessun amministratore con nome valorizzato")
	}
	if r.Chair == "" {
		report = append(report, "presidente non determinato")
	}
	if r.Secretary == "" {
		report = append(report, "segretario non determinato")
	}

	return report
}
