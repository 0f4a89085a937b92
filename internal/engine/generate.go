package engine

import "domainsuggest/pkg/domain"

// tokens holds the normalized fields of an applicant.
type tokens struct {
	name    string
	company string
	role    string
}

func tokenize(a domain.Applicant) tokens {
	return tokens{
		name:    Normalize(a.Name),
		company: Normalize(a.TargetCompany),
		role:    Normalize(a.TargetRole),
	}
}

// template composes a raw domain from tokens. Role templates are only used
// when the role token is present.
type template struct {
	role  bool
	build func(t tokens) string
}

// templates is ordered by priority: name+company first, role-aware variants
// next, creative and alternate-TLD variants last.
var templates = []template{ //nolint: gochecknoglobals
	{build: func(t tokens) string { return t.name + "-" + t.company + ".com" }},
	{build: func(t tokens) string { return t.name + "at" + t.company + ".com" }},
	{build: func(t tokens) string { return "hire" + t.name + ".com" }},
	{role: true, build: func(t tokens) string { return t.name + "-" + t.company + "-" + t.role + ".com" }},
	{role: true, build: func(t tokens) string { return t.name + "-" + t.role + ".com" }},
	{build: func(t tokens) string { return t.name + "for" + t.company + ".com" }},
	{build: func(t tokens) string { return "meet" + t.name + ".com" }},
	{build: func(t tokens) string { return t.name + "-" + t.company + ".dev" }},
	{build: func(t tokens) string { return t.name + "-" + t.company + ".io" }},
	{build: func(t tokens) string { return t.name + ".pro" }},
	{build: func(t tokens) string { return t.name + "-portfolio.com" }},
	{build: func(t tokens) string { return t.name + "resume.com" }},
}

// Generate returns the raw, unvalidated candidates for an applicant in
// template order. An applicant whose role normalizes to an empty string gets
// no role variants. Empty name or company tokens still produce their
// templates; Filter drops the ones that are not valid domains.
func Generate(a domain.Applicant) []string {
	return generate(tokenize(a))
}

func generate(t tokens) []string {
	out := make([]string, 0, len(templates))
	for _, tpl := range templates {
		if tpl.role && t.role == "" {
			continue
		}
		out = append(out, tpl.build(t))
	}

	return out
}
