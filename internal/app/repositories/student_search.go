package repositories

import (
	"fmt"
	"strings"
)

// buildSearchQuery assembles the student search statement. Skill tokens OR
// together as case-insensitive substring matches; the domain term is a single
// substring match. When both are present the two blocks combine with OR, not
// AND: the search is an exploratory tool and favors recall, so a student
// matching only the domain still appears. Tokens are bound as parameters;
// LIKE wildcards (% and _) inside them are deliberately not escaped, matching
// the established search behavior.
func buildSearchQuery(skillTokens []string, domain string) (string, []any) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE 1=1`
	var args []any

	var skillsBlock string
	if len(skillTokens) > 0 {
		ors := make([]string, len(skillTokens))
		for i, token := range skillTokens {
			args = append(args, "%"+token+"%")
			ors[i] = fmt.Sprintf("LOWER(skills) LIKE $%d", len(args))
		}
		skillsBlock = "(" + strings.Join(ors, " OR ") + ")"
	}

	var domainBlock string
	if domain != "" {
		args = append(args, "%"+domain+"%")
		domainBlock = fmt.Sprintf("LOWER(domain) LIKE $%d", len(args))
	}

	switch {
	case skillsBlock != "" && domainBlock != "":
		query += " AND (" + skillsBlock + " OR " + domainBlock + ")"
	case skillsBlock != "":
		query += " AND " + skillsBlock
	case domainBlock != "":
		query += " AND " + domainBlock
	}

	query += " ORDER BY first_name"
	return query, args
}
