package parsing

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// skillsTaxonomy maps skill categories to canonical skill names. Loaded once
// at process start; read-only afterwards.
var skillsTaxonomy = map[string][]string{
	"programming": {
		"python", "java", "javascript", "c++", "c#", "ruby", "php", "go",
		"rust", "kotlin",
	},
	"web_development": {
		"html", "css", "react", "angular", "vue", "nodejs", "express",
		"django", "flask",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle",
		"sqlite",
	},
	"cloud": {
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
	},
	"data_science": {
		"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "tableau",
		"powerbi",
	},
	"project_management": {
		"agile", "scrum", "kanban", "jira", "confluence", "trello",
	},
	"design": {
		"photoshop", "illustrator", "figma", "sketch", "adobe", "ui/ux",
		"graphic design",
	},
}

// extractSkills searches the lowercased text for every taxonomy skill as a
// plain substring. No word-boundary requirement: "java" is deliberately found
// inside "JavaScript".
func extractSkills(text string) types.Skills {
	textLower := strings.ToLower(text)

	found := make(map[string]struct{})
	categorized := make(map[string][]string)

	for category, skills := range skillsTaxonomy {
		for _, skill := range skills {
			if !strings.Contains(textLower, skill) {
				continue
			}
			found[skill] = struct{}{}
			categorized[category] = append(categorized[category], skill)
		}
	}

	all := make([]string, 0, len(found))
	for skill := range found {
		all = append(all, skill)
	}
	sort.Strings(all)
	for _, skills := range categorized {
		sort.Strings(skills)
	}

	return types.Skills{
		AllSkills:   all,
		Categorized: categorized,
		SkillCount:  len(all),
	}
}
