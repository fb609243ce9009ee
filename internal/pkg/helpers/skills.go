package helpers

import (
	"math"
	"strings"
)

// SkillMatchPercent scores a user's skills against a required-skill list:
// case-insensitive exact-match intersection size over the requirement
// count, rounded to an integer percentage. Zero when either list is empty.
// Recomputed per read, never persisted.
func SkillMatchPercent(requiredSkills, userSkills []string) int {
	if len(requiredSkills) == 0 || len(userSkills) == 0 {
		return 0
	}

	have := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	matches := 0
	for _, required := range requiredSkills {
		if _, ok := have[strings.ToLower(strings.TrimSpace(required))]; ok {
			matches++
		}
	}

	return int(math.Round(float64(matches) / float64(len(requiredSkills)) * 100))
}
