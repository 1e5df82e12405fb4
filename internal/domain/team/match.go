package team

import (
	"regexp"
	"strings"
)

// Match resolves name against teams: first as a case-insensitive pattern
// over full names, then as an exact abbreviation.
func Match(teams []Team, name string) (Team, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Team{}, false
	}

	pattern, err := regexp.Compile("(?i)" + name)
	if err != nil {
		pattern = regexp.MustCompile("(?i)" + regexp.QuoteMeta(name))
	}
	for _, t := range teams {
		if pattern.MatchString(t.FullName) {
			return t, true
		}
	}
	for _, t := range teams {
		if strings.EqualFold(t.Abbreviation, name) {
			return t, true
		}
	}
	return Team{}, false
}
