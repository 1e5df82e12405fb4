package player

import (
	"regexp"
	"strings"
)

// Match finds name in players. A case-insensitive exact full-name match
// wins; otherwise the first player whose full name matches name as a
// case-insensitive pattern is returned. Names that are not valid patterns
// are matched literally.
func Match(players []Player, name string) (Player, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, false
	}
	for _, p := range players {
		if strings.EqualFold(p.FullName, name) {
			return p, true
		}
	}

	pattern := namePattern(name)
	for _, p := range players {
		if pattern.MatchString(p.FullName) {
			return p, true
		}
	}
	return Player{}, false
}

func namePattern(name string) *regexp.Regexp {
	if re, err := regexp.Compile("(?i)" + name); err == nil {
		return re
	}
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(name))
}
