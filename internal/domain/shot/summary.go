package shot

import "github.com/riskibarqy/hoopstats/internal/domain/stat"

// Split is the attempts/makes line for a subset of shots.
type Split struct {
	Attempts int     `json:"attempts"`
	Made     int     `json:"made"`
	Pct      float64 `json:"percentage"`
}

// Summary aggregates a shot table. ThreePoint and TwoPoint are nil when the
// table has no attempts of that type.
type Summary struct {
	TotalShots int     `json:"total_shots"`
	Made       int     `json:"made_shots"`
	Missed     int     `json:"missed_shots"`
	FGPct      float64 `json:"fg_percentage"`
	ThreePoint *Split  `json:"three_point,omitempty"`
	TwoPoint   *Split  `json:"two_point,omitempty"`
}

// Summarize rolls shots up into make/miss totals and type splits.
func Summarize(shots []Shot) Summary {
	var (
		out        Summary
		three, two Split
	)
	for _, s := range shots {
		out.TotalShots++
		if s.Made {
			out.Made++
		}
		switch {
		case s.IsThree():
			three.Attempts++
			if s.Made {
				three.Made++
			}
		case s.IsTwo():
			two.Attempts++
			if s.Made {
				two.Made++
			}
		}
	}
	out.Missed = out.TotalShots - out.Made
	out.FGPct = stat.Pct(out.Made, out.TotalShots)

	if three.Attempts > 0 {
		three.Pct = stat.Pct(three.Made, three.Attempts)
		out.ThreePoint = &three
	}
	if two.Attempts > 0 {
		two.Pct = stat.Pct(two.Made, two.Attempts)
		out.TwoPoint = &two
	}
	return out
}

// ZoneLine is the split for one court zone.
type ZoneLine struct {
	Zone string `json:"zone"`
	Split
}

// ByZone groups shots per zone in Zones order, skipping empty zones. Zones
// the provider reports that are not in Zones are appended in first-seen order.
func ByZone(shots []Shot) []ZoneLine {
	splits := make(map[string]*Split)
	var extra []string
	for _, s := range shots {
		zone := s.Zone()
		sp, ok := splits[zone]
		if !ok {
			sp = &Split{}
			splits[zone] = sp
			if !isKnownZone(zone) {
				extra = append(extra, zone)
			}
		}
		sp.Attempts++
		if s.Made {
			sp.Made++
		}
	}

	order := append(append([]string(nil), Zones...), extra...)
	out := make([]ZoneLine, 0, len(splits))
	for _, zone := range order {
		sp, ok := splits[zone]
		if !ok {
			continue
		}
		sp.Pct = stat.Pct(sp.Made, sp.Attempts)
		out = append(out, ZoneLine{Zone: zone, Split: *sp})
	}
	return out
}

// Partition splits shots into made and missed, preserving order.
func Partition(shots []Shot) (made, missed []Shot) {
	for _, s := range shots {
		if s.Made {
			made = append(made, s)
		} else {
			missed = append(missed, s)
		}
	}
	return made, missed
}

func isKnownZone(zone string) bool {
	for _, z := range Zones {
		if z == zone {
			return true
		}
	}
	return false
}
