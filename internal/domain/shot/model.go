package shot

import "math"

const (
	TypeThreePoint = "3PT Field Goal"
	TypeTwoPoint   = "2PT Field Goal"
)

// Zone names match the provider's SHOT_ZONE_BASIC values.
const (
	ZoneRestrictedArea = "Restricted Area"
	ZonePaint          = "In The Paint (Non-RA)"
	ZoneMidRange       = "Mid-Range"
	ZoneLeftCorner3    = "Left Corner 3"
	ZoneRightCorner3   = "Right Corner 3"
	ZoneAboveBreak3    = "Above the Break 3"
	ZoneBackcourt      = "Backcourt"
)

// Zones lists every zone from the rim outwards.
var Zones = []string{
	ZoneRestrictedArea,
	ZonePaint,
	ZoneMidRange,
	ZoneLeftCorner3,
	ZoneRightCorner3,
	ZoneAboveBreak3,
	ZoneBackcourt,
}

// Shot is one field goal attempt. LocX and LocY are in tenths of a foot
// with the hoop at the origin and the baseline at y=-47.5.
type Shot struct {
	GameID      string
	GameDate    string
	GameEventID int64
	PlayerID    int64
	PlayerName  string
	TeamID      int64
	TeamName    string
	Period      int
	MinutesLeft int
	SecondsLeft int
	EventType   string
	ActionType  string
	ShotType    string
	ZoneBasic   string
	ZoneArea    string
	ZoneRange   string
	Distance    int
	LocX        float64
	LocY        float64
	Attempted   bool
	Made        bool
	HomeTeam    string
	VisitorTeam string
}

func (s Shot) IsThree() bool {
	return s.ShotType == TypeThreePoint
}

func (s Shot) IsTwo() bool {
	return s.ShotType == TypeTwoPoint
}

// Zone returns the provider zone when present, otherwise the zone derived
// from the shot coordinates.
func (s Shot) Zone() string {
	if s.ZoneBasic != "" {
		return s.ZoneBasic
	}
	return ClassifyZone(s.LocX, s.LocY)
}

// ClassifyZone maps court coordinates to a zone using the standard court
// dimensions: 4 ft restricted arc, 16 ft wide paint out to the free-throw
// line, 22 ft corner threes below the break and a 23.75 ft arc.
func ClassifyZone(x, y float64) string {
	dist := math.Hypot(x, y)
	switch {
	case y > halfCourtY:
		return ZoneBackcourt
	case dist <= restrictedRadius:
		return ZoneRestrictedArea
	case math.Abs(x) <= paintHalfWidth && y <= freeThrowY:
		return ZonePaint
	case math.Abs(x) >= cornerThreeX && y <= cornerBreakY:
		if x < 0 {
			return ZoneLeftCorner3
		}
		return ZoneRightCorner3
	case dist >= threePointRadius:
		return ZoneAboveBreak3
	default:
		return ZoneMidRange
	}
}

const (
	restrictedRadius = 40.0
	paintHalfWidth   = 80.0
	freeThrowY       = 142.5
	cornerThreeX     = 220.0
	cornerBreakY     = 92.5
	threePointRadius = 237.5
	halfCourtY       = 422.5
)
