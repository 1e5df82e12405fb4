package team

import "fmt"

// Team is an NBA franchise.
type Team struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
	Nickname     string `json:"nickname"`
	City         string `json:"city"`
	State        string `json:"state"`
	YearFounded  int    `json:"year_founded"`
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.FullName == "" {
		return fmt.Errorf("team full name is required")
	}
	if t.Abbreviation == "" {
		return fmt.Errorf("team abbreviation is required")
	}

	return nil
}
