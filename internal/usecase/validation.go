package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/hoopstats/internal/domain/career"
)

var seasonPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

var seasonTypes = map[string]struct{}{
	SeasonTypeRegular:  {},
	SeasonTypePlayoffs: {},
	SeasonTypePre:      {},
	SeasonTypeAllStar:  {},
	SeasonTypePlayIn:   {},
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func inputValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("season", func(fl validator.FieldLevel) bool {
			return ValidSeason(fl.Field().String())
		})
		_ = v.RegisterValidation("season_type", func(fl validator.FieldLevel) bool {
			_, ok := seasonTypes[fl.Field().String()]
			return ok
		})
		_ = v.RegisterValidation("per_mode", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case career.PerModeTotals, career.PerModePerGame, career.PerModePer36:
				return true
			}
			return false
		})
		validate = v
	})
	return validate
}

// ValidSeason reports whether season looks like 2023-24, with the second
// part being the year after the first.
func ValidSeason(season string) bool {
	m := seasonPattern.FindStringSubmatch(season)
	if m == nil {
		return false
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	return (start+1)%100 == end
}

type seasonQuery struct {
	Season     string `validate:"required,season"`
	SeasonType string `validate:"required,season_type"`
}

type careerQuery struct {
	PerMode string `validate:"required,per_mode"`
}

type leadersQuery struct {
	Stat string `validate:"required"`
	TopN int    `validate:"min=1"`
}

func validateInput(ctx context.Context, payload any) error {
	if err := inputValidator().StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}
	return nil
}
