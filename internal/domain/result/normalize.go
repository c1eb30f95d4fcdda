// internal/domain/result/normalize.go
package result

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrScoreInvalid is returned by Normalize when a score token cannot be turned into a percentage.
var ErrScoreInvalid = errors.New("score invalid")

// Normalize converts a raw score token into a percentage rounded to one decimal.
// A token containing "/" is read as "obtained/total" and maxScore is ignored;
// any other token is a plain obtained score measured against maxScore.
// Values above 100 are kept.
func Normalize(raw string, maxScore float64) (float64, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return 0, ErrScoreInvalid
	}

	if strings.Contains(token, "/") {
		parts := strings.Split(token, "/")
		if len(parts) != 2 {
			return 0, ErrScoreInvalid
		}
		obtained, err := parseScore(parts[0])
		if err != nil {
			return 0, err
		}
		total, err := parseScore(parts[1])
		if err != nil {
			return 0, err
		}
		if total == 0 {
			return 0, ErrScoreInvalid
		}
		return Round1(obtained / total * 100), nil
	}

	if !(maxScore > 0) {
		return 0, ErrScoreInvalid
	}
	obtained, err := parseScore(token)
	if err != nil {
		return 0, err
	}
	return Round1(obtained / maxScore * 100), nil
}

func parseScore(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, ErrScoreInvalid
	}
	return v, nil
}

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
