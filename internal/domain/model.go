package domain

import "time"

// SkillClaim is one skill an engineer claims, at a self-assessed level 1-5.
type SkillClaim struct {
	SkillID string   `json:"skill_id" yaml:"skill_id"`
	Level   int      `json:"level"    yaml:"level"`
	Years   *float64 `json:"years,omitempty" yaml:"years,omitempty"`
}

// SkillRequirement is one skill a job asks for. Weight 1-5 expresses importance.
type SkillRequirement struct {
	SkillID string `json:"skill_id" yaml:"skill_id"`
	Weight  int    `json:"weight"   yaml:"weight"`
}

// Engineer holds the candidate-side inputs of a match.
// Pointer fields distinguish "not specified" from zero values.
type Engineer struct {
	ID                       string       `json:"id"                                    yaml:"id"`
	Name                     string       `json:"name,omitempty"                        yaml:"name,omitempty"`
	Skills                   []SkillClaim `json:"skills,omitempty"                      yaml:"skills,omitempty"`
	DesiredMinMonthly        *int         `json:"desired_min_monthly,omitempty"         yaml:"desired_min_monthly,omitempty"`
	RemoteOK                 *bool        `json:"remote_ok,omitempty"                   yaml:"remote_ok,omitempty"`
	AvailabilityHoursPerWeek *float64     `json:"availability_hours_per_week,omitempty" yaml:"availability_hours_per_week,omitempty"`
}

// Job holds the posting-side inputs of a match.
type Job struct {
	ID               string             `json:"id"                           yaml:"id"`
	Title            string             `json:"title,omitempty"              yaml:"title,omitempty"`
	CompanyID        string             `json:"company_id,omitempty"         yaml:"company_id,omitempty"`
	Requirements     []SkillRequirement `json:"requirements,omitempty"       yaml:"requirements,omitempty"`
	BudgetMinMonthly *int               `json:"budget_min_monthly,omitempty" yaml:"budget_min_monthly,omitempty"`
	BudgetMaxMonthly *int               `json:"budget_max_monthly,omitempty" yaml:"budget_max_monthly,omitempty"`
	RemoteOK         *bool              `json:"remote_ok,omitempty"          yaml:"remote_ok,omitempty"`
	WeeklyHoursMin   *float64           `json:"weekly_hours_min,omitempty"   yaml:"weekly_hours_min,omitempty"`
	WeeklyHoursMax   *float64           `json:"weekly_hours_max,omitempty"   yaml:"weekly_hours_max,omitempty"`
}

// SkillIndex returns the engineer's claims keyed by skill id.
// A later claim for the same skill replaces an earlier one.
func (e Engineer) SkillIndex() map[string]SkillClaim {
	idx := make(map[string]SkillClaim, len(e.Skills))
	for _, c := range e.Skills {
		idx[c.SkillID] = c
	}
	return idx
}

// MatchScore is the result of scoring one engineer/job pair.
type MatchScore struct {
	EngineerID string        `json:"engineer_id,omitempty"`
	JobID      string        `json:"job_id,omitempty"`
	Overall    int           `json:"overall"`
	Factors    []FactorScore `json:"factors"`
	Regime     string        `json:"regime,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
}

func (s MatchScore) Tier() string { return TierFor(s.Overall) }

// Factor returns the named factor, if present.
func (s MatchScore) Factor(name string) (FactorScore, bool) {
	for _, f := range s.Factors {
		if f.Name == name {
			return f, true
		}
	}
	return FactorScore{}, false
}

// FactorScore is one factor's contribution to a MatchScore.
type FactorScore struct {
	Name       string  `json:"name"`
	Applicable bool    `json:"applicable"`
	Score      float64 `json:"score"`
	Weight     float64 `json:"weight"`
	Detail     string  `json:"detail,omitempty"`
}

func TierFor(score int) string {
	switch {
	case score >= 85:
		return "excellent"
	case score >= 70:
		return "strong"
	case score >= 50:
		return "fair"
	default:
		return "weak"
	}
}

// RankedMatch is one entry of a ranking produced by batch scoring.
type RankedMatch struct {
	EngineerID string     `json:"engineer_id"`
	JobID      string     `json:"job_id"`
	Score      MatchScore `json:"score"`
}

// Application is a submitted engineer/job application carrying a stamped score.
type Application struct {
	ID         string    `json:"id"`
	EngineerID string    `json:"engineer_id"`
	JobID      string    `json:"job_id"`
	MatchScore int       `json:"match_score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
