package domain

import "fmt"

// Validate checks an engineer record before it is stored. Scoring never
// calls this: the scorers accept sparse records as they are.
func (e Engineer) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("engineer id must not be empty")
	}
	for i, c := range e.Skills {
		if c.SkillID == "" {
			return fmt.Errorf("engineer %s: skills[%d].skill_id must not be empty", e.ID, i)
		}
		if c.Level < 1 || c.Level > 5 {
			return fmt.Errorf("engineer %s: skill %q level = %d (must be between 1 and 5)", e.ID, c.SkillID, c.Level)
		}
		if c.Years != nil && *c.Years < 0 {
			return fmt.Errorf("engineer %s: skill %q years must be >= 0", e.ID, c.SkillID)
		}
	}
	if e.DesiredMinMonthly != nil && *e.DesiredMinMonthly <= 0 {
		return fmt.Errorf("engineer %s: desired_min_monthly must be > 0 (got %d)", e.ID, *e.DesiredMinMonthly)
	}
	if e.AvailabilityHoursPerWeek != nil && *e.AvailabilityHoursPerWeek < 0 {
		return fmt.Errorf("engineer %s: availability_hours_per_week must be >= 0", e.ID)
	}
	return nil
}

// Validate checks a job record before it is stored.
func (j Job) Validate() error {
	if j.ID == "" {
		return fmt.Errorf("job id must not be empty")
	}
	for i, r := range j.Requirements {
		if r.SkillID == "" {
			return fmt.Errorf("job %s: requirements[%d].skill_id must not be empty", j.ID, i)
		}
		if r.Weight < 1 || r.Weight > 5 {
			return fmt.Errorf("job %s: requirement %q weight = %d (must be between 1 and 5)", j.ID, r.SkillID, r.Weight)
		}
	}
	for name, v := range map[string]*int{
		"budget_min_monthly": j.BudgetMinMonthly,
		"budget_max_monthly": j.BudgetMaxMonthly,
	} {
		if v != nil && *v <= 0 {
			return fmt.Errorf("job %s: %s must be > 0 (got %d)", j.ID, name, *v)
		}
	}
	for name, v := range map[string]*float64{
		"weekly_hours_min": j.WeeklyHoursMin,
		"weekly_hours_max": j.WeeklyHoursMax,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("job %s: %s must be >= 0", j.ID, name)
		}
	}
	return nil
}
