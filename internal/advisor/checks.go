package advisor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Accepted last-update layouts.
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// MaxFreshDays is the oldest snapshot, in whole days, still considered fresh.
const MaxFreshDays = 3

// allowedTraining lists the training types that develop each role.
var allowedTraining = map[string][]string{
	"goalkeeper": {"goalkeeping", "set pieces", "defending"},
	"defender":   {"defending", "set pieces", "playmaking"},
	"midfielder": {"playmaking", "passing", "defending", "set pieces"},
	"winger":     {"winger", "playmaking", "passing", "defending"},
	"wingback":   {"defending", "winger", "passing"},
	"forward":    {"scoring", "passing", "winger", "set pieces"},
}

// FreshnessResult reports how old the snapshot is.
type FreshnessResult struct {
	Status    string `json:"status"`
	DaysAgo   *int   `json:"days_ago,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Message   string `json:"message,omitempty"`
}

// TrajectoryResult is a placeholder for a predictive check.
type TrajectoryResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CompatibilityResult reports whether the training fits the role.
type CompatibilityResult struct {
	Status   string   `json:"status"`
	Role     string   `json:"role,omitempty"`
	Training string   `json:"training,omitempty"`
	Allowed  []string `json:"allowed,omitempty"`
	Message  string   `json:"message,omitempty"`
}

// SkillResult is the evaluation of one threshold.
type SkillResult struct {
	Skill   string   `json:"skill"`
	Current float64  `json:"current"`
	Target  float64  `json:"target"`
	Status  string   `json:"status"`
	Pct     int      `json:"pct"`
	Diff    *float64 `json:"diff,omitempty"`
}

// RoleTargetsResult compares current skills with the selected targets.
type RoleTargetsResult struct {
	Status         string        `json:"status"`
	RoleAnalyzed   string        `json:"role_analyzed,omitempty"`
	Fallback       bool          `json:"fallback"`
	Details        []SkillResult `json:"details"`
	MissingSummary []string      `json:"missing_summary"`
	Message        string        `json:"message,omitempty"`
}

// StaminaResult reports whether the stamina share suits the player.
type StaminaResult struct {
	Status  string `json:"status"`
	Current int    `json:"current"`
	Message string `json:"message"`
}

func checkFreshness(lastUpdate string, now time.Time) FreshnessResult {
	if strings.TrimSpace(lastUpdate) == "" {
		return FreshnessResult{Status: StatusError, Message: "last update date is missing"}
	}

	layout := dateLayout
	if strings.Contains(lastUpdate, "T") {
		layout = dateTimeLayout
	}
	updated, err := time.ParseInLocation(layout, lastUpdate, now.Location())
	if err != nil {
		return FreshnessResult{Status: StatusError, Message: "invalid date format"}
	}

	// Whole days, floored, so any future timestamp counts as negative.
	days := int(math.Floor(now.Sub(updated).Hours() / 24))
	if days >= 0 && days <= MaxFreshDays {
		return FreshnessResult{Status: StatusOK, DaysAgo: &days, Timestamp: lastUpdate}
	}
	msg := fmt.Sprintf("data is older than %d days", MaxFreshDays)
	if days < 0 {
		msg = "last update date is in the future"
	}
	return FreshnessResult{Status: StatusKO, DaysAgo: &days, Message: msg}
}

func checkTrajectory() TrajectoryResult {
	return TrajectoryResult{
		Status:  StatusNotImplemented,
		Message: "predictive training analysis is not available yet",
	}
}

func checkCompatibility(role, training string) CompatibilityResult {
	allowed, ok := allowedTraining[role]
	if !ok {
		return CompatibilityResult{Status: StatusWarning, Message: fmt.Sprintf("unknown role %q", role)}
	}

	for _, t := range allowed {
		if t == training {
			return CompatibilityResult{Status: StatusOK, Role: role, Training: training}
		}
	}
	return CompatibilityResult{
		Status:   StatusKO,
		Role:     role,
		Training: training,
		Allowed:  allowed,
		Message:  fmt.Sprintf("training %q is unusual for %s, recommended: %s", training, role, strings.Join(allowed, ", ")),
	}
}

func checkRoleTargets(table Table, in input) RoleTargetsResult {
	thresholds, fallback, ok := table.Lookup(in.Role, in.Tier, in.Variant)
	if !ok {
		return RoleTargetsResult{
			Status:         StatusInfo,
			Details:        []SkillResult{},
			MissingSummary: []string{},
			Message:        fmt.Sprintf("no targets configured for %s -> %s", in.Role, in.Tier),
		}
	}

	variant := in.Variant
	if fallback {
		variant = DefaultVariant + " (Fallback)"
	}

	result := RoleTargetsResult{
		Status:         StatusCompleted,
		RoleAnalyzed:   fmt.Sprintf("%s %s (%s)", cases.Title(language.Und).String(in.Role), in.Tier, variant),
		Fallback:       fallback,
		Details:        make([]SkillResult, 0, len(thresholds)),
		MissingSummary: []string{},
	}

	for _, th := range thresholds {
		current := in.Skills[th.Skill]
		skill := SkillResult{
			Skill:   th.Skill,
			Current: current,
			Target:  th.Value,
			Status:  StatusOK,
			Pct:     completion(current, th.Value),
		}
		if current < th.Value {
			diff := round1(current - th.Value)
			skill.Status = StatusMissing
			skill.Diff = &diff
			result.Status = StatusInProgress
			result.MissingSummary = append(result.MissingSummary,
				fmt.Sprintf("%s (%s)", th.Skill, strconv.FormatFloat(diff, 'f', -1, 64)))
		}
		result.Details = append(result.Details, skill)
	}
	return result
}

// completion returns min(100, floor(current/target*100)), never below zero.
func completion(current, target float64) int {
	if target <= 0 {
		return 100
	}
	pct := math.Floor(current / target * 100)
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return int(pct)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func checkStamina(in input) StaminaResult {
	result := StaminaResult{Status: StatusOK, Current: in.StaminaShare, Message: "stamina share is balanced"}

	switch {
	case in.Tier == DefaultTier && in.Age < 21:
		if in.StaminaShare > 15 {
			result.Status = StatusWarning
			result.Message = "keep stamina low (10-12%) for U21 players to maximise skill training"
		}
	case in.Age >= 28:
		if in.StaminaShare < 25 {
			result.Status = StatusWarning
			result.Message = "older player, raise stamina above 25% to avoid fatigue during matches"
		}
	}
	return result
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
