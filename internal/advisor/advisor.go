// Package advisor evaluates a player's skill snapshot against role targets.
package advisor

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Request defaults.
const (
	DefaultTier         = "U21"
	DefaultAge          = 17.0
	DefaultStaminaShare = 15
)

// Check statuses.
const (
	StatusOK             = "OK"
	StatusKO             = "KO"
	StatusError          = "ERROR"
	StatusWarning        = "WARNING"
	StatusInfo           = "INFO"
	StatusMissing        = "MISSING"
	StatusCompleted      = "COMPLETED"
	StatusInProgress     = "IN_PROGRESS"
	StatusNotImplemented = "NOT_IMPLEMENTED"
)

// Request is a player skill snapshot to evaluate.
type Request struct {
	LastUpdate    string             `json:"last_update" example:"2025-01-15"`
	PlayerAge     *float64           `json:"player_age,omitempty" example:"19.5"`
	PlayerRole    string             `json:"player_role" example:"midfielder"`
	TeamTarget    string             `json:"team_target,omitempty" example:"NT"`
	RoleVariant   string             `json:"role_variant,omitempty" example:"Normal"`
	CurrentSkills map[string]float64 `json:"current_skills"`
	TrainingType  string             `json:"training_type" example:"playmaking"`
	StaminaShare  *int               `json:"stamina_share,omitempty" example:"12"`
}

// Report is the composite result, one entry per check.
type Report struct {
	Freshness     FreshnessResult     `json:"1_freshness"`
	Trajectory    TrajectoryResult    `json:"2_trajectory"`
	Compatibility CompatibilityResult `json:"3_compatibility"`
	RoleTargets   RoleTargetsResult   `json:"4_role_targets"`
	Stamina       StaminaResult       `json:"5_stamina"`
}

// Analyzer evaluates skill snapshots.
type Analyzer interface {
	Analyze(req Request, overrides []Override) Report
}

// Advisor evaluates requests against a target table.
type Advisor struct {
	table Table
	clock clockwork.Clock
}

var _ Analyzer = (*Advisor)(nil)

// New creates an Advisor. A nil clock uses the real clock.
func New(table Table, clock clockwork.Clock) *Advisor {
	if table == nil {
		table = DefaultTable()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Advisor{table: table, clock: clock}
}

// Analyze runs every check. A check that fails never prevents the others from running.
func (a *Advisor) Analyze(req Request, overrides []Override) Report {
	in := normalize(req)
	table := a.table.WithOverrides(overrides)

	return Report{
		Freshness: guard("freshness", func() FreshnessResult {
			return checkFreshness(in.LastUpdate, a.clock.Now())
		}, func(msg string) FreshnessResult {
			return FreshnessResult{Status: StatusError, Message: msg}
		}),
		Trajectory: guard("trajectory", checkTrajectory, func(msg string) TrajectoryResult {
			return TrajectoryResult{Status: StatusError, Message: msg}
		}),
		Compatibility: guard("compatibility", func() CompatibilityResult {
			return checkCompatibility(in.Role, in.TrainingType)
		}, func(msg string) CompatibilityResult {
			return CompatibilityResult{Status: StatusError, Message: msg}
		}),
		RoleTargets: guard("role targets", func() RoleTargetsResult {
			return checkRoleTargets(table, in)
		}, func(msg string) RoleTargetsResult {
			return RoleTargetsResult{Status: StatusError, Message: msg}
		}),
		Stamina: guard("stamina", func() StaminaResult {
			return checkStamina(in)
		}, func(msg string) StaminaResult {
			return StaminaResult{Status: StatusError, Message: msg}
		}),
	}
}

// input is a Request with defaults applied.
type input struct {
	LastUpdate   string
	Age          float64
	Role         string
	Tier         string
	Variant      string
	Skills       map[string]float64
	TrainingType string
	StaminaShare int
}

func normalize(req Request) input {
	in := input{
		LastUpdate:   req.LastUpdate,
		Age:          DefaultAge,
		Role:         lower(req.PlayerRole),
		Tier:         req.TeamTarget,
		Variant:      req.RoleVariant,
		Skills:       req.CurrentSkills,
		TrainingType: lower(req.TrainingType),
		StaminaShare: DefaultStaminaShare,
	}
	if req.PlayerAge != nil {
		in.Age = *req.PlayerAge
	}
	if req.StaminaShare != nil {
		in.StaminaShare = *req.StaminaShare
	}
	if in.Tier == "" {
		in.Tier = DefaultTier
	}
	if in.Variant == "" {
		in.Variant = DefaultVariant
	}
	if in.Skills == nil {
		in.Skills = map[string]float64{}
	}
	return in
}

func guard[T any](name string, check func() T, failed func(msg string) T) (result T) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("check", name).Interface("panic", r).Msg("Advisor check failed")
			result = failed(fmt.Sprintf("%s check failed: %v", name, r))
		}
	}()
	return check()
}
