// Package validator registers the custom binding validators of the API.
package validator

import (
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/storage"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateTeamRole accepts the roles a user can be given through set_role.
func validateTeamRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.RoleCoach, models.RoleAssistant, models.RoleScout:
		return true
	}
	return false
}

// validateFixtureName accepts plain .xml file names.
func validateFixtureName(fl validator.FieldLevel) bool {
	return storage.ValidateFixtureName(fl.Field().String()) == nil
}

// Register adds the custom validators to v.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("teamrole", validateTeamRole)
	_ = v.RegisterValidation("fixturename", validateFixtureName)
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}
