package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var validate *Validator

// InitValidator initializes the global validator with the game enum tags
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("rarity", validateRarity)
	_ = v.RegisterValidation("upgrade_track", validateUpgradeTrack)
	_ = v.RegisterValidation("quest_cycle", validateQuestCycle)
	_ = v.RegisterValidation("metric", validateMetric)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a field -> message map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "rarity":
			errs[field] = "Must be one of common, uncommon, rare, legendary, mythic or all"
		case "upgrade_track":
			errs[field] = "Unknown upgrade"
		case "quest_cycle":
			errs[field] = "Must be daily or weekly"
		case "metric":
			errs[field] = "Must be one of coins, picked, gems, level"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateRarity accepts a tier name or "all"; empty is left to required
func validateRarity(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || strings.EqualFold(s, SellAll) {
		return true
	}
	_, err := domain.ParseRarity(s)
	return err == nil
}

func validateUpgradeTrack(fl validator.FieldLevel) bool {
	s := domain.UpgradeTrack(fl.Field().String())
	for _, t := range domain.UpgradeTracks {
		if t == s {
			return true
		}
	}
	return false
}

func validateQuestCycle(fl validator.FieldLevel) bool {
	return domain.QuestCycle(fl.Field().String()).Valid()
}

func validateMetric(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || domain.LeaderboardMetric(s).Valid()
}
