package validation

import (
	"regexp"
	"strings"
	"time"

	"maintenance-system/pkg/constants"

	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func registerRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"maintenance_for":  isMaintenanceFor,
		"request_stage":    isRequestStage,
		"maintenance_type": isMaintenanceType,
		"not_blank":        isNotBlank,
		"custom_email":     isGoodEmailFormat,
		"iso_date":         isISODate,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func isMaintenanceFor(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == constants.MaintenanceForEquipment || s == constants.MaintenanceForWorkCenter
}

func isRequestStage(fl validator.FieldLevel) bool {
	return constants.IsValidStage(fl.Field().String())
}

func isMaintenanceType(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == constants.TypeCorrective || s == constants.TypePreventive
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// isISODate accepts YYYY-MM-DD; empty values are left to omitempty/required.
func isISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
