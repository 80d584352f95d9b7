package scenario

import (
	"testing"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

func TestAllScenariosPassStructuralValidation(t *testing.T) {
	for _, sc := range All() {
		result := domain.NewInputValidator().Validate(sc.Inputs)
		if !result.OK() {
			t.Errorf("scenario %s: structural validation failed: %v", sc.Name, result.Errors)
		}
	}
}

func TestAllScenariosHaveForecastAndLabor(t *testing.T) {
	for _, sc := range All() {
		if len(sc.Inputs.Forecast) == 0 {
			t.Errorf("scenario %s: no forecast entries", sc.Name)
		}
		if len(sc.Inputs.LaborDays) == 0 {
			t.Errorf("scenario %s: no labor days", sc.Name)
		}
	}
}
