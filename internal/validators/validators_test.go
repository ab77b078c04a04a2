package validators

import (
	"errors"
	"testing"

	"github.com/rumahkita/penjualan-pricing/internal/calculations"
	"github.com/rumahkita/penjualan-pricing/internal/config"
)

func TestValidators(t *testing.T) {
	cfg, _ := config.LoadConfig()

	tests := []struct {
		name      string
		validator func(*config.Config, interface{}) *ValidationError
		value     interface{}
		wantError bool
	}{
		{
			name:      "valid excess area",
			validator: func(cfg *config.Config, v interface{}) *ValidationError { return CheckExcessArea(cfg, v.(float64)) },
			value:     12.5,
			wantError: false,
		},
		{
			name:      "negative excess area",
			validator: func(cfg *config.Config, v interface{}) *ValidationError { return CheckExcessArea(cfg, v.(float64)) },
			value:     -1.0,
			wantError: true,
		},
		{
			name:      "negative excess area passes the limit check",
			validator: func(cfg *config.Config, v interface{}) *ValidationError { return CheckExcessAreaLimit(cfg, v.(float64)) },
			value:     -1.0,
			wantError: false,
		},
		{
			name:      "excess area above the limit",
			validator: func(cfg *config.Config, v interface{}) *ValidationError { return CheckExcessAreaLimit(cfg, v.(float64)) },
			value:     20_000.0,
			wantError: true,
		},
		{
			name:      "negative price per unit passes the limit check",
			validator: func(cfg *config.Config, v interface{}) *ValidationError { return CheckPricePerUnitLimit(cfg, v.(int64)) },
			value:     int64(-1),
			wantError: false,
		},
		{
			name:      "valid price per unit",
			validator: func(cfg *config.Config, v interface{}) *ValidationError { return CheckPricePerUnit(cfg, v.(int64)) },
			value:     int64(1_500_000),
			wantError: false,
		},
		{
			name:      "price per unit too large",
			validator: func(cfg *config.Config, v interface{}) *ValidationError { return CheckPricePerUnit(cfg, v.(int64)) },
			value:     int64(5_000_000_000),
			wantError: true,
		},
		{
			name:      "valid base price",
			validator: func(cfg *config.Config, v interface{}) *ValidationError { return CheckBasePrice(cfg, v.(int64)) },
			value:     int64(650_000_000),
			wantError: false,
		},
		{
			name:      "discount empty",
			validator: func(_ *config.Config, v interface{}) *ValidationError { return CheckDiscountValue(v.(string)) },
			value:     "",
			wantError: false,
		},
		{
			name:      "discount garbage",
			validator: func(_ *config.Config, v interface{}) *ValidationError { return CheckDiscountValue(v.(string)) },
			value:     "10%",
			wantError: true,
		},
		{
			name:      "discount negative",
			validator: func(_ *config.Config, v interface{}) *ValidationError { return CheckDiscountValue(v.(string)) },
			value:     "-10",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator(cfg, tt.value)
			if (err != nil) != tt.wantError {
				t.Errorf("validator error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Fatal("empty set must not be an error")
	}

	errs.Add(&ValidationError{Field: "konsumen_id", Message: "wajib diisi"})
	errs.Add(nil)
	errs.Add(CheckDiscountValue("-1"))
	errs.Add(&ValidationError{Field: "diskon", Message: "kedua"})

	err := errs.Err()
	if err == nil {
		t.Fatal("expected error")
	}

	var target ValidationErrors
	if !errors.As(err, &target) {
		t.Fatal("errors.As must find ValidationErrors")
	}
	byField := target.ByField()
	if len(byField["diskon"]) != 2 || len(byField["konsumen_id"]) != 1 {
		t.Errorf("ByField() = %v", byField)
	}
	if fields := target.Fields(); len(fields) != 2 || fields[0] != "diskon" {
		t.Errorf("Fields() = %v", fields)
	}
	if target[1].Suggested != "0" {
		t.Errorf("negative discount suggestion = %q", target[1].Suggested)
	}
}

func TestFromAdjustments(t *testing.T) {
	errs := FromAdjustments([]calculations.Adjustment{
		{Field: "dp", Requested: "20", Applied: "40", Reason: "dp di luar rentang 40-50%"},
	})
	if len(errs) != 1 || errs[0].Field != "dp" || errs[0].Suggested != "40" {
		t.Errorf("FromAdjustments() = %+v", errs)
	}
}

func TestValidatePositiveNumberSuggestsMinimum(t *testing.T) {
	err := ValidatePositiveNumber("kelebihan_tanah", -3, 0, 100)
	if err == nil || err.Suggested != "0" {
		t.Errorf("ValidatePositiveNumber(-3) = %+v, want suggestion 0", err)
	}
	if err := ValidatePositiveNumber("kelebihan_tanah", 101, 0, 100); err == nil || err.Suggested != "" {
		t.Errorf("ValidatePositiveNumber(101) = %+v", err)
	}
}
