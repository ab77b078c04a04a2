package validators

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rumahkita/penjualan-pricing/internal/calculations"
	"github.com/rumahkita/penjualan-pricing/internal/config"
	"github.com/rumahkita/penjualan-pricing/pkg/utils"
)

// ValidationError описывает ошибку одного поля и, если есть,
// значение, которое можно подставить вместо введённого
type ValidationError struct {
	Field     string `json:"field"`
	Message   string `json:"message"`
	Suggested string `json:"suggested,omitempty"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors - набор ошибок по полям
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, v.Error())
	}
	return strings.Join(parts, "; ")
}

// ByField группирует сообщения по полям в формате {"field": ["msg"]}
func (e ValidationErrors) ByField() map[string][]string {
	out := make(map[string][]string, len(e))
	for _, v := range e {
		out[v.Field] = append(out[v.Field], v.Message)
	}
	return out
}

// Fields возвращает отсортированный список полей с ошибками
func (e ValidationErrors) Fields() []string {
	seen := make(map[string]struct{}, len(e))
	out := make([]string, 0, len(e))
	for _, v := range e {
		if _, ok := seen[v.Field]; ok {
			continue
		}
		seen[v.Field] = struct{}{}
		out = append(out, v.Field)
	}
	sort.Strings(out)
	return out
}

// Add добавляет ошибку, если она не nil
func (e *ValidationErrors) Add(err *ValidationError) {
	if err != nil {
		*e = append(*e, err)
	}
}

// Err возвращает nil для пустого набора
func (e ValidationErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ValidatePositiveNumber проверяет, что число конечное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) *ValidationError {
	if !utils.IsFinite(value) {
		return &ValidationError{Field: name, Message: "nilai harus berupa angka"}
	}
	if value < minInclusive {
		return &ValidationError{
			Field:     name,
			Message:   fmt.Sprintf("nilai minimal %.0f", minInclusive),
			Suggested: strconv.FormatFloat(minInclusive, 'f', -1, 64),
		}
	}
	return ValidateMaxNumber(name, value, maxInclusive)
}

// ValidateMaxNumber проверяет только верхнюю границу.
// Отрицательные значения пропускаются: расчёт сам заменяет их нулём.
func ValidateMaxNumber(name string, value float64, maxInclusive float64) *ValidationError {
	if !utils.IsFinite(value) {
		return &ValidationError{Field: name, Message: "nilai harus berupa angka"}
	}
	if value > maxInclusive {
		return &ValidationError{Field: name, Message: fmt.Sprintf("nilai terlalu besar (>%.0f)", maxInclusive)}
	}
	return nil
}

// CheckExcessArea проверяет kelebihan_tanah
func CheckExcessArea(cfg *config.Config, area float64) *ValidationError {
	return ValidatePositiveNumber("kelebihan_tanah", area, 0, cfg.MaxExcessArea)
}

// CheckExcessAreaLimit проверяет только максимум kelebihan_tanah
func CheckExcessAreaLimit(cfg *config.Config, area float64) *ValidationError {
	return ValidateMaxNumber("kelebihan_tanah", area, cfg.MaxExcessArea)
}

// CheckPricePerUnit проверяет harga_per_meter
func CheckPricePerUnit(cfg *config.Config, price int64) *ValidationError {
	return ValidatePositiveNumber("harga_per_meter", float64(price), 0, float64(cfg.MaxPricePerUnit))
}

func CheckPricePerUnitLimit(cfg *config.Config, price int64) *ValidationError {
	return ValidateMaxNumber("harga_per_meter", float64(price), float64(cfg.MaxPricePerUnit))
}

// CheckBasePrice проверяет цену из справочника
func CheckBasePrice(cfg *config.Config, price int64) *ValidationError {
	return ValidatePositiveNumber("harga", float64(price), 0, float64(cfg.MaxBasePrice))
}

// CheckDiscountValue проверяет, что скидка - неотрицательное число.
// Пустое поле допустимо и означает отсутствие скидки.
func CheckDiscountValue(raw string) *ValidationError {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	v, ok := utils.ParseAmount(raw)
	if !ok {
		return &ValidationError{Field: "diskon", Message: "diskon harus berupa angka"}
	}
	if v.IsNegative() {
		return &ValidationError{Field: "diskon", Message: "diskon tidak boleh negatif", Suggested: "0"}
	}
	return nil
}

// FromAdjustments превращает поправки расчёта в ошибки валидации
// с подсказкой допустимого значения
func FromAdjustments(adjustments []calculations.Adjustment) ValidationErrors {
	var errs ValidationErrors
	for _, a := range adjustments {
		errs = append(errs, &ValidationError{
			Field:     a.Field,
			Message:   a.Reason,
			Suggested: a.Applied,
		})
	}
	return errs
}
