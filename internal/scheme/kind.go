package scheme

import (
	"fmt"
	"strings"
)

// Kind - стабильный код схемы оплаты (skema pembayaran)
type Kind string

const (
	KindNone       Kind = "none"
	KindCashKeras  Kind = "cash_keras"
	KindProgress2  Kind = "progress_2_lantai"
	KindProgress3  Kind = "progress_3_lantai"
	KindInhouse3x  Kind = "inhouse_3x"
	KindInhouse6x  Kind = "inhouse_6x"
	KindInhouse12x Kind = "inhouse_12x"
	KindKPR        Kind = "kpr"
	KindOther      Kind = "other"
)

// Class группирует схемы с одинаковыми правилами DP и графика
type Class int

const (
	ClassNone Class = iota
	ClassCash
	ClassProgress
	ClassInhouse
	ClassKPR
	ClassOther
)

// DPRange - допустимый диапазон процента DP
type DPRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains проверяет, что процент лежит в диапазоне
func (r DPRange) Contains(pct float64) bool {
	return pct >= r.Min && pct <= r.Max
}

var allKinds = []Kind{
	KindCashKeras,
	KindProgress2,
	KindProgress3,
	KindInhouse3x,
	KindInhouse6x,
	KindInhouse12x,
	KindKPR,
}

// Kinds возвращает все известные схемы в порядке каталога
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// ParseCode разбирает стабильный код схемы
func ParseCode(code string) (Kind, error) {
	c := Kind(strings.ToLower(strings.TrimSpace(code)))
	if c == "" || c == KindNone {
		return KindNone, nil
	}
	for _, k := range allKinds {
		if k == c {
			return k, nil
		}
	}
	if c == KindOther {
		return KindOther, nil
	}
	return KindOther, fmt.Errorf("неизвестный код схемы оплаты: %q", code)
}

// legacyNames - подстроки отображаемых имён из старого каталога.
// Первое совпадение побеждает.
var legacyNames = []struct {
	substr string
	kind   Kind
}{
	{"Cash By progress 2 lantai", KindProgress2},
	{"Cash By progress 3 lantai", KindProgress3},
	{"Inhouse 12x", KindInhouse12x},
	{"Inhouse 6x", KindInhouse6x},
	{"Inhouse 3x", KindInhouse3x},
	{"Cash Keras", KindCashKeras},
	{"KPR", KindKPR},
}

// FromLegacyName определяет схему по отображаемому имени.
// Используется только на границе загрузки каталога.
func FromLegacyName(name string) Kind {
	if strings.TrimSpace(name) == "" {
		return KindNone
	}
	for _, n := range legacyNames {
		if strings.Contains(name, n.substr) {
			return n.kind
		}
	}
	return KindOther
}

// Class возвращает класс схемы
func (k Kind) Class() Class {
	switch k {
	case KindCashKeras:
		return ClassCash
	case KindProgress2, KindProgress3:
		return ClassProgress
	case KindInhouse3x, KindInhouse6x, KindInhouse12x:
		return ClassInhouse
	case KindKPR:
		return ClassKPR
	case KindNone, "":
		return ClassNone
	default:
		return ClassOther
	}
}

// Installments возвращает число ежемесячных взносов inhouse-схемы
func (k Kind) Installments() int {
	switch k {
	case KindInhouse3x:
		return 3
	case KindInhouse6x:
		return 6
	case KindInhouse12x:
		return 12
	default:
		return 0
	}
}

// DPRange возвращает допустимый диапазон DP и значение по умолчанию
// при выходе за диапазон
func (k Kind) DPRange() (DPRange, float64) {
	switch k.Class() {
	case ClassProgress:
		return DPRange{Min: 40, Max: 50}, 40
	case ClassInhouse:
		return DPRange{Min: 30, Max: 50}, 30
	default:
		return DPRange{Min: 0, Max: 100}, 0
	}
}

// Snaps сообщает, сбрасывается ли DP к минимуму при выходе за диапазон
func (k Kind) Snaps() bool {
	c := k.Class()
	return c == ClassProgress || c == ClassInhouse
}

func (k Kind) String() string {
	if k == "" {
		return string(KindNone)
	}
	return string(k)
}
