package validators

import "testing"

type sample struct {
	ID     int64  `json:"no_transaksi" validate:"gt=0"`
	Plot   string `json:"kavling_dipesan" validate:"notblank"`
	Kind   string `json:"tipe_diskon" validate:"required,oneof=percent fixed"`
	Ignore string `json:"-"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name   string
		input  sample
		fields map[string]string
	}{
		{
			name:  "valid",
			input: sample{ID: 1, Plot: "A-1", Kind: "fixed"},
		},
		{
			name:  "all missing",
			input: sample{Plot: "   "},
			fields: map[string]string{
				"no_transaksi":    "wajib diisi",
				"kavling_dipesan": "wajib diisi",
				"tipe_diskon":     "wajib diisi",
			},
		},
		{
			name:   "unknown discount kind",
			input:  sample{ID: 1, Plot: "A-1", Kind: "voucher"},
			fields: map[string]string{"tipe_diskon": "harus salah satu dari: percent, fixed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.input)
			if len(errs) != len(tt.fields) {
				t.Fatalf("ValidateStruct() = %v, want %d errors", errs, len(tt.fields))
			}
			for _, e := range errs {
				if want, ok := tt.fields[e.Field]; !ok || want != e.Message {
					t.Errorf("unexpected error %s: %q", e.Field, e.Message)
				}
			}
		})
	}
}
