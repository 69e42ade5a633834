package treasury

import "testing"

func TestRoundCryptoPrice(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"micro price keeps 8 places", 0.0000123456789, 0.00001235},
		{"sub-cent boundary", 0.009876543, 0.00987654},
		{"sub-dollar keeps 6 places", 0.5123456789, 0.512346},
		{"dollar-and-up keeps 2 places", 42000.5512, 42000.55},
		{"exactly one dollar", 1.0, 1.0},
		{"rounds half up", 2.005, 2.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundCryptoPrice(tt.input); got != tt.want {
				t.Errorf("RoundCryptoPrice(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundEquityPrice(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{123.456, 123.46},
		{0.004, 0.0},
		{99.994999, 99.99},
	}

	for _, tt := range tests {
		if got := RoundEquityPrice(tt.input); got != tt.want {
			t.Errorf("RoundEquityPrice(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
