package payments

import "testing"

func TestAmountToMinorUnits(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"25.50", 2550, false},
		{"1000", 100000, false},
		{"0.05", 5, false},
		{"0.5", 50, false},
		{".75", 75, false},
		{"  10.00 ", 1000, false},
		{"0", 0, true},
		{"0.00", 0, true},
		{"-5", 0, true},
		{"+5", 0, true},
		{"1.234", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"10.5x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := AmountToMinorUnits(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("AmountToMinorUnits(%q) = %d, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("AmountToMinorUnits(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("AmountToMinorUnits(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
