//go:build !windows

package console

import "testing"

func TestIsBlueBackground(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{env: "", want: false},
		{env: "15;0", want: false},
		{env: "15;4", want: true},
		{env: "0;default;12", want: true},
		{env: "7;", want: false},
	}

	for _, tc := range tests {
		t.Setenv("COLORFGBG", tc.env)
		if got := IsBlueBackground(); got != tc.want {
			t.Fatalf("COLORFGBG=%q: expected %v, got %v", tc.env, tc.want, got)
		}
	}
}
