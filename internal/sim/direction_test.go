package sim

import "testing"

func TestSign(t *testing.T) {
	testCases := []struct {
		name string
		n    int
		want direction
	}{
		{"positive is up", 3, dirUp},
		{"negative is down", -2, dirDown},
		{"zero is stop", 0, dirStop},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sign(tc.n); got != tc.want {
				t.Errorf("sign(%d) = %v, want %v", tc.n, got, tc.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	testCases := []struct {
		d    direction
		want string
	}{
		{dirUp, "up"},
		{dirDown, "down"},
		{dirStop, "stop"},
	}

	for _, tc := range testCases {
		if got := tc.d.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.d, got, tc.want)
		}
	}
}
