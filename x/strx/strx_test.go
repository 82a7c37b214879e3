package strx

import "testing"

func TestCoalesce(t *testing.T) {
	for _, c := range []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"", ""}, ""},
		{[]string{"", "bus", "atomic"}, "bus"},
		{[]string{"channel", "atomic"}, "channel"},
	} {
		if got := Coalesce(c.in...); got != c.want {
			t.Errorf("Coalesce(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
