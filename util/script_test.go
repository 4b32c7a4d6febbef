package util

import "testing"

func TestIsAllCJK(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"丢弃", true},
		{"一", true},
		{"\u9fff", true},
		{"", true},
		{"；", false},
		{"vt", false},
		{"丢a", false},
		{"\u3007", false},
	}
	for _, tt := range tests {
		if got := IsAllCJK(tt.in); got != tt.want {
			t.Errorf("IsAllCJK(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsAlpha(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"vt", true},
		{"adj", true},
		{"丢弃", true},
		{"", false},
		{"n.", false},
		{"3d", false},
		{"a b", false},
	}
	for _, tt := range tests {
		if got := IsAlpha(tt.in); got != tt.want {
			t.Errorf("IsAlpha(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsPunctuation(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"；", true},
		{"，", true},
		{"。", true},
		{"...", true},
		{"(", true},
		{"", false},
		{"Ａ", false},
		{"a,", false},
		{"丢", false},
	}
	for _, tt := range tests {
		if got := IsPunctuation(tt.in); got != tt.want {
			t.Errorf("IsPunctuation(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
