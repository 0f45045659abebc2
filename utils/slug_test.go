// utils/slug_test.go
package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Luigi's Trattoria", "luigi-s-trattoria"},
		{"  Café  du  Parc  ", "caf-du-parc"},
		{"UPPER", "upper"},
		{"already-fine", "already-fine"},
		{"!!!", ""},
		{"", ""},
		{"a very long restaurant name that keeps going", "a-very-long-restaurant-name-th"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := Slugify("trailing dash here padding xx-"); len(got) > 30 {
		t.Errorf("slug longer than 30: %q", got)
	}
}

func TestMenuSlug(t *testing.T) {
	id := "f47ac10b-58cc-4372-a567-0e02b2c3d479"

	if got := MenuSlug("Luigi's Trattoria", "luigi@example.com", id); got != "luigi-s-trattoria-f47ac1" {
		t.Errorf("MenuSlug = %q", got)
	}
	// No restaurant name: fall back to the email local part
	if got := MenuSlug("", "luigi@example.com", id); got != "luigi-f47ac1" {
		t.Errorf("email fallback = %q", got)
	}
	// Nothing usable at all
	if got := MenuSlug("!!!", "@example.com", id); got != "menu-f47ac1" {
		t.Errorf("empty fallback = %q", got)
	}
	// Short ids are used whole
	if got := MenuSlug("Bar", "x@y.z", "abc"); got != "bar-abc" {
		t.Errorf("short id = %q", got)
	}
}
