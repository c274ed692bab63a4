package game

import "testing"

func TestCleanName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Sunny Acres", "Sunny Acres"},
		{"exactly 16 cells", "1234567890123456", "1234567890123456"},
		{"long name truncated", "TheVeryLongFarmOfDoom", "TheVeryLongFarmO"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"wide runes count double", "田田田田田田田田田田", "田田田田田田田田"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"surrounding space trimmed", "  Barn  ", "Barn"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cleanName(tc.input)
			if got != tc.expect {
				t.Errorf("cleanName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}
