package token

import "testing"

func TestIsDateTime(t *testing.T) {
	yes := []string{
		"1979-05-27T07:32:00Z",
		"1979-05-27T00:32:00-07:00",
		"1979-05-27T00:32:00.999999-07:00",
		"1979-05-27 07:32:00Z",
		"1979-05-27t07:32:00z",
		"1979-05-27T07:32:00",
		"1979-05-27",
		"07:32:00",
		"00:32:00.999999",
	}
	no := []string{"", "1979-05-27T", "07:32", "1979-13-01", "true", "3.14"}
	for _, s := range yes {
		if !IsDateTime(s) {
			t.Errorf("IsDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range no {
		if IsDateTime(s) {
			t.Errorf("IsDateTime(%q) = true, want false", s)
		}
	}
}
