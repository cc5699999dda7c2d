package environment

import (
	"reflect"
	"testing"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"add", "", 3},
		{"add", "add", 0},
		{"add", "adds", 1},
		{"Grean", "Green", 1},
		{"map", "fold", 4},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		if got := editDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNearbyNames_RanksByDistance(t *testing.T) {
	pool := []string{"map", "mapM", "maap", "fold", "filter"}
	got := nearbyNames("map", pool)
	want := []string{"maap", "mapM"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("nearbyNames = %v, want %v", got, want)
	}
}

func TestNearbyNames_DropsNoise(t *testing.T) {
	got := nearbyNames("ab", []string{"xyzzy", "wobble"})
	if len(got) != 0 {
		t.Errorf("distant candidates should be dropped, got %v", got)
	}
}

func TestNearbyNames_CapsCount(t *testing.T) {
	pool := []string{"adda", "addb", "addc", "addd", "adde"}
	got := nearbyNames("add", pool)
	if len(got) != maxSuggestions {
		t.Errorf("got %d suggestions, want %d", len(got), maxSuggestions)
	}
}

func TestNearbyNames_ExactMatchExcluded(t *testing.T) {
	got := nearbyNames("add", []string{"add", "adds"})
	if hasSuggestion(got, "add") {
		t.Errorf("a name is never a suggestion for itself")
	}
}
