package competency

import "testing"

func TestLevelForScore_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Level
	}{
		{0, LevelN0},
		{19.999, LevelN0},
		{20, LevelN1},
		{39.999, LevelN1},
		{40, LevelN2},
		{59.999, LevelN2},
		{60, LevelN3},
		{74.999, LevelN3},
		{75, LevelN4},
		{87.999, LevelN4},
		{88, LevelN5},
		{100, LevelN5},
	}
	for _, c := range cases {
		if got := LevelForScore(c.score); got != c.want {
			t.Errorf("LevelForScore(%v) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestNextLevel(t *testing.T) {
	cases := []struct {
		in, want Level
	}{
		{LevelN0, LevelN1},
		{LevelN3, LevelN4},
		{LevelN5, LevelN5},
	}
	for _, c := range cases {
		if got := NextLevel(c.in); got != c.want {
			t.Errorf("NextLevel(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestAll_CountAndValidity(t *testing.T) {
	all := All()
	if len(all) != 9 {
		t.Fatalf("expected 9 competencies, got %d", len(all))
	}
	for _, c := range all {
		if !IsValid(c) {
			t.Errorf("competency %q reported invalid", c)
		}
		if DisplayName(c) == "" {
			t.Errorf("competency %q has no display name", c)
		}
	}
	if IsValid(Competency("underwater-basket-weaving")) {
		t.Error("unknown competency reported valid")
	}
}
