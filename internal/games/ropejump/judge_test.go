package ropejump

import "testing"

func TestCheckCollision(t *testing.T) {
	j := NewJudge(15)

	tests := []struct {
		name    string
		ropeY   float64
		feetY   float64
		topY    float64
		jumping bool
		want    bool
	}{
		{"no rope", NoRopeY, 500, 380, false, false},
		{"rope above head", 370, 500, 380, false, false},
		{"rope at head top", 380, 500, 380, false, false},
		{"rope inside body", 440, 500, 380, false, true},
		{"rope near feet", 490, 500, 380, false, true},
		{"rope just below feet", 510, 500, 380, false, true},
		{"rope at tolerance", 515, 500, 380, false, false},
		{"rope well below feet", 530, 500, 380, false, false},
		{"jumping is immune", 440, 500, 380, true, false},
		{"jumping near feet", 495, 500, 380, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := j.CheckCollision(tt.ropeY, tt.feetY, tt.topY, tt.jumping); got != tt.want {
				t.Errorf("CheckCollision(%v, %v, %v, %v) = %v, want %v",
					tt.ropeY, tt.feetY, tt.topY, tt.jumping, got, tt.want)
			}
		})
	}
}

func TestScoreOncePerDescent(t *testing.T) {
	var s Score

	if s.Observe(SweepDescending, 400, 450, true) {
		t.Error("rope above feet should not score")
	}
	if !s.Observe(SweepDescending, 460, 450, true) {
		t.Error("rope below jumping feet should score")
	}
	if s.Observe(SweepDescending, 480, 450, true) {
		t.Error("second pass in the same descent should not score")
	}
	if s.Current() != 1 || !s.ScoredThisCycle() {
		t.Fatalf("Current=%d ScoredThisCycle=%v, want 1 and true", s.Current(), s.ScoredThisCycle())
	}

	// Rope passes the bottom and climbs back; nothing is awarded
	s.Observe(SweepBelowFeet, NoRopeY, 500, false)
	s.Observe(SweepAscending, NoRopeY, 500, true)
	if s.Current() != 1 {
		t.Errorf("Current = %d outside descent, want 1", s.Current())
	}

	s.Observe(SweepAboveHead, NoRopeY, 500, false)
	if s.ScoredThisCycle() {
		t.Error("guard should re-arm above the head")
	}

	if !s.Observe(SweepDescending, 460, 450, true) {
		t.Error("next descent should score again")
	}
	if s.Current() != 2 {
		t.Errorf("Current = %d, want 2", s.Current())
	}
}

func TestScoreNeedsJump(t *testing.T) {
	var s Score
	if s.Observe(SweepDescending, 520, 500, false) {
		t.Error("grounded character should not score")
	}
	if s.Observe(SweepDescending, NoRopeY, 500, true) {
		t.Error("sentinel should not score")
	}
	if s.Current() != 0 {
		t.Errorf("Current = %d, want 0", s.Current())
	}
}

func TestScoreReset(t *testing.T) {
	var s Score
	s.Observe(SweepDescending, 460, 450, true)
	s.Reset()

	if s.Current() != 0 || s.ScoredThisCycle() {
		t.Errorf("after reset Current=%d ScoredThisCycle=%v", s.Current(), s.ScoredThisCycle())
	}
}
