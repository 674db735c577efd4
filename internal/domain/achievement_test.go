package domain

import "testing"

func TestAchievementsFor(t *testing.T) {
	tests := []struct {
		total      int
		wantEarned []string
	}{
		{0, nil},
		{1, []string{"first_time_donor"}},
		{2, []string{"first_time_donor"}},
		{3, []string{"first_time_donor", "regular_donor"}},
		{5, []string{"first_time_donor", "regular_donor", "life_saver"}},
		{12, []string{"first_time_donor", "regular_donor", "life_saver"}},
	}

	for _, tt := range tests {
		badges := AchievementsFor(tt.total)
		if len(badges) != 3 {
			t.Fatalf("AchievementsFor(%d) returned %d badges, want 3", tt.total, len(badges))
		}
		var earned []string
		for _, b := range badges {
			if b.Earned {
				earned = append(earned, b.Code)
			}
		}
		if len(earned) != len(tt.wantEarned) {
			t.Fatalf("AchievementsFor(%d) earned %v, want %v", tt.total, earned, tt.wantEarned)
		}
		for i := range earned {
			if earned[i] != tt.wantEarned[i] {
				t.Fatalf("AchievementsFor(%d) earned %v, want %v", tt.total, earned, tt.wantEarned)
			}
		}
	}
}
