package domain

// Achievement is a donor milestone badge.
type Achievement struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Threshold   int    `json:"threshold"`
	Earned      bool   `json:"earned"`
}

// AchievementsFor evaluates every badge against a donor's lifetime
// donation count.
func AchievementsFor(totalDonations int) []Achievement {
	badges := []Achievement{
		{Code: "first_time_donor", Title: "First Time Donor", Description: "Donate blood for the first time", Threshold: 1},
		{Code: "regular_donor", Title: "Regular Donor", Description: "Donate blood at least 3 times", Threshold: 3},
		{Code: "life_saver", Title: "Life Saver", Description: "Donate blood at least 5 times", Threshold: 5},
	}
	for i := range badges {
		badges[i].Earned = totalDonations >= badges[i].Threshold
	}
	return badges
}
