package storage

// DefaultActivities is the starting set seeded on first run. IDs are stable
// and survive renames; historical scores reference them.
func DefaultActivities() []Activity {
	return []Activity{
		{ID: "holymass", Name: "Holymass", Icon: "✝"},
		{ID: "bible", Name: "30 Minutes Bible Reading", Icon: "📖"},
		{ID: "tapping", Name: "TAPPING", Icon: "👆"},
		{ID: "rosary", Name: "Rosary", Icon: "📿"},
		{ID: "meditation", Name: "Meditation (writing)", Icon: "✍"},
		{ID: "protection", Name: "Protection Prayers", Icon: "🛡"},
		{ID: "helping", Name: "Helping A Person", Icon: "🤝"},
		{ID: "reading", Name: "Spiritual Reading/Listening (Min 15 Minutes)", Icon: "🎧"},
		{ID: "physical", Name: "Physical Activity", Icon: "🏃"},
		{ID: "learning", Name: "Learning a New Thing (Min 15 Minutes)", Icon: "💡"},
	}
}

// DefaultSettings returns the settings used when none are persisted.
// Notifications start disabled; the user opts in from the settings view.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: false,
		NotificationTime:     "20:00",
		DarkMode:             false,
	}
}

// DefaultData returns a fresh AppData document for first run.
func DefaultData() *AppData {
	return &AppData{
		Activities:  DefaultActivities(),
		Logs:        map[string]DailyLog{},
		Reflections: map[string]string{},
		Settings:    DefaultSettings(),
	}
}
