package storage

// Activity is a trackable spiritual practice. Activities are ordered by
// their position in AppData.Activities; there is no separate order field.
type Activity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// DailyLog holds one day's scores, keyed by activity ID. Scores range 0-10.
// An activity absent from the map counts as 0 for display purposes but is
// excluded from monthly averages.
type DailyLog struct {
	Date   string         `json:"date"` // YYYY-MM-DD format
	Scores map[string]int `json:"scores"`
}

// Settings holds user preferences persisted alongside the data.
type Settings struct {
	NotificationsEnabled bool   `json:"notifications_enabled"`
	NotificationTime     string `json:"notification_time"` // HH:MM format
	DarkMode             bool   `json:"dark_mode"`
}

// AppData is the single persisted document. It is loaded whole, mutated in
// memory, and written back whole on every change.
type AppData struct {
	Activities  []Activity          `json:"activities"`
	Logs        map[string]DailyLog `json:"logs"`        // keyed by YYYY-MM-DD
	Reflections map[string]string   `json:"reflections"` // keyed by YYYY-MM
	Settings    Settings            `json:"settings"`
}

// Activity returns the activity with the given ID, or nil.
func (d *AppData) Activity(id string) *Activity {
	for i := range d.Activities {
		if d.Activities[i].ID == id {
			return &d.Activities[i]
		}
	}
	return nil
}
