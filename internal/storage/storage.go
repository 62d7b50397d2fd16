package storage

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fencing/internal/fsutil"
)

// Storage handles all file I/O operations. All app state lives in a single
// data.json document that is read whole and rewritten whole; the reminder
// scheduler's last-fired date lives in its own file so the scheduler never
// races the main document.
type Storage struct {
	dataDir string
	now     func() time.Time // injectable clock for deterministic tests
}

const (
	dataDirPerm  os.FileMode = 0700
	dataFilePerm os.FileMode = 0600

	dataFile         = "data.json"
	lastNotifiedFile = "last_notification_date"

	maxActivityNameLen = 80
	maxReflectionLen   = 20000

	// MinScore and MaxScore bound a single activity rating.
	MinScore = 0
	MaxScore = 10
)

// New creates a new Storage instance with the given data directory
func New(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Storage{dataDir: dataDir, now: time.Now}

	// Seed the data file on first run.
	if !fileExists(s.path(dataFile)) {
		if err := s.Save(DefaultData()); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// SetNowFunc overrides the clock used by time-dependent storage operations.
// Passing nil resets it to time.Now.
func (s *Storage) SetNowFunc(now func() time.Time) {
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// Now returns the current time according to the storage clock.
func (s *Storage) Now() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Today returns the current calendar day as YYYY-MM-DD.
func (s *Storage) Today() string {
	return s.Now().Format("2006-01-02")
}

// GetDataDir returns the path to the data directory.
func (s *Storage) GetDataDir() string {
	return s.dataDir
}

func (s *Storage) path(filename string) string {
	return filepath.Join(s.dataDir, filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

func newID(prefix string) (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(b[:])), nil
}

func (s *Storage) writeJSONAtomic(filename string, v any) error {
	path := s.path(filename)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", filename, err)
	}

	// Keep a best-effort backup before overwriting.
	fsutil.BestEffortBackup(path, dataFilePerm)

	if err := fsutil.WriteFileAtomic(path, data, dataFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	return nil
}

func (s *Storage) loadJSONWithRecovery(filename string, v any) error {
	path := s.path(filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := s.writeJSONAtomic(filename, v); err != nil {
				return err
			}
			return nil
		}
		return fmt.Errorf("read %s: %w", filename, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s.recoverCorruptJSON(filename, v, fmt.Errorf("%s is empty", filename))
	}

	if err := json.Unmarshal(data, v); err == nil {
		return nil
	}
	return s.recoverCorruptJSON(filename, v, fmt.Errorf("parse %s: %w", filename, err))
}

func (s *Storage) recoverCorruptJSON(filename string, v any, cause error) error {
	path := s.path(filename)

	// Try backup first.
	bakData, bakErr := os.ReadFile(path + ".bak")
	if bakErr == nil && len(bytes.TrimSpace(bakData)) > 0 {
		if err := json.Unmarshal(bakData, v); err == nil {
			corruptPath := fmt.Sprintf("%s.corrupt.%s", path, time.Now().Format("20060102-150405"))
			_ = os.Rename(path, corruptPath)
			_ = s.writeJSONAtomic(filename, v)
			return fmt.Errorf("%s (recovered from %s.bak)", cause.Error(), filename)
		}
	}

	// No usable backup: preserve the broken file (best effort) and reset.
	corruptPath := fmt.Sprintf("%s.corrupt.%s", path, time.Now().Format("20060102-150405"))
	_ = os.Rename(path, corruptPath)
	_ = s.writeJSONAtomic(filename, v)
	return fmt.Errorf("%s (reset to defaults; original moved to %s)", cause.Error(), corruptPath)
}

// Load reads the data document from disk, merging defaults into any missing
// sections so older or partially-shaped files load cleanly.
func (s *Storage) Load() (*AppData, error) {
	data := DefaultData()
	err := s.loadJSONWithRecovery(dataFile, data)
	mergeDefaults(data)
	return data, err
}

// Save writes the whole data document to disk. Last full write wins.
func (s *Storage) Save(data *AppData) error {
	mergeDefaults(data)
	return s.writeJSONAtomic(dataFile, data)
}

// mergeDefaults backfills sections a hand-edited or older file may lack.
// Present sections are kept wholesale, including an explicitly empty
// activity list.
func mergeDefaults(data *AppData) {
	if data.Activities == nil {
		data.Activities = DefaultActivities()
	}
	if data.Logs == nil {
		data.Logs = map[string]DailyLog{}
	}
	if data.Reflections == nil {
		data.Reflections = map[string]string{}
	}
	if data.Settings.NotificationTime == "" {
		data.Settings.NotificationTime = DefaultSettings().NotificationTime
	}
	// Keep map keys authoritative over any stale embedded date.
	for date, log := range data.Logs {
		if log.Date != date {
			log.Date = date
		}
		if log.Scores == nil {
			log.Scores = map[string]int{}
		}
		data.Logs[date] = log
	}
}

// ============================================================================
// Daily logs
// ============================================================================

// SaveDailyLog replaces the log for a date wholesale and persists.
// Scores are clamped to the valid range; unknown activity IDs are kept as-is
// so deleting an activity never destroys history.
func (s *Storage) SaveDailyLog(data *AppData, date string, scores map[string]int) error {
	if err := ValidateDate(date); err != nil {
		return err
	}

	clamped := make(map[string]int, len(scores))
	for id, score := range scores {
		clamped[id] = clampScore(score)
	}

	data.Logs[date] = DailyLog{Date: date, Scores: clamped}
	return s.Save(data)
}

// DeleteDailyLog removes the log for a date, if any, and persists.
func (s *Storage) DeleteDailyLog(data *AppData, date string) error {
	if _, ok := data.Logs[date]; !ok {
		return nil
	}
	delete(data.Logs, date)
	return s.Save(data)
}

// FencingScore is the day's overall score: the sum of the log's scores
// divided by the number of configured activities. Zero when the day has no
// log or no activities exist.
func FencingScore(data *AppData, date string) float64 {
	log, ok := data.Logs[date]
	if !ok || len(data.Activities) == 0 {
		return 0
	}
	sum := 0
	for _, score := range log.Scores {
		sum += score
	}
	return float64(sum) / float64(len(data.Activities))
}

// DaysLogged returns the total number of days with a log entry.
func DaysLogged(data *AppData) int {
	return len(data.Logs)
}

func clampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// ============================================================================
// Reflections
// ============================================================================

// SetReflection stores the free-text reflection for a YYYY-MM month and
// persists. An empty text removes the entry.
func (s *Storage) SetReflection(data *AppData, month, text string) error {
	if err := ValidateMonth(month); err != nil {
		return err
	}
	if len(text) > maxReflectionLen {
		return fmt.Errorf("reflection too long (max %d)", maxReflectionLen)
	}

	if strings.TrimSpace(text) == "" {
		delete(data.Reflections, month)
	} else {
		data.Reflections[month] = text
	}
	return s.Save(data)
}

// ============================================================================
// Activities
// ============================================================================

// AddActivity appends a new activity and persists.
func (s *Storage) AddActivity(data *AppData, name string) (*Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("activity name is required")
	}
	if len(name) > maxActivityNameLen {
		return nil, fmt.Errorf("activity name too long (max %d)", maxActivityNameLen)
	}

	id, err := newID("a")
	if err != nil {
		return nil, err
	}

	activity := Activity{ID: id, Name: name}
	data.Activities = append(data.Activities, activity)

	if err := s.Save(data); err != nil {
		return nil, err
	}
	return &activity, nil
}

// RenameActivity changes an activity's display name and persists. The ID is
// stable, so historical scores keep pointing at the renamed activity.
func (s *Storage) RenameActivity(data *AppData, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("activity name is required")
	}
	if len(name) > maxActivityNameLen {
		return fmt.Errorf("activity name too long (max %d)", maxActivityNameLen)
	}

	a := data.Activity(id)
	if a == nil {
		return fmt.Errorf("activity not found: %s", id)
	}
	a.Name = name
	return s.Save(data)
}

// DeleteActivity removes an activity from the configured list and persists.
// Scores referencing the ID stay in the logs; reports simply stop showing
// them.
func (s *Storage) DeleteActivity(data *AppData, id string) error {
	for i := range data.Activities {
		if data.Activities[i].ID == id {
			data.Activities = append(data.Activities[:i], data.Activities[i+1:]...)
			return s.Save(data)
		}
	}
	return fmt.Errorf("activity not found: %s", id)
}

// MoveActivity shifts an activity by delta positions (negative is up) and
// persists. Moves past either end clamp to the boundary.
func (s *Storage) MoveActivity(data *AppData, id string, delta int) error {
	from := -1
	for i := range data.Activities {
		if data.Activities[i].ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return fmt.Errorf("activity not found: %s", id)
	}

	to := from + delta
	if to < 0 {
		to = 0
	}
	if to > len(data.Activities)-1 {
		to = len(data.Activities) - 1
	}
	if to == from {
		return nil
	}

	a := data.Activities[from]
	data.Activities = append(data.Activities[:from], data.Activities[from+1:]...)
	data.Activities = append(data.Activities[:to], append([]Activity{a}, data.Activities[to:]...)...)
	return s.Save(data)
}

// ============================================================================
// Settings
// ============================================================================

// UpdateSettings replaces the settings block and persists.
func (s *Storage) UpdateSettings(data *AppData, settings Settings) error {
	if err := ValidateNotificationTime(settings.NotificationTime); err != nil {
		return err
	}
	data.Settings = settings
	return s.Save(data)
}

// ============================================================================
// Reminder state
// ============================================================================

// LastNotifiedDate returns the YYYY-MM-DD day the daily reminder last fired,
// or "" when it never has. A missing file is not an error.
func (s *Storage) LastNotifiedDate() (string, error) {
	data, err := os.ReadFile(s.path(lastNotifiedFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", lastNotifiedFile, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetLastNotifiedDate durably records the day the reminder fired. The value
// lives in its own file so only the scheduler writes it.
func (s *Storage) SetLastNotifiedDate(date string) error {
	if err := ValidateDate(date); err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(s.path(lastNotifiedFile), []byte(date+"\n"), dataFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", lastNotifiedFile, err)
	}
	return nil
}

// ============================================================================
// Validation
// ============================================================================

// ValidateDate checks a YYYY-MM-DD day string.
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return nil
}

// ValidateMonth checks a YYYY-MM month string.
func ValidateMonth(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return fmt.Errorf("invalid month %q: expected YYYY-MM", month)
	}
	return nil
}

// ValidateNotificationTime checks an HH:MM wall-clock string.
func ValidateNotificationTime(t string) error {
	if _, err := time.Parse("15:04", t); err != nil {
		return fmt.Errorf("invalid time %q: expected HH:MM", t)
	}
	return nil
}
