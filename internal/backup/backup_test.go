package backup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// createTestData creates sample data files for testing.
func createTestData(t *testing.T, dataDir string) {
	t.Helper()

	doc := map[string]interface{}{
		"activities": []map[string]interface{}{
			{"id": "holymass", "name": "Holymass"},
			{"id": "bible", "name": "30 Minutes Bible Reading"},
		},
		"logs": map[string]interface{}{
			"2025-06-23": map[string]interface{}{
				"date":   "2025-06-23",
				"scores": map[string]int{"holymass": 6, "bible": 0},
			},
			"2025-06-24": map[string]interface{}{
				"date":   "2025-06-24",
				"scores": map[string]int{"holymass": 7, "bible": 7},
			},
		},
		"reflections": map[string]string{
			"2025-06": "A month of small steps.",
		},
		"settings": map[string]interface{}{
			"notifications_enabled": true,
			"notification_time":     "20:00",
		},
	}
	writeTestJSON(t, filepath.Join(dataDir, "data.json"), doc)

	if err := os.WriteFile(filepath.Join(dataDir, "last_notification_date"), []byte("2025-06-24"), 0600); err != nil {
		t.Fatalf("failed to write last_notification_date: %v", err)
	}
}

// writeTestJSON writes JSON to a file for testing.
func writeTestJSON(t *testing.T, path string, v interface{}) {
	t.Helper()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// readTestJSON reads JSON from a file for testing.
func readTestJSON(t *testing.T, path string) map[string]interface{} {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}

	return result
}

// TestManager_Create tests backup creation.
func TestManager_Create(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.2.0-test")

	name, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Verify backup name format (2006-01-02_150405_XXX where XXX is milliseconds)
	if len(name) != 21 {
		t.Errorf("Expected backup name length 21, got %d: %s", len(name), name)
	}

	// Verify backup directory exists
	backupPath := filepath.Join(tmpDir, BackupsDir, name)
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Errorf("Backup directory not created: %s", backupPath)
	}

	// Verify files were copied
	for _, filename := range dataFiles {
		filePath := filepath.Join(backupPath, filename)
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			t.Errorf("File not backed up: %s", filename)
		}
	}

	// The reminder state file is plain text and must survive the copy intact.
	state, err := os.ReadFile(filepath.Join(backupPath, "last_notification_date"))
	if err != nil {
		t.Fatalf("failed to read backed up state file: %v", err)
	}
	if strings.TrimSpace(string(state)) != "2025-06-24" {
		t.Errorf("state file = %q, want 2025-06-24", state)
	}

	// Verify manifest
	manifestPath := filepath.Join(backupPath, ManifestFile)
	manifest := readTestJSON(t, manifestPath)

	if manifest["version"] != ManifestVersion {
		t.Errorf("Expected manifest version %s, got %v", ManifestVersion, manifest["version"])
	}

	if manifest["app_version"] != "1.2.0-test" {
		t.Errorf("Expected app_version 1.2.0-test, got %v", manifest["app_version"])
	}

	// Verify stats
	stats, ok := manifest["stats"].(map[string]interface{})
	if !ok {
		t.Fatal("Stats not found in manifest")
	}

	if int(stats["activities"].(float64)) != 2 {
		t.Errorf("Expected 2 activities, got %v", stats["activities"])
	}

	if int(stats["days_logged"].(float64)) != 2 {
		t.Errorf("Expected 2 days logged, got %v", stats["days_logged"])
	}

	if int(stats["reflections"].(float64)) != 1 {
		t.Errorf("Expected 1 reflection, got %v", stats["reflections"])
	}
}

// TestManager_List tests listing backups.
func TestManager_List(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	// No backups initially
	backups, err := manager.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("Expected 0 backups, got %d", len(backups))
	}

	name1, _ := manager.Create()
	time.Sleep(10 * time.Millisecond)
	name2, _ := manager.Create()

	// List should return both, newest first
	backups, err = manager.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if len(backups) != 2 {
		t.Fatalf("Expected 2 backups, got %d", len(backups))
	}

	if backups[0].Name != name2 {
		t.Errorf("Expected newest backup %s first, got %s", name2, backups[0].Name)
	}

	if backups[1].Name != name1 {
		t.Errorf("Expected older backup %s second, got %s", name1, backups[1].Name)
	}
}

// TestManager_Restore tests restoring from a backup.
func TestManager_Restore(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	name, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Modify the data document
	doc := map[string]interface{}{
		"activities":  []map[string]interface{}{},
		"logs":        map[string]interface{}{},
		"reflections": map[string]string{},
	}
	writeTestJSON(t, filepath.Join(tmpDir, "data.json"), doc)

	// Restore
	if err := manager.Restore(name); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	// Verify restoration
	restored := readTestJSON(t, filepath.Join(tmpDir, "data.json"))
	activities := restored["activities"].([]interface{})
	if len(activities) != 2 {
		t.Errorf("Expected 2 activities after restore, got %d", len(activities))
	}
	logs := restored["logs"].(map[string]interface{})
	if len(logs) != 2 {
		t.Errorf("Expected 2 logs after restore, got %d", len(logs))
	}
}

// TestManager_RestoreLatest tests restoring the most recent backup.
func TestManager_RestoreLatest(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	_, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Modify data
	doc := map[string]interface{}{
		"activities": []map[string]interface{}{
			{"id": "rosary", "name": "Rosary"},
		},
		"logs":        map[string]interface{}{},
		"reflections": map[string]string{},
	}
	writeTestJSON(t, filepath.Join(tmpDir, "data.json"), doc)

	// Second backup carries the modified data
	time.Sleep(10 * time.Millisecond)
	_, err = manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Modify again
	doc["activities"] = []map[string]interface{}{}
	writeTestJSON(t, filepath.Join(tmpDir, "data.json"), doc)

	// Restore latest (should restore the second backup)
	if err := manager.RestoreLatest(); err != nil {
		t.Fatalf("RestoreLatest() error: %v", err)
	}

	restored := readTestJSON(t, filepath.Join(tmpDir, "data.json"))
	activities := restored["activities"].([]interface{})
	if len(activities) != 1 {
		t.Fatalf("Expected 1 activity after restore, got %d", len(activities))
	}

	first := activities[0].(map[string]interface{})
	if first["id"] != "rosary" {
		t.Errorf("Expected restored activity id 'rosary', got %v", first["id"])
	}
}

// TestManager_RestoreNonexistent tests restoring a nonexistent backup.
func TestManager_RestoreNonexistent(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	err := manager.Restore("nonexistent-backup")
	if err == nil {
		t.Error("Expected error when restoring nonexistent backup")
	}
}

// TestManager_Delete tests deleting a backup.
func TestManager_Delete(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	name, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := manager.Delete(name); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	backups, _ := manager.List()
	if len(backups) != 0 {
		t.Errorf("Expected 0 backups after delete, got %d", len(backups))
	}
}

// TestManager_Prune tests pruning old backups.
func TestManager_Prune(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	for i := 0; i < 5; i++ {
		_, err := manager.Create()
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		time.Sleep(10 * time.Millisecond) // Ensure different timestamps
	}

	deleted, err := manager.Prune(2)
	if err != nil {
		t.Fatalf("Prune() error: %v", err)
	}

	if deleted != 3 {
		t.Errorf("Expected 3 deleted, got %d", deleted)
	}

	backups, _ := manager.List()
	if len(backups) != 2 {
		t.Errorf("Expected 2 backups after prune, got %d", len(backups))
	}
}

// TestManager_CreateWithEmptyData tests creating a backup with no data files.
func TestManager_CreateWithEmptyData(t *testing.T) {
	tmpDir := t.TempDir()

	// Don't create any data files
	manager := NewManager(tmpDir, "1.0.0")

	name, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	info, err := manager.GetBackup(name)
	if err != nil {
		t.Fatalf("GetBackup() error: %v", err)
	}

	if info.Name != name {
		t.Errorf("Expected backup name %s, got %s", name, info.Name)
	}
}

// TestManager_GetBackup tests getting info about a specific backup.
func TestManager_GetBackup(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	name, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	info, err := manager.GetBackup(name)
	if err != nil {
		t.Fatalf("GetBackup() error: %v", err)
	}

	if info.Name != name {
		t.Errorf("Expected name %s, got %s", name, info.Name)
	}

	if info.Stats["activities"] != 2 {
		t.Errorf("Expected 2 activities, got %d", info.Stats["activities"])
	}

	_, err = manager.GetBackup("nonexistent")
	if err == nil {
		t.Error("Expected error for nonexistent backup")
	}
}

// TestManager_RestoreCreatesSafetyBackup tests that restore creates a safety backup.
func TestManager_RestoreCreatesSafetyBackup(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	name, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := manager.Restore(name); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	// Should now have at least 2 backups (original + safety)
	backups, _ := manager.List()
	if len(backups) < 2 {
		t.Errorf("Expected at least 2 backups (including safety backup), got %d", len(backups))
	}
}
