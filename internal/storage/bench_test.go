package storage

import (
	"fmt"
	"testing"
	"time"
)

// createBenchStorage creates a storage instance for benchmarks
func createBenchStorage(b *testing.B) *Storage {
	b.Helper()
	store, err := New(b.TempDir())
	if err != nil {
		b.Fatalf("failed to create bench storage: %v", err)
	}
	return store
}

func benchData(b *testing.B, store *Storage, days int) *AppData {
	b.Helper()
	data, err := store.Load()
	if err != nil {
		b.Fatalf("Load failed: %v", err)
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		scores := make(map[string]int, len(data.Activities))
		for j, a := range data.Activities {
			scores[a.ID] = (i + j) % (MaxScore + 1)
		}
		data.Logs[date] = DailyLog{Date: date, Scores: scores}
	}
	if err := store.Save(data); err != nil {
		b.Fatalf("Save failed: %v", err)
	}
	return data
}

// BenchmarkSaveDailyLog measures the cost of a whole-document rewrite per
// score save, across growing histories.
func BenchmarkSaveDailyLog(b *testing.B) {
	sizes := []int{30, 365, 1825}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("days_%d", size), func(b *testing.B) {
			store := createBenchStorage(b)
			data := benchData(b, store, size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := store.SaveDailyLog(data, "2025-06-24", map[string]int{"bible": 7}); err != nil {
					b.Fatalf("SaveDailyLog failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkLoad measures document loading with varying history sizes.
func BenchmarkLoad(b *testing.B) {
	sizes := []int{30, 365, 1825}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("days_%d", size), func(b *testing.B) {
			store := createBenchStorage(b)
			benchData(b, store, size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := store.Load(); err != nil {
					b.Fatalf("Load failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkFencingScore measures the daily score calculation.
func BenchmarkFencingScore(b *testing.B) {
	store := createBenchStorage(b)
	data := benchData(b, store, 365)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FencingScore(data, "2024-06-15")
	}
}

// BenchmarkSetLastNotifiedDate measures the scheduler's durable write.
func BenchmarkSetLastNotifiedDate(b *testing.B) {
	store := createBenchStorage(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := store.SetLastNotifiedDate("2025-06-24"); err != nil {
			b.Fatalf("SetLastNotifiedDate failed: %v", err)
		}
	}
}
