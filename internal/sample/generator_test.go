package sample

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/config"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/domain"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/registry"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/validation"
)

func fixedNow() time.Time {
	// a Tuesday, so the trailing two weeks hold exactly 10 weekdays
	return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
}

func TestGenerator_Generate(t *testing.T) {
	g := NewGeneratorWithSeed(42, fixedNow)
	entries := g.Generate()

	require.NotEmpty(t, entries)

	t.Run("only weekdays within the trailing window", func(t *testing.T) {
		now := fixedNow()
		earliest := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -14)
		for _, e := range entries {
			date, err := time.Parse(domain.DateFormat, e.Date)
			require.NoError(t, err)
			assert.NotEqual(t, time.Saturday, date.Weekday(), e.Date)
			assert.NotEqual(t, time.Sunday, date.Weekday(), e.Date)
			assert.True(t, date.Before(fixedNow()), "never today or later: %s", e.Date)
			assert.False(t, date.Before(earliest), "never older than the window: %s", e.Date)
		}
	})

	t.Run("every entry passes full acceptance validation", func(t *testing.T) {
		ev := validation.NewEntryValidator(config.NewConfig().Validation)
		for _, e := range entries {
			assert.NoError(t, ev.ValidateEntry(e, fixedNow()), "entry %s %s", e.Date, e.StartTime)
		}
	})

	t.Run("durations match the times", func(t *testing.T) {
		for _, e := range entries {
			assert.Equal(t, validation.ComputeDuration(e.StartTime, e.EndTime), e.Duration)
		}
	})

	t.Run("categories resolve in the registry", func(t *testing.T) {
		for _, e := range entries {
			assert.True(t, registry.Exists(e.CategoryID))
		}
	})

	t.Run("sorted by date descending then start time ascending", func(t *testing.T) {
		for i := 1; i < len(entries); i++ {
			prev, cur := entries[i-1], entries[i]
			if prev.Date == cur.Date {
				assert.LessOrEqual(t, prev.StartTime, cur.StartTime)
			} else {
				assert.Greater(t, prev.Date, cur.Date)
			}
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, e := range entries {
			assert.False(t, seen[e.ID])
			seen[e.ID] = true
		}
	})

	t.Run("communication appears every working day", func(t *testing.T) {
		commDays := make(map[string]bool)
		allDays := make(map[string]bool)
		for _, e := range entries {
			allDays[e.Date] = true
			if e.CategoryID == registry.CategoryCommunication {
				commDays[e.Date] = true
			}
		}
		assert.Equal(t, len(allDays), len(commDays))
		assert.Equal(t, 10, len(allDays))
	})
}

func TestGenerator_Deterministic(t *testing.T) {
	first := NewGeneratorWithSeed(7, fixedNow).Generate()
	second := NewGeneratorWithSeed(7, fixedNow).Generate()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Date, second[i].Date)
		assert.Equal(t, first[i].StartTime, second[i].StartTime)
		assert.Equal(t, first[i].CategoryID, second[i].CategoryID)
		assert.Equal(t, first[i].Activity, second[i].Activity)
	}
}
