package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-03-01", DateKey(d))
}

func TestWordIndexDeterministic(t *testing.T) {
	d := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	later := d.Add(6 * time.Hour)

	i := WordIndex(d, "salt", 390)
	assert.Equal(t, i, WordIndex(later, "salt", 390), "same UTC day")
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 390)
}

func TestWordIndexVaries(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for day := 0; day < 30; day++ {
		seen[WordIndex(start.AddDate(0, 0, day), "salt", 1000)] = true
	}
	assert.Greater(t, len(seen), 20, "indexes should spread across days")

	differs := false
	for day := 0; day < 30 && !differs; day++ {
		d := start.AddDate(0, 0, day)
		differs = WordIndex(d, "a", 1000) != WordIndex(d, "b", 1000)
	}
	assert.True(t, differs, "salt should change the sequence")
}

func TestWordIndexEmpty(t *testing.T) {
	assert.Zero(t, WordIndex(time.Now(), "salt", 0))
	assert.Zero(t, WordIndex(time.Now(), "salt", -3))
}
