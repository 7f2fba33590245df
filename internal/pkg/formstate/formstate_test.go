package formstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleSections() map[string]Fields {
	return map[string]Fields{
		"registration": {
			"first_name":       "Amina",
			"consent":          true,
			"referral_sources": []string{"Community Visit"},
		},
		"ear_screening": {
			"left": map[string]interface{}{
				"condition": "Wax",
				"blocked":   false,
			},
		},
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	sections := sampleSections()
	baseline := Snapshot(sections)

	sections["registration"]["first_name"] = "Betty"
	sections["ear_screening"]["left"].(map[string]interface{})["condition"] = "Infection"

	assert.Equal(t, "Amina", baseline["registration"]["first_name"])
	assert.Equal(t, "Wax", baseline["ear_screening"]["left"].(map[string]interface{})["condition"])
}

func TestIsDirty(t *testing.T) {
	t.Run("Fresh Baseline Is Never Dirty", func(t *testing.T) {
		sections := sampleSections()
		baseline := Snapshot(sections)
		assert.False(t, IsDirty(sections, baseline))
	})

	t.Run("Single Leaf Change Is Dirty", func(t *testing.T) {
		sections := sampleSections()
		baseline := Snapshot(sections)
		sections["ear_screening"]["left"].(map[string]interface{})["blocked"] = true
		assert.True(t, IsDirty(sections, baseline))
	})

	t.Run("Trailing Whitespace Is Not Dirty", func(t *testing.T) {
		sections := sampleSections()
		baseline := Snapshot(sections)
		sections["registration"]["first_name"] = "Amina "
		assert.False(t, IsDirty(sections, baseline))
	})

	t.Run("Empty Sequence Entries Are Not Dirty", func(t *testing.T) {
		sections := sampleSections()
		baseline := Snapshot(sections)
		sections["registration"]["referral_sources"] = []string{"Community Visit", ""}
		assert.False(t, IsDirty(sections, baseline))
	})

	t.Run("Reordered Sequence Is Dirty", func(t *testing.T) {
		sections := sampleSections()
		sections["registration"]["referral_sources"] = []string{"Radio", "Clinic"}
		baseline := Snapshot(sections)
		sections["registration"]["referral_sources"] = []string{"Clinic", "Radio"}
		assert.True(t, IsDirty(sections, baseline))
	})

	t.Run("Whitespace Only Equals Absent", func(t *testing.T) {
		sections := sampleSections()
		baseline := Snapshot(sections)
		sections["registration"]["notes"] = "   "
		assert.False(t, IsDirty(sections, baseline))
	})

	t.Run("New Nonempty Field Is Dirty", func(t *testing.T) {
		sections := sampleSections()
		baseline := Snapshot(sections)
		sections["registration"]["notes"] = "walk-in"
		assert.True(t, IsDirty(sections, baseline))
	})
}

func TestValueEqual(t *testing.T) {
	t.Run("Strings Trimmed", func(t *testing.T) {
		assert.True(t, ValueEqual("Yes ", "Yes"))
		assert.False(t, ValueEqual("Yes", "No"))
	})

	t.Run("Numbers Exact", func(t *testing.T) {
		assert.True(t, ValueEqual(float64(35), 35))
		assert.False(t, ValueEqual(float64(35), float64(36)))
	})

	t.Run("Sequences Pruned Then Positional", func(t *testing.T) {
		assert.True(t, ValueEqual([]string{"Yes", ""}, []interface{}{"Yes"}))
		assert.False(t, ValueEqual([]string{"Yes"}, []string{"Yes", "No"}))
	})

	t.Run("Nested Records Recurse", func(t *testing.T) {
		a := map[string]interface{}{"left": map[string]interface{}{"gain": float64(20)}}
		b := map[string]interface{}{"left": map[string]interface{}{"gain": float64(20)}}
		assert.True(t, ValueEqual(a, b))
		b["left"].(map[string]interface{})["gain"] = float64(25)
		assert.False(t, ValueEqual(a, b))
	})

	t.Run("Absent Values", func(t *testing.T) {
		assert.False(t, ValueEqual(true, nil))
		assert.True(t, ValueEqual(nil, ""))
		assert.True(t, ValueEqual([]string{}, nil))
	})
}
