package canonical

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBool(t *testing.T) {
	t.Run("Vocabulary Matches Case-Insensitively", func(t *testing.T) {
		assert.Equal(t, true, NormalizeBool("Yes", nil))
		assert.Equal(t, true, NormalizeBool(" A LITTLE ", nil))
		assert.Equal(t, false, NormalizeBool("No", nil))
		assert.Equal(t, false, NormalizeBool("undecided", nil))
	})

	t.Run("Genuine Booleans Pass Through", func(t *testing.T) {
		assert.Equal(t, true, NormalizeBool(true, false))
		assert.Equal(t, false, NormalizeBool(false, true))
	})

	t.Run("Out Of Vocabulary Keeps Fallback", func(t *testing.T) {
		assert.Equal(t, true, NormalizeBool("maybe tomorrow", true))
		assert.Nil(t, NormalizeBool("???", nil))
	})
}

func TestNormalizeList(t *testing.T) {
	t.Run("Brace Delimited Text", func(t *testing.T) {
		assert.Equal(t, []string{"Medication", "Trauma"}, NormalizeList("{Medication,Trauma}"))
	})

	t.Run("Quoted And Padded Entries", func(t *testing.T) {
		assert.Equal(t, []string{"Noise", "Infection"}, NormalizeList(`{"Noise" , 'Infection'}`))
	})

	t.Run("Structured Sequence", func(t *testing.T) {
		assert.Equal(t, []string{"Yes", "No"}, NormalizeList([]interface{}{" Yes ", "No", ""}))
	})

	t.Run("Empty And Nil Yield Empty Sequence", func(t *testing.T) {
		assert.Equal(t, []string{}, NormalizeList(nil))
		assert.Equal(t, []string{}, NormalizeList(""))
		assert.Equal(t, []string{}, NormalizeList("{}"))
	})
}

func TestNormalizeDate(t *testing.T) {
	t.Run("Midnight Timestamp Does Not Shift A Day", func(t *testing.T) {
		// Simulate a clinic laptop west of UTC; the stored calendar date
		// must survive untouched.
		original := time.Local
		time.Local = time.FixedZone("UTC-7", -7*3600)
		defer func() { time.Local = original }()

		assert.Equal(t, "2024-03-05", NormalizeDate("2024-03-05T00:00:00Z", nil))
	})

	t.Run("Date Only String", func(t *testing.T) {
		assert.Equal(t, "2024-03-05", NormalizeDate("2024-03-05", nil))
	})

	t.Run("Timestamp With Time", func(t *testing.T) {
		assert.Equal(t, "2023-11-20", NormalizeDate("2023-11-20 14:30:00", nil))
	})

	t.Run("Numeric Epoch", func(t *testing.T) {
		epoch := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local).Unix()
		assert.Equal(t, "2024-06-01", NormalizeDate(float64(epoch), nil))
	})

	t.Run("Unparseable Keeps Fallback", func(t *testing.T) {
		assert.Equal(t, "2020-01-01", NormalizeDate("last tuesday", "2020-01-01"))
		assert.Nil(t, NormalizeDate("", nil))
	})
}

func TestNormalizeCategory(t *testing.T) {
	options := []string{"Employed", "Unemployed", "Student", "Retired", "Homemaker"}

	t.Run("Known Option Gets Canonical Casing", func(t *testing.T) {
		assert.Equal(t, "Employed", NormalizeCategory("EMPLOYED", options, nil))
		assert.Equal(t, "Homemaker", NormalizeCategory(" homemaker ", options, nil))
	})

	t.Run("Unknown Text Is Title-Cased Not Dropped", func(t *testing.T) {
		assert.Equal(t, "Seasonal Farm Worker", NormalizeCategory("seasonal FARM worker", options, nil))
	})

	t.Run("Empty Keeps Fallback", func(t *testing.T) {
		assert.Equal(t, "Student", NormalizeCategory("", options, "Student"))
		assert.Equal(t, "Student", NormalizeCategory(nil, options, "Student"))
	})
}

func TestNormalizeRecord(t *testing.T) {
	shape := map[string]FieldShape{
		"condition": {Kind: ShapeCategory, Options: []string{"Clear", "Wax", "Infection"}},
		"blocked":   {Kind: ShapeBool},
	}

	t.Run("Leaves Normalized Recursively", func(t *testing.T) {
		got := NormalizeRecord(map[string]interface{}{
			"condition": "wax",
			"blocked":   "Yes",
		}, shape, nil)
		assert.Equal(t, map[string]interface{}{"condition": "Wax", "blocked": true}, got)
	})

	t.Run("Missing Leaves Keep Fallback", func(t *testing.T) {
		fallback := map[string]interface{}{"condition": "Clear", "blocked": false}
		got := NormalizeRecord(map[string]interface{}{"blocked": "no"}, shape, fallback)
		assert.Equal(t, map[string]interface{}{"condition": "Clear", "blocked": false}, got)
	})

	t.Run("Non Record Keeps Fallback", func(t *testing.T) {
		fallback := map[string]interface{}{"condition": "Clear"}
		assert.Equal(t, fallback, NormalizeRecord("not a record", shape, fallback))
	})
}
