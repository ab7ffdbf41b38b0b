package alfacrm_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfawave-io/alfacrm/pkg/alfacrm"
)

func violationFields(t *testing.T, err error) []string {
	t.Helper()

	var validationErr *alfacrm.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := make([]string, 0, len(validationErr.Violations))
	for _, v := range validationErr.Violations {
		fields = append(fields, v.Field)
	}

	return fields
}

func TestSchema_Validate(t *testing.T) {
	t.Parallel()
	t.Run("unknown field is rejected", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(alfacrm.Str("name"))

		_, err := schema.Validate(alfacrm.Params{"name": "ok", "surprise": 1})
		require.Error(t, err)
		assert.True(t, alfacrm.IsValidation(err))
		assert.Equal(t, []string{"surprise"}, violationFields(t, err))
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(alfacrm.Str("name").Req(), alfacrm.Int("age"))

		_, err := schema.Validate(alfacrm.Params{"age": 30})
		require.Error(t, err)
		assert.Equal(t, []string{"name"}, violationFields(t, err))
	})

	t.Run("nil values are dropped", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(alfacrm.Str("name"), alfacrm.Int("age"))

		out, err := schema.Validate(alfacrm.Params{"name": "Ivan", "age": nil})
		require.NoError(t, err)
		assert.Equal(t, alfacrm.Params{"name": "Ivan"}, out)
	})

	t.Run("nil required field still counts as missing", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(alfacrm.Str("name").Req())

		_, err := schema.Validate(alfacrm.Params{"name": nil})
		require.Error(t, err)
		assert.Equal(t, []string{"name"}, violationFields(t, err))
	})

	t.Run("all violations are collected", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(
			alfacrm.Str("name").Req(),
			alfacrm.Int("age").Min(0),
		)

		_, err := schema.Validate(alfacrm.Params{"age": -5, "extra": true})
		require.Error(t, err)
		assert.ElementsMatch(t, []string{"name", "age", "extra"}, violationFields(t, err))
	})

	t.Run("integer type and bounds", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(alfacrm.Int("removed").Between(0, 2))

		out, err := schema.Validate(alfacrm.Params{"removed": 1})
		require.NoError(t, err)
		assert.Equal(t, 1, out["removed"])

		// JSON-decoded numbers arrive as float64.
		out, err = schema.Validate(alfacrm.Params{"removed": float64(2)})
		require.NoError(t, err)
		assert.Equal(t, 2, out["removed"])

		_, err = schema.Validate(alfacrm.Params{"removed": 3})
		require.Error(t, err)

		_, err = schema.Validate(alfacrm.Params{"removed": 1.5})
		require.Error(t, err)

		_, err = schema.Validate(alfacrm.Params{"removed": "1"})
		require.Error(t, err)
	})

	t.Run("string length and pattern", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(
			alfacrm.Str("note").Len(2, 5),
			alfacrm.Clock("time_from"),
		)

		_, err := schema.Validate(alfacrm.Params{"note": "x"})
		require.Error(t, err)

		_, err = schema.Validate(alfacrm.Params{"note": "toolong"})
		require.Error(t, err)

		out, err := schema.Validate(alfacrm.Params{"note": "okay", "time_from": "09:30"})
		require.NoError(t, err)
		assert.Equal(t, "okay", out["note"])

		_, err = schema.Validate(alfacrm.Params{"time_from": "9:30"})
		require.Error(t, err)
	})

	t.Run("date normalization", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(
			alfacrm.Date("dob", alfacrm.DateISO),
			alfacrm.Date("created_at_from", alfacrm.DateDotted),
		)

		moment := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

		out, err := schema.Validate(alfacrm.Params{
			"dob":             moment,
			"created_at_from": moment,
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-03-15", out["dob"])
		assert.Equal(t, "15.03.2026", out["created_at_from"])

		out, err = schema.Validate(alfacrm.Params{"dob": "2026-03-15"})
		require.NoError(t, err)
		assert.Equal(t, "2026-03-15", out["dob"])

		_, err = schema.Validate(alfacrm.Params{"dob": "15.03.2026"})
		require.Error(t, err)

		_, err = schema.Validate(alfacrm.Params{"dob": 20260315})
		require.Error(t, err)
	})

	t.Run("enum accepts declared literals", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(alfacrm.Enum("status", "1", "2", "3"))

		out, err := schema.Validate(alfacrm.Params{"status": 2})
		require.NoError(t, err)
		assert.Equal(t, 2, out["status"])

		out, err = schema.Validate(alfacrm.Params{"status": "3"})
		require.NoError(t, err)
		assert.Equal(t, "3", out["status"])

		_, err = schema.Validate(alfacrm.Params{"status": 4})
		require.Error(t, err)
	})

	t.Run("integer list", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(alfacrm.IntList("teacher_ids"))

		out, err := schema.Validate(alfacrm.Params{"teacher_ids": []int{1, 2}})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, out["teacher_ids"])

		out, err = schema.Validate(alfacrm.Params{"teacher_ids": []interface{}{float64(3), float64(4)}})
		require.NoError(t, err)
		assert.Equal(t, []int{3, 4}, out["teacher_ids"])

		_, err = schema.Validate(alfacrm.Params{"teacher_ids": []interface{}{"x"}})
		require.Error(t, err)
	})

	t.Run("any passes through", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(alfacrm.Any("fields"))

		out, err := schema.Validate(alfacrm.Params{"fields": map[string]interface{}{"a": 1}})
		require.NoError(t, err)
		assert.NotNil(t, out["fields"])
	})
}

func TestSchema_Rules(t *testing.T) {
	t.Parallel()
	t.Run("date range", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(
			alfacrm.Date("date_from", alfacrm.DateISO),
			alfacrm.Date("date_to", alfacrm.DateISO),
		).WithRules(alfacrm.DateRange("date_from", "date_to", alfacrm.DateISO))

		_, err := schema.Validate(alfacrm.Params{
			"date_from": "2026-02-01",
			"date_to":   "2026-01-01",
		})
		require.Error(t, err)
		assert.Equal(t, []string{"date_to"}, violationFields(t, err))

		_, err = schema.Validate(alfacrm.Params{
			"date_from": "2026-01-01",
			"date_to":   "2026-02-01",
		})
		require.NoError(t, err)

		// One side alone is fine.
		_, err = schema.Validate(alfacrm.Params{"date_from": "2026-01-01"})
		require.NoError(t, err)
	})

	t.Run("numeric range", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(
			alfacrm.Float("sum_from"),
			alfacrm.Float("sum_to"),
		).WithRules(alfacrm.NumericRange("sum_from", "sum_to"))

		_, err := schema.Validate(alfacrm.Params{"sum_from": 100.0, "sum_to": 50.0})
		require.Error(t, err)

		_, err = schema.Validate(alfacrm.Params{"sum_from": 50.0, "sum_to": 100.0})
		require.NoError(t, err)
	})

	t.Run("clock range", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(
			alfacrm.Clock("time_from"),
			alfacrm.Clock("time_to"),
		).WithRules(alfacrm.ClockRange("time_from", "time_to"))

		_, err := schema.Validate(alfacrm.Params{"time_from": "10:00", "time_to": "09:00"})
		require.Error(t, err)

		_, err = schema.Validate(alfacrm.Params{"time_from": "10:00", "time_to": "10:00"})
		require.Error(t, err)

		_, err = schema.Validate(alfacrm.Params{"time_from": "09:00", "time_to": "10:30"})
		require.NoError(t, err)
	})

	t.Run("rules are skipped when fields are invalid", func(t *testing.T) {
		t.Parallel()

		schema := alfacrm.NewSchema(
			alfacrm.Date("date_from", alfacrm.DateISO),
			alfacrm.Date("date_to", alfacrm.DateISO),
		).WithRules(alfacrm.DateRange("date_from", "date_to", alfacrm.DateISO))

		_, err := schema.Validate(alfacrm.Params{
			"date_from": "not a date",
			"date_to":   "2026-01-01",
		})
		require.Error(t, err)
		assert.Equal(t, []string{"date_from"}, violationFields(t, err))
	})
}
