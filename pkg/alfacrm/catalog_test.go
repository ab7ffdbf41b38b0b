package alfacrm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfawave-io/alfacrm/pkg/alfacrm"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	registry := alfacrm.DefaultRegistry()

	expected := []string{
		"bonus",
		"branch",
		"communication",
		"customer",
		"customer-groups",
		"customer-tariff",
		"group",
		"group-customers",
		"lead-reject",
		"lead-source",
		"lead-status",
		"lesson",
		"location",
		"log",
		"pay",
		"regular-lesson",
		"room",
		"study-status",
		"subject",
		"tariff",
		"task",
		"teacher",
		"teacher-rate",
		"working-hours",
	}
	assert.Equal(t, expected, registry.Names())
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := alfacrm.DefaultRegistry()

	t.Run("unknown resource", func(t *testing.T) {
		t.Parallel()

		_, err := registry.Lookup("droplet")
		require.Error(t, err)
		assert.ErrorIs(t, err, alfacrm.ErrUnknownResource)
		assert.Contains(t, err.Error(), `"droplet"`)
	})

	t.Run("branch is account scoped", func(t *testing.T) {
		t.Parallel()

		descriptor, err := registry.Lookup("branch")
		require.NoError(t, err)
		assert.False(t, descriptor.BranchRequired)
		assert.Equal(t, []string{"branch"}, descriptor.Path)
	})

	t.Run("multi segment paths", func(t *testing.T) {
		t.Parallel()

		cases := map[string][]string{
			"customer-groups": {"cgi", "customer"},
			"group-customers": {"cgi"},
			"customer-tariff": {"customer_tariff"},
			"lead-reject":     {"lead_reject"},
			"teacher-rate":    {"teacher", "teacher-rate"},
			"working-hours":   {"teacher", "working-hour"},
		}

		for name, path := range cases {
			descriptor, err := registry.Lookup(name)
			require.NoError(t, err, name)
			assert.Equal(t, path, descriptor.Path, name)
			assert.True(t, descriptor.BranchRequired, name)
		}
	})

	t.Run("log is read only", func(t *testing.T) {
		t.Parallel()

		descriptor, err := registry.Lookup("log")
		require.NoError(t, err)
		assert.NotNil(t, descriptor.Filter)
		assert.Nil(t, descriptor.Create)
		assert.Nil(t, descriptor.Update)
	})
}

func TestCatalogSchemas(t *testing.T) {
	t.Parallel()

	registry := alfacrm.DefaultRegistry()

	t.Run("customer create requires a name", func(t *testing.T) {
		t.Parallel()

		descriptor, err := registry.Lookup("customer")
		require.NoError(t, err)
		require.NotNil(t, descriptor.Create)

		_, err = descriptor.Create.Validate(alfacrm.Params{"legal_type": 1})
		require.Error(t, err)
		assert.True(t, alfacrm.IsValidation(err))

		_, err = descriptor.Create.Validate(alfacrm.Params{
			"name":       "Ivanov Ivan",
			"legal_type": 1,
			"is_study":   0,
		})
		require.NoError(t, err)
	})

	t.Run("customer filter allows update but not create of name", func(t *testing.T) {
		t.Parallel()

		descriptor, err := registry.Lookup("customer")
		require.NoError(t, err)

		// The filter schema shares fields with create but nothing is required.
		_, err = descriptor.Filter.Validate(alfacrm.Params{"is_study": 1, "removed": 0})
		require.NoError(t, err)
	})

	t.Run("bonus filter requires a customer", func(t *testing.T) {
		t.Parallel()

		descriptor, err := registry.Lookup("bonus")
		require.NoError(t, err)

		_, err = descriptor.Filter.Validate(alfacrm.Params{"type": "add"})
		require.Error(t, err)

		_, err = descriptor.Filter.Validate(alfacrm.Params{"customer_id": 7, "type": "add"})
		require.NoError(t, err)
	})

	t.Run("lesson create checks the clock range", func(t *testing.T) {
		t.Parallel()

		descriptor, err := registry.Lookup("lesson")
		require.NoError(t, err)
		require.NotNil(t, descriptor.Create)

		input := alfacrm.Params{
			"subject_id":     3,
			"teacher_ids":    []int{5},
			"lesson_type_id": 1,
			"lesson_date":    "2026-09-01",
			"time_from":      "12:00",
			"time_to":        "11:00",
		}

		_, err = descriptor.Create.Validate(input)
		require.Error(t, err)
		assert.Equal(t, []string{"time_to"}, violationFields(t, err))

		input["time_to"] = "13:30"

		_, err = descriptor.Create.Validate(input)
		require.NoError(t, err)
	})

	t.Run("pay filter uses year first dotted dates", func(t *testing.T) {
		t.Parallel()

		descriptor, err := registry.Lookup("pay")
		require.NoError(t, err)

		_, err = descriptor.Filter.Validate(alfacrm.Params{"date_from": "2026.01.01"})
		require.NoError(t, err)

		_, err = descriptor.Filter.Validate(alfacrm.Params{"date_from": "01.01.2026"})
		require.Error(t, err)
	})

	t.Run("every filter schema accepts an explicit page", func(t *testing.T) {
		t.Parallel()

		for _, name := range registry.Names() {
			descriptor, err := registry.Lookup(name)
			require.NoError(t, err)

			if descriptor.Filter == nil {
				continue
			}

			found := false

			for _, field := range descriptor.Filter.Fields {
				if field.Name == "page" {
					found = true

					break
				}
			}

			assert.True(t, found, "resource %q filter has no page field", name)
		}
	})
}

func TestNewRegistry_DuplicatePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		alfacrm.NewRegistry(
			&alfacrm.Descriptor{Name: "dup"},
			&alfacrm.Descriptor{Name: "dup"},
		)
	})
}
