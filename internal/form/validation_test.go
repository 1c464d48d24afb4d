package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_AcceptsSubmittableForm(t *testing.T) {
	validate := NewValidator()
	f := HazardReportForm{
		HazardType:  "tsunami_warning",
		Severity:    "critical",
		Description: "Large waves",
	}

	require.NoError(t, validate.Struct(f))
}

func TestValidator_RequiredFields(t *testing.T) {
	validate := NewValidator()

	err := validate.Struct(Empty())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error:Field validation for 'HazardType' failed on the 'required' tag")
	assert.Contains(t, err.Error(), "Error:Field validation for 'Severity' failed on the 'required' tag")
	assert.Contains(t, err.Error(), "Error:Field validation for 'Description' failed on the 'required' tag")
}

func TestValidator_UnknownValues(t *testing.T) {
	validate := NewValidator()
	f := HazardReportForm{
		HazardType:  "volcano",
		Severity:    "extreme",
		Description: "Lava",
		Latitude:    "95.0",
		Longitude:   "abc",
	}

	err := validate.Struct(f)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "'hazard_type' tag")
	assert.Contains(t, err.Error(), "'severity' tag")
	assert.Contains(t, err.Error(), "'decimal_latitude' tag")
	assert.Contains(t, err.Error(), "'decimal_longitude' tag")
}

func TestHazardTypes(t *testing.T) {
	types := HazardTypes()

	require.Len(t, types, 8)
	assert.Equal(t, Option{Value: "tsunami_warning", Label: "Tsunami Warning"}, types[0])
	assert.Equal(t, Option{Value: "coastal_erosion", Label: "Coastal Erosion"}, types[6])
	assert.Equal(t, Option{Value: "other", Label: "Other"}, types[7])
	assert.Equal(t, "Abnormal Tides", HazardTypeLabel("abnormal_tides"))
	assert.Equal(t, "mystery", HazardTypeLabel("mystery"))
}

func TestSeverityLevels(t *testing.T) {
	levels := SeverityLevels()

	require.Len(t, levels, 4)
	assert.Equal(t, SeverityLevel{Value: "low", Label: "Low", Color: "bg-green-500"}, levels[0])
	assert.Equal(t, SeverityLevel{Value: "critical", Label: "Critical", Color: "bg-red-500"}, levels[3])
	assert.True(t, IsSeverity("medium"))
	assert.False(t, IsSeverity("Medium"))
}
