package form

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledForm() HazardReportForm {
	return HazardReportForm{
		HazardType:  "storm_surge",
		Location:    "Marina Beach, Chennai",
		Latitude:    "13.082700",
		Longitude:   "80.270700",
		Severity:    "high",
		Description: "Water over the promenade",
		Photos:      []Attachment{{FileName: "wave.jpg", ContentType: "image/jpeg", Size: 1024}},
	}
}

func TestSet_ReplacesOnlyTargetField(t *testing.T) {
	fields := []Field{
		FieldHazardType,
		FieldLocation,
		FieldLatitude,
		FieldLongitude,
		FieldSeverity,
		FieldDescription,
	}
	for _, field := range fields {
		t.Run(string(field), func(t *testing.T) {
			f := filledForm()
			before := filledForm()

			require.NoError(t, f.Set(field, "changed"))

			after := f
			// Возвращаем измененное поле и сравниваем остальные
			require.NoError(t, after.Set(field, ""))
			require.NoError(t, before.Set(field, ""))
			assert.Equal(t, before, after)
		})
	}
}

func TestSet_UnknownField(t *testing.T) {
	f := filledForm()

	err := f.Set("photos", "x")

	require.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, filledForm(), f)
}

func TestApplyPosition_SixFractionalDigits(t *testing.T) {
	sixDigits := regexp.MustCompile(`^-?\d+\.\d{6}$`)
	positions := []Position{
		{Latitude: 13.0827, Longitude: 80.2707},
		{Latitude: -33.8688197, Longitude: 151.2092955},
		{Latitude: 0, Longitude: 0},
		{Latitude: 89.9999999, Longitude: -179.1},
	}
	for _, p := range positions {
		f := filledForm()
		n := f.ApplyPosition(p)

		assert.Regexp(t, sixDigits, f.Latitude)
		assert.Regexp(t, sixDigits, f.Longitude)
		assert.Equal(t, LevelSuccess, n.Level)
		assert.Equal(t, "Location captured successfully!", n.Title)
		assert.Equal(t, "Marina Beach, Chennai", f.Location)
		assert.Equal(t, "high", f.Severity)
	}
}

func TestApplyPosition_Rounding(t *testing.T) {
	f := Empty()

	f.ApplyPosition(Position{Latitude: 13.0827, Longitude: 80.27070049})

	assert.Equal(t, "13.082700", f.Latitude)
	assert.Equal(t, "80.270700", f.Longitude)
}

func TestLocationFailed_KeepsForm(t *testing.T) {
	f := filledForm()

	n := f.LocationFailed()

	assert.Equal(t, LevelError, n.Level)
	assert.Equal(t, "Unable to get location. Please enter manually.", n.Title)
	assert.Equal(t, filledForm(), f)
}

func TestSubmit_ResetsForm(t *testing.T) {
	f := Empty()
	require.NoError(t, f.Set(FieldHazardType, "tsunami_warning"))
	require.NoError(t, f.Set(FieldSeverity, "critical"))
	require.NoError(t, f.Set(FieldDescription, "Large waves"))

	submitted, n := f.Submit()

	assert.True(t, f.IsEmpty())
	assert.Equal(t, Empty(), f)
	assert.Equal(t, "tsunami_warning", submitted.HazardType)
	assert.Equal(t, "critical", submitted.Severity)
	assert.Equal(t, "Large waves", submitted.Description)
	assert.Equal(t, Notification{
		Level:       LevelSuccess,
		Title:       "Hazard report submitted successfully!",
		Description: "Your report has been sent to INCOIS for immediate review.",
	}, n)
}

func TestSubmit_ResetsRegardlessOfContent(t *testing.T) {
	forms := []HazardReportForm{Empty(), filledForm(), {Description: "only text"}}
	for _, f := range forms {
		f.Submit()
		assert.True(t, f.IsEmpty())
	}
}

func TestSubmit_SnapshotDoesNotShareAttachments(t *testing.T) {
	f := filledForm()

	submitted, _ := f.Submit()
	require.NoError(t, f.AddPhoto(Attachment{FileName: "new.jpg", Size: 10}))

	assert.Len(t, submitted.Photos, 1)
	assert.Equal(t, "wave.jpg", submitted.Photos[0].FileName)
}

func TestAddPhoto_Limits(t *testing.T) {
	f := Empty()
	for i := 0; i < MaxPhotos; i++ {
		require.NoError(t, f.AddPhoto(Attachment{FileName: "p.jpg", Size: 100}))
	}

	assert.ErrorIs(t, f.AddPhoto(Attachment{FileName: "extra.jpg", Size: 100}), ErrTooManyPhotos)

	g := Empty()
	assert.ErrorIs(t, g.AddPhoto(Attachment{FileName: "huge.mp4", Size: MaxPhotoBytes + 1}), ErrPhotoTooLarge)
	assert.Empty(t, g.Photos)
}

func TestCoordinates(t *testing.T) {
	f := HazardReportForm{Latitude: "13.082700", Longitude: " 80.270700 "}

	lat, lon, err := f.Coordinates()

	require.NoError(t, err)
	require.NotNil(t, lat)
	require.NotNil(t, lon)
	assert.InDelta(t, 13.0827, *lat, 1e-9)
	assert.InDelta(t, 80.2707, *lon, 1e-9)

	lat, lon, err = Empty().Coordinates()
	require.NoError(t, err)
	assert.Nil(t, lat)
	assert.Nil(t, lon)

	_, _, err = HazardReportForm{Latitude: "91"}.Coordinates()
	assert.ErrorContains(t, err, "latitude")

	_, _, err = HazardReportForm{Longitude: "east"}.Coordinates()
	assert.ErrorContains(t, err, "longitude")
}
