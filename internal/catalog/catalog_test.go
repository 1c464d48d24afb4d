package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessorsReturnCopies(t *testing.T) {
	markers := HazardMarkers()
	markers[0].Status = "resolved"

	assert.Equal(t, "active", HazardMarkers()[0].Status)

	posts := SocialPosts()
	posts[1].Verified = false
	assert.True(t, SocialPosts()[1].Verified)
}

func TestDashboardData(t *testing.T) {
	stats := DashboardStats()
	require.Len(t, stats, 4)
	assert.Equal(t, "Active Reports", stats[0].Title)
	assert.Equal(t, "23", stats[0].Value)

	reports := RecentReports()
	require.Len(t, reports, 3)
	assert.Equal(t, "Kolkata Port", reports[2].Location)

	health := SystemHealth()
	require.Len(t, health, 4)
	assert.InDelta(t, 89.3, health[2].Percent, 1e-9)
}

func TestSocialData(t *testing.T) {
	assert.Len(t, SocialPosts(), 3)
	assert.Len(t, TrendingKeywords(), 5)

	total := 0
	for _, r := range RegionalDistribution() {
		total += r.Percentage
	}
	assert.Equal(t, 100, total)

	shares := 0
	for _, s := range SentimentBreakdown() {
		shares += s.Percent
	}
	assert.Equal(t, 100, shares)
}

func TestNormalizeTimeRange(t *testing.T) {
	assert.Equal(t, "1h", NormalizeTimeRange("1h"))
	assert.Equal(t, "7d", NormalizeTimeRange("7d"))
	assert.Equal(t, "24h", NormalizeTimeRange(""))
	assert.Equal(t, "24h", NormalizeTimeRange("30d"))
}

func TestFilterMarkers(t *testing.T) {
	markers := HazardMarkers()

	assert.Equal(t, markers, FilterMarkers(markers, nil))
	assert.Equal(t, markers, FilterMarkers(markers, []string{"", "  "}))

	tsunami := FilterMarkers(markers, []string{"Tsunami"})
	require.Len(t, tsunami, 1)
	assert.Equal(t, "Chennai Coast", tsunami[0].Location)

	waves := FilterMarkers(markers, []string{"high waves", "Storm Surge"})
	require.Len(t, waves, 2)
	assert.Equal(t, 2, waves[0].ID)
	assert.Equal(t, 3, waves[1].ID)

	assert.Empty(t, FilterMarkers(markers, []string{"Flooding"}))
}

func TestMarkersFeatureCollection(t *testing.T) {
	fc := MarkersFeatureCollection(HazardMarkers())

	require.Len(t, fc.Features, 3)
	first := fc.Features[0]
	assert.Equal(t, []float64{80.2707, 13.0827}, first.Geometry.Point)
	assert.Equal(t, "critical", first.Properties["severity"])
	assert.Equal(t, "bg-red-500", first.Properties["color"])
	assert.Equal(t, "Active", first.Properties["status_label"])

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"FeatureCollection"`)
}
