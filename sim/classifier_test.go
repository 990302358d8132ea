package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify_DecisionTable(t *testing.T) {
	cases := []struct {
		importance Importance
		usage      UsageFrequency
		want       StorageTier
	}{
		{ImportanceCritical, UsageHigh, TierHot},
		{ImportanceCritical, UsageMedium, TierHot},
		{ImportanceCritical, UsageLow, TierHot}, // Critical overrides Low usage
		{ImportanceStandard, UsageHigh, TierHot},
		{ImportanceStandard, UsageMedium, TierWarm},
		{ImportanceStandard, UsageLow, TierWarm}, // Standard alone avoids Cold
		{ImportanceLow, UsageHigh, TierHot},
		{ImportanceLow, UsageMedium, TierWarm},
		{ImportanceLow, UsageLow, TierCold},
	}
	for _, tc := range cases {
		got := Classify(tc.importance, tc.usage)
		assert.Equal(t, tc.want, got, "importance=%v usage=%v", tc.importance, tc.usage)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	for _, imp := range Importances {
		for _, usage := range []UsageFrequency{UsageLow, UsageMedium, UsageHigh} {
			first := Classify(imp, usage)
			second := Classify(imp, usage)
			assert.Equal(t, first, second)
		}
	}
}

func TestClassifyAndAssign_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		artifact *Artifact
		want     StorageTier
	}{
		{
			name: "critical recently accessed photograph goes hot",
			artifact: &Artifact{
				ID: "A001", Name: "Rare_Manuscript.jpg", Type: Photograph,
				AccessCount: 15, LastAccessed: daysAgo(5), Importance: ImportanceCritical,
			},
			want: TierHot,
		},
		{
			name: "standard moderately accessed document goes warm",
			artifact: &Artifact{
				ID: "A002", Name: "Meeting_Notes.pdf", Type: Document,
				AccessCount: 3, LastAccessed: daysAgo(10), Importance: ImportanceStandard,
			},
			want: TierWarm,
		},
		{
			name: "unimportant stale video goes cold",
			artifact: &Artifact{
				ID: "A003", Name: "Old_Video.mp4", Type: Video,
				AccessCount: 0, LastAccessed: daysAgo(60), Importance: ImportanceLow,
			},
			want: TierCold,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ClassifyAndAssign(tc.artifact, testNow)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProcessArtifacts_Records(t *testing.T) {
	artifacts := []*Artifact{
		{ID: "A001", Name: "Rare_Manuscript.jpg", Type: Photograph, AccessCount: 15, LastAccessed: daysAgo(5), Importance: ImportanceCritical},
		{ID: "A002", Name: "Meeting_Notes.pdf", Type: Document, AccessCount: 3, LastAccessed: daysAgo(10), Importance: ImportanceStandard},
	}
	records, err := ProcessArtifacts(artifacts, testNow)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, Record{
		ID: "A001", Name: "Rare_Manuscript.jpg", Type: "Photograph",
		UsageFrequency: "High", Importance: "Critical", AssignedTier: "Hot Storage",
	}, records[0])
	assert.Equal(t, Record{
		ID: "A002", Name: "Meeting_Notes.pdf", Type: "Document",
		UsageFrequency: "Medium", Importance: "Standard", AssignedTier: "Warm Storage",
	}, records[1])
}

func TestProcessArtifacts_SkipsInvalidAndReportsError(t *testing.T) {
	artifacts := []*Artifact{
		{ID: "bad", Type: Document, AccessCount: -5, LastAccessed: daysAgo(1), Importance: ImportanceStandard},
		{ID: "good", Type: Document, AccessCount: 2, LastAccessed: daysAgo(1), Importance: ImportanceStandard},
	}
	records, err := ProcessArtifacts(artifacts, time.Now())
	assert.Error(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "good", records[0].ID)
}
