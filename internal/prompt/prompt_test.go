package prompt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"managerdocs/internal/contextwin"
	"managerdocs/internal/model"
	"managerdocs/internal/prompt"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func fullSnapshot() *contextwin.Snapshot {
	due := date(2026, 4, 1)
	return &contextwin.Snapshot{
		PastSessions: []contextwin.SessionDigest{
			{SessionID: 2, Date: date(2026, 3, 10), Text: "Talked about the reporting migration.", OpenTitles: []string{"write runbook"}},
			{SessionID: 1, Date: date(2026, 3, 3), Text: "Kickoff notes."},
		},
		OpenActionItems: []contextwin.ActionItemLine{
			{Title: "write runbook", Owner: "Sam", DueDate: &due},
			{Title: "schedule skip-level"},
		},
		RecentArtifacts: []contextwin.ArtifactLine{
			{Title: "reporting migration design", Type: "design-doc", Date: date(2026, 3, 5)},
		},
	}
}

func TestBuildOneOnOneSectionsInOrder(t *testing.T) {
	_, user, err := prompt.Build(model.KindOneOnOneSummary, prompt.Params{
		PersonName:  "Sam",
		SessionDate: date(2026, 3, 17),
		Notes:       "Discussed on-call load.",
		Snapshot:    fullSnapshot(),
	})
	require.NoError(t, err)

	headings := []string{
		"## Context From Recent Past 1:1s",
		"## All Open Action Items",
		"## Recent Work Artifacts",
		"## Today's 1:1 Notes",
	}
	last := -1
	for _, h := range headings {
		idx := strings.Index(user, h)
		require.GreaterOrEqual(t, idx, 0, "missing %q", h)
		assert.Greater(t, idx, last, "%q out of order", h)
		last = idx
	}

	assert.Contains(t, user, "### 1:1 on 2026-03-10")
	assert.Contains(t, user, "- [ ] write runbook")
	assert.Contains(t, user, "(owner: Sam)")
	assert.Contains(t, user, "(due 2026-04-01)")
	assert.Contains(t, user, "- [design-doc] reporting migration design (2026-03-05)")
	assert.Contains(t, user, "## Today's 1:1 Notes (2026-03-17)")
	assert.Contains(t, user, "Discussed on-call load.")
}

func TestBuildOneOnOneOmitsEmptySections(t *testing.T) {
	_, user, err := prompt.Build(model.KindOneOnOneSummary, prompt.Params{
		PersonName: "Sam",
		Notes:      "First ever 1:1.",
		Snapshot:   &contextwin.Snapshot{},
	})
	require.NoError(t, err)

	assert.NotContains(t, user, "Context From Recent Past 1:1s")
	assert.NotContains(t, user, "All Open Action Items")
	assert.NotContains(t, user, "Recent Work Artifacts")
	assert.Contains(t, user, "## Today's 1:1 Notes")
	assert.Contains(t, user, "First ever 1:1.")
	// Exactly one section, so no separator.
	assert.NotContains(t, user, "\n\n---\n\n")
}

func TestBuildOneOnOneNilSnapshot(t *testing.T) {
	_, user, err := prompt.Build(model.KindOneOnOneSummary, prompt.Params{
		PersonName: "Sam",
		Notes:      "note",
	})
	require.NoError(t, err)
	assert.Contains(t, user, "## Today's 1:1 Notes")
}

func TestBuildPerformanceReview(t *testing.T) {
	system, user, err := prompt.Build(model.KindPerformanceReview, prompt.Params{
		PersonName:   "Sam",
		Role:         "Software Engineer",
		Level:        "L4",
		Period:       "2026 H1",
		TargetRating: "Exceeds",
		Notes:        "Strong half.",
		Snapshot:     fullSnapshot(),
	})
	require.NoError(t, err)

	assert.Contains(t, system, "OUTPUT FORMAT")
	assert.Contains(t, user, "## Engineer")
	assert.Contains(t, user, "Name: Sam")
	assert.Contains(t, user, "Review period: 2026 H1")
	assert.Contains(t, user, "Target rating: Exceeds")
	assert.Contains(t, user, "## Context From Recent Past 1:1s")
	assert.Contains(t, user, "## Manager Notes\nStrong half.")
	// Person documents never carry a 1:1 notes section.
	assert.NotContains(t, user, "Today's 1:1 Notes")
}

func TestBuildProgramKinds(t *testing.T) {
	target := date(2026, 6, 30)
	snap := &contextwin.Snapshot{
		ProgramStatus: "at-risk",
		Stakeholders:  "VP Eng, Design",
		RiskLines:     []string{"critical: vendor slip", "medium: test flakiness"},
		TargetDate:    &target,
	}

	for _, kind := range []model.DocumentKind{model.KindProgramStatus, model.KindStakeholderEmail, model.KindRiskReport} {
		system, user, err := prompt.Build(kind, prompt.Params{
			ProgramName: "Billing Replatform",
			Notes:       "Cutover slipped a week.",
			Snapshot:    snap,
		})
		require.NoError(t, err, "kind %s", kind)
		assert.NotEmpty(t, system)
		assert.Contains(t, user, "Name: Billing Replatform")
		assert.Contains(t, user, "Status: at-risk")
		assert.Contains(t, user, "Target date: 2026-06-30")
		assert.Contains(t, user, "Stakeholders: VP Eng, Design")
		assert.Contains(t, user, "## Open Risks")
		assert.Contains(t, user, "- critical: vendor slip")
		assert.Contains(t, user, "## Update Notes\nCutover slipped a week.")
	}
}

func TestBuildDistinctSystemPrompts(t *testing.T) {
	seen := map[string]model.DocumentKind{}
	build := func(kind model.DocumentKind) string {
		system, _, err := prompt.Build(kind, prompt.Params{
			PersonName: "Sam", Role: "SWE", Level: "L4",
			Period: "H1", TargetRating: "Meets", TargetLevel: "L5",
			ProgramName: "Billing",
		})
		require.NoError(t, err, "kind %s", kind)
		return system
	}
	for _, kind := range []model.DocumentKind{
		model.KindPerformanceReview, model.KindPromotionPacket,
		model.KindOneOnOneSummary, model.KindDevelopmentPlan,
		model.KindProgramStatus, model.KindStakeholderEmail, model.KindRiskReport,
	} {
		system := build(kind)
		prev, dup := seen[system]
		assert.False(t, dup, "%s and %s share a system prompt", kind, prev)
		seen[system] = kind
	}
}

func TestBuildMissingParams(t *testing.T) {
	tests := []struct {
		name   string
		kind   model.DocumentKind
		params prompt.Params
	}{
		{"review without rating", model.KindPerformanceReview, prompt.Params{PersonName: "Sam", Role: "SWE", Level: "L4", Period: "H1"}},
		{"promo without target level", model.KindPromotionPacket, prompt.Params{PersonName: "Sam", Role: "SWE", Level: "L4"}},
		{"one on one without name", model.KindOneOnOneSummary, prompt.Params{Notes: "hello"}},
		{"dev plan without role", model.KindDevelopmentPlan, prompt.Params{PersonName: "Sam"}},
		{"program status without program", model.KindProgramStatus, prompt.Params{}},
		{"blank name is missing", model.KindOneOnOneSummary, prompt.Params{PersonName: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := prompt.Build(tt.kind, tt.params)
			assert.ErrorIs(t, err, prompt.ErrMissingParam)
		})
	}
}

func TestBuildUnknownKind(t *testing.T) {
	_, _, err := prompt.Build(model.DocumentKind("weekly-digest"), prompt.Params{})
	assert.ErrorIs(t, err, prompt.ErrMissingParam)
}
