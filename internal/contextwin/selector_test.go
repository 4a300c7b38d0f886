package contextwin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"managerdocs/internal/model"
	"managerdocs/internal/repository"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One in-memory database per connection; keep a single one.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.Person{},
		&model.Program{},
		&model.Risk{},
		&model.ProgramUpdate{},
		&model.Session{},
		&model.ActionItem{},
		&model.Artifact{},
		&model.GeneratedDocument{},
	))
	return db
}

func newTestSelector(db *gorm.DB, now time.Time) *Selector {
	s := NewSelector(
		repository.NewSessionRepository(db),
		repository.NewActionItemRepository(db),
		repository.NewArtifactRepository(db),
		repository.NewProgramRepository(db),
		repository.NewRiskRepository(db),
		DefaultMaxPastSessions,
		DefaultArtifactWindowDays,
	)
	s.now = func() time.Time { return now }
	return s
}

func day(year, month, dayN int) time.Time {
	return time.Date(year, time.Month(month), dayN, 0, 0, 0, 0, time.UTC)
}

func seedPerson(t *testing.T, db *gorm.DB) model.Person {
	t.Helper()
	person := model.Person{Name: "Sam", Role: "Software Engineer", Level: "L4"}
	require.NoError(t, db.Create(&person).Error)
	return person
}

func seedSession(t *testing.T, db *gorm.DB, personID uint, date time.Time, summary string) model.Session {
	t.Helper()
	session := model.Session{PersonID: personID, Date: date, RawNotes: "notes for " + date.Format("2006-01-02"), GeneratedSummary: summary}
	require.NoError(t, db.Create(&session).Error)
	return session
}

func TestOneOnOnePastSessionLimitAndOrder(t *testing.T) {
	db := openTestDB(t)
	now := day(2026, 3, 20)
	person := seedPerson(t, db)

	var sessions []model.Session
	for i := 0; i < 5; i++ {
		sessions = append(sessions, seedSession(t, db, person.ID, day(2026, 3, 1+i), ""))
	}

	snap, err := newTestSelector(db, now).OneOnOne(person.ID, 0, nil)
	require.NoError(t, err)

	require.Len(t, snap.PastSessions, DefaultMaxPastSessions)
	// Most recent first.
	assert.Equal(t, sessions[4].ID, snap.PastSessions[0].SessionID)
	assert.Equal(t, sessions[3].ID, snap.PastSessions[1].SessionID)
	assert.Equal(t, sessions[2].ID, snap.PastSessions[2].SessionID)
}

func TestOneOnOneExcludesCurrentSession(t *testing.T) {
	db := openTestDB(t)
	person := seedPerson(t, db)

	older := seedSession(t, db, person.ID, day(2026, 3, 1), "")
	current := seedSession(t, db, person.ID, day(2026, 3, 15), "")

	snap, err := newTestSelector(db, day(2026, 3, 15)).OneOnOne(person.ID, current.ID, nil)
	require.NoError(t, err)

	require.Len(t, snap.PastSessions, 1)
	assert.Equal(t, older.ID, snap.PastSessions[0].SessionID)
}

func TestOneOnOneSummaryPreferredOverRawNotes(t *testing.T) {
	db := openTestDB(t)
	person := seedPerson(t, db)
	seedSession(t, db, person.ID, day(2026, 3, 1), "")
	seedSession(t, db, person.ID, day(2026, 3, 8), "## Summary\nGood progress.")

	snap, err := newTestSelector(db, day(2026, 3, 20)).OneOnOne(person.ID, 0, nil)
	require.NoError(t, err)

	require.Len(t, snap.PastSessions, 2)
	assert.Equal(t, "## Summary\nGood progress.", snap.PastSessions[0].Text)
	assert.Equal(t, "notes for 2026-03-01", snap.PastSessions[1].Text)
}

func TestOneOnOneOpenItemsSpanAllSessions(t *testing.T) {
	db := openTestDB(t)
	person := seedPerson(t, db)

	// Old sessions fall outside the past-session window but their open items
	// must still surface.
	var all []model.Session
	for i := 0; i < 5; i++ {
		all = append(all, seedSession(t, db, person.ID, day(2026, 1, 1+7*i), ""))
	}
	oldest := all[0]
	require.NoError(t, db.Create(&model.ActionItem{
		SessionID: oldest.ID, PersonID: person.ID, Title: "ancient open item",
	}).Error)
	require.NoError(t, db.Create(&model.ActionItem{
		SessionID: all[4].ID, PersonID: person.ID, Title: "completed item", IsCompleted: true,
	}).Error)
	require.NoError(t, db.Create(&model.ActionItem{
		SessionID: all[4].ID, PersonID: person.ID, Title: "fresh open item",
	}).Error)

	snap, err := newTestSelector(db, day(2026, 3, 1)).OneOnOne(person.ID, 0, nil)
	require.NoError(t, err)

	var titles []string
	for _, item := range snap.OpenActionItems {
		titles = append(titles, item.Title)
	}
	assert.Contains(t, titles, "ancient open item")
	assert.Contains(t, titles, "fresh open item")
	assert.NotContains(t, titles, "completed item")

	// Per-session open titles only cover the windowed sessions.
	for _, digest := range snap.PastSessions {
		if digest.SessionID == all[4].ID {
			assert.Equal(t, []string{"fresh open item"}, digest.OpenTitles)
		}
	}
}

func TestOneOnOneArtifactWindowBoundary(t *testing.T) {
	db := openTestDB(t)
	now := day(2026, 3, 17)
	person := seedPerson(t, db)
	session := seedSession(t, db, person.ID, now, "")

	onBoundary := model.Artifact{
		SessionID: session.ID, PersonID: person.ID,
		Title: "exactly on the window edge", Type: model.ArtifactPR,
		ArtifactDate: now.AddDate(0, 0, -DefaultArtifactWindowDays),
	}
	justOutside := model.Artifact{
		SessionID: session.ID, PersonID: person.ID,
		Title: "one day too old", Type: model.ArtifactPR,
		ArtifactDate: now.AddDate(0, 0, -DefaultArtifactWindowDays-1),
	}
	recent := model.Artifact{
		SessionID: session.ID, PersonID: person.ID,
		Title: "fresh", Type: model.ArtifactDesignDoc,
		ArtifactDate: now.AddDate(0, 0, -1),
	}
	require.NoError(t, db.Create(&onBoundary).Error)
	require.NoError(t, db.Create(&justOutside).Error)
	require.NoError(t, db.Create(&recent).Error)

	snap, err := newTestSelector(db, now).OneOnOne(person.ID, 0, nil)
	require.NoError(t, err)

	var titles []string
	for _, a := range snap.RecentArtifacts {
		titles = append(titles, a.Title)
	}
	assert.Contains(t, titles, "exactly on the window edge")
	assert.Contains(t, titles, "fresh")
	assert.NotContains(t, titles, "one day too old")
}

func TestOneOnOneStagedArtifactsDeduped(t *testing.T) {
	db := openTestDB(t)
	now := day(2026, 3, 17)
	person := seedPerson(t, db)
	session := seedSession(t, db, person.ID, now, "")

	stored := model.Artifact{
		SessionID: session.ID, PersonID: person.ID,
		Title: "already stored", Type: model.ArtifactPR, ArtifactDate: now,
	}
	require.NoError(t, db.Create(&stored).Error)

	staged := []model.Artifact{
		{ID: stored.ID, Title: "already stored", Type: model.ArtifactPR, ArtifactDate: now},
		{Title: "brand new unsaved", Type: model.ArtifactLaunch, ArtifactDate: now},
		{Title: "another unsaved", Type: model.ArtifactOther, ArtifactDate: now},
	}

	snap, err := newTestSelector(db, now).OneOnOne(person.ID, 0, staged)
	require.NoError(t, err)

	require.Len(t, snap.RecentArtifacts, 3)
	var titles []string
	for _, a := range snap.RecentArtifacts {
		titles = append(titles, a.Title)
	}
	assert.ElementsMatch(t, []string{"already stored", "brand new unsaved", "another unsaved"}, titles)
}

func TestOneOnOneEmptyHistory(t *testing.T) {
	db := openTestDB(t)
	person := seedPerson(t, db)

	snap, err := newTestSelector(db, day(2026, 3, 17)).OneOnOne(person.ID, 0, nil)
	require.NoError(t, err)
	assert.True(t, snap.IsEmpty())
}

func TestProgramSnapshot(t *testing.T) {
	db := openTestDB(t)
	target := day(2026, 6, 30)
	program := model.Program{
		Name: "Billing Replatform", Status: model.StatusAtRisk,
		Stakeholders: "VP Eng, Design", TargetDate: &target,
	}
	require.NoError(t, db.Create(&program).Error)

	require.NoError(t, db.Create(&model.Risk{ProgramID: program.ID, Title: "test flakiness", Severity: model.SeverityMedium}).Error)
	require.NoError(t, db.Create(&model.Risk{ProgramID: program.ID, Title: "vendor slip", Severity: model.SeverityCritical}).Error)
	require.NoError(t, db.Create(&model.Risk{ProgramID: program.ID, Title: "oncall gap", Severity: model.SeverityHigh}).Error)

	snap, err := newTestSelector(db, day(2026, 3, 17)).Program(program.ID)
	require.NoError(t, err)

	assert.Equal(t, "at-risk", snap.ProgramStatus)
	assert.Equal(t, "VP Eng, Design", snap.Stakeholders)
	require.NotNil(t, snap.TargetDate)
	assert.Equal(t, []string{
		"critical: vendor slip",
		"high: oncall gap",
		"medium: test flakiness",
	}, snap.RiskLines)
}

func TestProgramSnapshotMissingProgram(t *testing.T) {
	db := openTestDB(t)
	snap, err := newTestSelector(db, day(2026, 3, 17)).Program(999)
	require.NoError(t, err)
	assert.True(t, snap.IsEmpty())
}
