package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"managerdocs/internal/app"
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

func newDirectoryService(db *gorm.DB) *app.DirectoryService {
	return app.NewDirectoryService(
		repository.NewPersonRepository(db),
		repository.NewSessionRepository(db),
		repository.NewActionItemRepository(db),
		repository.NewArtifactRepository(db),
		repository.NewGeneratedDocumentRepository(db),
		nil,
	)
}

func day(year, month, dayN int) time.Time {
	return time.Date(year, time.Month(month), dayN, 0, 0, 0, 0, time.UTC)
}

func seedPerson(t *testing.T, db *gorm.DB, name string) model.Person {
	t.Helper()
	person := model.Person{Name: name, Role: "Software Engineer", Level: "L4"}
	require.NoError(t, db.Create(&person).Error)
	return person
}

func seedSession(t *testing.T, db *gorm.DB, personID uint, date time.Time) model.Session {
	t.Helper()
	session := model.Session{PersonID: personID, Date: date, RawNotes: "raw notes"}
	require.NoError(t, db.Create(&session).Error)
	return session
}
