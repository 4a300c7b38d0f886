package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"managerdocs/internal/app"
	"managerdocs/internal/model"
	"managerdocs/internal/repository"
)

func newProgramService(db *gorm.DB) *app.ProgramService {
	return app.NewProgramService(
		repository.NewProgramRepository(db),
		repository.NewRiskRepository(db),
		repository.NewProgramUpdateRepository(db),
	)
}

func TestCreateProgramDefaultsStatus(t *testing.T) {
	svc := newProgramService(openTestDB(t))

	program, err := svc.CreateProgram(app.ProgramInput{Name: "Billing Replatform"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusOnTrack, program.Status)

	_, err = svc.CreateProgram(app.ProgramInput{Name: "Bad", Status: model.ProgramStatus("paused")})
	assert.ErrorIs(t, err, app.ErrInvalidInput)

	_, err = svc.CreateProgram(app.ProgramInput{Name: "  "})
	assert.ErrorIs(t, err, app.ErrInvalidInput)
}

func TestGetProgramOverviewCountsCriticalRisks(t *testing.T) {
	db := openTestDB(t)
	svc := newProgramService(db)

	program, err := svc.CreateProgram(app.ProgramInput{Name: "Billing Replatform"})
	require.NoError(t, err)

	for _, severity := range []model.RiskSeverity{
		model.SeverityCritical, model.SeverityHigh, model.SeverityMedium, model.SeverityLow,
	} {
		_, err := svc.AddRisk(app.RiskInput{ProgramID: program.ID, Title: "risk " + string(severity), Severity: severity})
		require.NoError(t, err)
	}

	overview, err := svc.GetProgram(program.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, overview.CriticalRiskCount)
	assert.Equal(t, program.ID, overview.Program.ID)
}

func TestDeleteProgramCascades(t *testing.T) {
	db := openTestDB(t)
	svc := newProgramService(db)

	program, err := svc.CreateProgram(app.ProgramInput{Name: "Billing Replatform"})
	require.NoError(t, err)
	_, err = svc.AddRisk(app.RiskInput{ProgramID: program.ID, Title: "vendor slip", Severity: model.SeverityCritical})
	require.NoError(t, err)
	_, err = svc.CreateUpdate(program.ID, "kickoff complete")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProgram(program.ID))

	var riskCount, updateCount int64
	require.NoError(t, db.Model(&model.Risk{}).Where("program_id = ?", program.ID).Count(&riskCount).Error)
	require.NoError(t, db.Model(&model.ProgramUpdate{}).Where("program_id = ?", program.ID).Count(&updateCount).Error)
	assert.Zero(t, riskCount)
	assert.Zero(t, updateCount)

	assert.ErrorIs(t, svc.DeleteProgram(program.ID), app.ErrProgramNotFound)
}

func TestAddRiskValidation(t *testing.T) {
	db := openTestDB(t)
	svc := newProgramService(db)

	program, err := svc.CreateProgram(app.ProgramInput{Name: "Billing Replatform"})
	require.NoError(t, err)

	_, err = svc.AddRisk(app.RiskInput{ProgramID: program.ID, Title: "no severity"})
	assert.ErrorIs(t, err, app.ErrInvalidInput)

	_, err = svc.AddRisk(app.RiskInput{ProgramID: 999, Title: "orphan", Severity: model.SeverityLow})
	assert.ErrorIs(t, err, app.ErrProgramNotFound)
}
