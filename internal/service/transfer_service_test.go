package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/studytrack/internal/importer"
	"github.com/alexanderramin/studytrack/internal/repository"
	"github.com/alexanderramin/studytrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransferFixture(t *testing.T) (TransferService, repository.PlanRepo, repository.SessionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	sessions := repository.NewSQLiteSessionRepo(database)
	return NewTransferService(plans, sessions, testutil.NewTestUoW(database)), plans, sessions
}

func TestTransfer_ExportThenImportIntoFreshDB(t *testing.T) {
	svc, plans, sessions := newTransferFixture(t)
	ctx := context.Background()

	require.NoError(t, plans.Create(ctx, testutil.NewTestPlan("Math", testutil.WithCompletedHours(1.5))))
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession("Math", 45)))

	path := filepath.Join(t.TempDir(), "export.json")
	result, err := svc.Export(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.PlanCount)
	assert.Equal(t, 1, result.SessionCount)

	fresh, freshPlans, freshSessions := newTransferFixture(t)
	imported, err := fresh.Import(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, imported.PlanCount)
	assert.Equal(t, 1, imported.SessionCount)
	assert.Zero(t, imported.SkippedCount)

	gotPlans, err := freshPlans.List(ctx)
	require.NoError(t, err)
	require.Len(t, gotPlans, 1)
	assert.InDelta(t, 1.5, gotPlans[0].CompletedHours, 1e-9)

	gotSessions, err := freshSessions.List(ctx)
	require.NoError(t, err)
	require.Len(t, gotSessions, 1)
	assert.Equal(t, 45, gotSessions[0].DurationMin)
}

func TestTransfer_ImportSkipsExistingIDs(t *testing.T) {
	svc, plans, _ := newTransferFixture(t)
	ctx := context.Background()

	existing := testutil.NewTestPlan("Math")
	require.NoError(t, plans.Create(ctx, existing))

	path := filepath.Join(t.TempDir(), "export.json")
	_, err := svc.Export(ctx, path)
	require.NoError(t, err)

	result, err := svc.Import(ctx, path)
	require.NoError(t, err)
	assert.Zero(t, result.PlanCount)
	assert.Equal(t, 1, result.SkippedCount)

	gotPlans, err := plans.List(ctx)
	require.NoError(t, err)
	assert.Len(t, gotPlans, 1)
}

func TestTransfer_ImportRejectsInvalidFile(t *testing.T) {
	svc, plans, _ := newTransferFixture(t)
	ctx := context.Background()

	schema := &importer.ExportSchema{
		Plans: []importer.PlanExport{{ID: "p1", Subject: "Math"}}, // missing title, deadline, hours
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, importer.WriteExportSchema(schema, path))

	_, err := svc.Import(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	gotPlans, err := plans.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, gotPlans)
}

func TestTransfer_ImportMissingFile(t *testing.T) {
	svc, _, _ := newTransferFixture(t)

	_, err := svc.Import(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
