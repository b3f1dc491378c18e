package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/jpconwi/communitycare/internal/domain"
	"github.com/jpconwi/communitycare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeReportStore is an in-memory ReportStore. Its transactional methods
// mimic the real repository: on a forced error nothing is persisted.
type fakeReportStore struct {
	nextID        uint
	reports       map[uint]*models.Report
	notifications []models.Notification
	audits        []models.AuditLog
	forcedErr     error
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{reports: make(map[uint]*models.Report)}
}

func (f *fakeReportStore) Create(r *models.Report) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.nextID++
	r.ID = f.nextID
	cp := *r
	f.reports[r.ID] = &cp
	return nil
}

func (f *fakeReportStore) GetByID(id uint) (*models.Report, error) {
	r, ok := f.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReportStore) ListAll() ([]models.Report, error) {
	var list []models.Report
	for _, r := range f.reports {
		list = append(list, *r)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (f *fakeReportStore) ListByUser(userID uint) ([]models.Report, error) {
	all, _ := f.ListAll()
	var list []models.Report
	for _, r := range all {
		if r.UserID == userID {
			list = append(list, r)
		}
	}
	return list, nil
}

func (f *fakeReportStore) UpdateStatus(r *models.Report, n *models.Notification, entry *models.AuditLog) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	stored, ok := f.reports[r.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = r.Status
	f.notifications = append(f.notifications, *n)
	f.audits = append(f.audits, *entry)
	return nil
}

func (f *fakeReportStore) Delete(r *models.Report, entry *models.AuditLog) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	delete(f.reports, r.ID)
	f.audits = append(f.audits, *entry)
	return nil
}

type fakePhotoClient struct {
	uploads int
	folder  string
	fail    bool
}

func (f *fakePhotoClient) Upload(_ context.Context, _ io.Reader, folder, publicID string) (string, error) {
	if f.fail {
		return "", errors.New("upstream unavailable")
	}
	f.uploads++
	f.folder = folder
	return "https://photos.example/" + publicID, nil
}

func validSubmitInput() SubmitInput {
	return SubmitInput{
		ReporterName:     "Alice Smith",
		ProblemType:      "Road",
		Location:         "Main St",
		IssueDescription: "pothole",
		ReportedDate:     "2024-01-01",
		Priority:         "High",
	}
}

var (
	citizen = Actor{ID: 1, Role: domain.RoleUser}
	officer = Actor{ID: 9, Role: domain.RoleAdmin}
)

func TestSubmitDefaultsToPending(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store, nil, "reports")

	in := validSubmitInput()
	report, err := svc.Submit(context.Background(), citizen, in)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, report.Status)
	assert.Equal(t, citizen.ID, report.UserID)
	assert.Equal(t, "Road", report.ProblemType)
	assert.Equal(t, "High", report.Priority)
	assert.Empty(t, store.notifications, "submission must not notify anyone")
	assert.Empty(t, store.audits, "submission is not an admin action")
}

func TestSubmitNormalizesDecoratedLabels(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store, nil, "reports")

	in := validSubmitInput()
	in.ProblemType = "🛣️ Road - Potholes or road damage"
	in.Priority = "🔴 High - Requires immediate attention"
	report, err := svc.Submit(context.Background(), citizen, in)
	require.NoError(t, err)
	assert.Equal(t, "Road", report.ProblemType)
	assert.Equal(t, "High", report.Priority)
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store, nil, "reports")

	fields := []struct {
		name   string
		mutate func(*SubmitInput)
	}{
		{"reporter_name", func(in *SubmitInput) { in.ReporterName = "" }},
		{"problem_type", func(in *SubmitInput) { in.ProblemType = "" }},
		{"location", func(in *SubmitInput) { in.Location = "" }},
		{"issue_description", func(in *SubmitInput) { in.IssueDescription = "" }},
		{"reported_date", func(in *SubmitInput) { in.ReportedDate = "" }},
		{"priority", func(in *SubmitInput) { in.Priority = "" }},
	}
	for _, f := range fields {
		t.Run(f.name, func(t *testing.T) {
			in := validSubmitInput()
			f.mutate(&in)
			_, err := svc.Submit(context.Background(), citizen, in)
			var v *ValidationError
			require.ErrorAs(t, err, &v)
			assert.Equal(t, f.name, v.Field)
		})
	}
	assert.Empty(t, store.reports, "rejected submissions must not persist")
}

func TestSubmitRejectsUnknownLabels(t *testing.T) {
	svc := NewReportService(newFakeReportStore(), nil, "reports")

	in := validSubmitInput()
	in.ProblemType = "Dragons"
	_, err := svc.Submit(context.Background(), citizen, in)
	var v *ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "problem_type", v.Field)

	in = validSubmitInput()
	in.Priority = "Whenever"
	_, err = svc.Submit(context.Background(), citizen, in)
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "priority", v.Field)
}

func TestTransitionStatusRequiresAdmin(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store, nil, "reports")
	report, err := svc.Submit(context.Background(), citizen, validSubmitInput())
	require.NoError(t, err)

	_, err = svc.TransitionStatus(citizen, report.ID, domain.StatusResolved)
	assert.ErrorIs(t, err, ErrForbidden)

	got, _ := store.GetByID(report.ID)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Empty(t, store.notifications)
	assert.Empty(t, store.audits)
}

func TestTransitionStatusSideEffects(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store, nil, "reports")
	report, err := svc.Submit(context.Background(), citizen, validSubmitInput())
	require.NoError(t, err)

	updated, err := svc.TransitionStatus(officer, report.ID, domain.StatusResolved)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, updated.Status)

	require.Len(t, store.notifications, 1)
	n := store.notifications[0]
	assert.Equal(t, citizen.ID, n.UserID)
	assert.Equal(t, report.ID, n.ReportID)
	assert.Equal(t, "Your report status has been updated to Resolved", n.Message)
	assert.Equal(t, domain.NotificationTypeStatusUpdate, n.Type)

	require.Len(t, store.audits, 1)
	entry := store.audits[0]
	assert.Equal(t, officer.ID, entry.AdminID)
	assert.Equal(t, domain.ActionUpdateStatus, entry.Action)
	assert.Equal(t, domain.TargetReport, entry.TargetType)
	require.NotNil(t, entry.TargetID)
	assert.Equal(t, report.ID, *entry.TargetID)
	assert.Equal(t, "Status changed to Resolved", entry.Details)
}

func TestTransitionStatusSelfLoopAppendsEachTime(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store, nil, "reports")
	report, err := svc.Submit(context.Background(), citizen, validSubmitInput())
	require.NoError(t, err)

	// The state machine is permissive: re-entering the same status is a
	// legal transition and fires the full side-effect set every time.
	for i := 0; i < 3; i++ {
		_, err := svc.TransitionStatus(officer, report.ID, domain.StatusPending)
		require.NoError(t, err)
	}
	assert.Len(t, store.notifications, 3)
	assert.Len(t, store.audits, 3)
}

func TestTransitionStatusResolvedCanReopen(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store, nil, "reports")
	report, err := svc.Submit(context.Background(), citizen, validSubmitInput())
	require.NoError(t, err)

	_, err = svc.TransitionStatus(officer, report.ID, domain.StatusResolved)
	require.NoError(t, err)
	updated, err := svc.TransitionStatus(officer, report.ID, domain.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, updated.Status)
}

func TestTransitionStatusRejectsUnknownStatus(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store, nil, "reports")
	report, err := svc.Submit(context.Background(), citizen, validSubmitInput())
	require.NoError(t, err)

	_, err = svc.TransitionStatus(officer, report.ID, "Closed")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	got, _ := store.GetByID(report.ID)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Empty(t, store.notifications)
	assert.Empty(t, store.audits)
}

func TestTransitionStatusMissingReport(t *testing.T) {
	svc := NewReportService(newFakeReportStore(), nil, "reports")
	_, err := svc.TransitionStatus(officer, 42, domain.StatusResolved)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestTransitionStatusStoreFailureSurfaces(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store, nil, "reports")
	report, err := svc.Submit(context.Background(), citizen, validSubmitInput())
	require.NoError(t, err)

	store.forcedErr = errors.New("deadlock")
	_, err = svc.TransitionStatus(officer, report.ID, domain.StatusResolved)
	require.Error(t, err)

	// The fake mirrors the transactional contract: nothing partial remains.
	got, _ := store.GetByID(report.ID)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Empty(t, store.notifications)
	assert.Empty(t, store.audits)
}

func TestDeleteReport(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store, nil, "reports")
	report, err := svc.Submit(context.Background(), citizen, validSubmitInput())
	require.NoError(t, err)

	err = svc.Delete(citizen, report.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(officer, report.ID))
	_, err = store.GetByID(report.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.Len(t, store.audits, 1)
	assert.Equal(t, domain.ActionDelete, store.audits[0].Action)
	assert.Equal(t, "Deleted: Road - Main St", store.audits[0].Details)
	assert.Empty(t, store.notifications, "deletion is silent to the owner")

	assert.ErrorIs(t, svc.Delete(officer, report.ID), ErrReportNotFound)
}

func TestListScopes(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store, nil, "reports")

	other := Actor{ID: 2, Role: domain.RoleUser}
	for _, actor := range []Actor{citizen, other, citizen} {
		_, err := svc.Submit(context.Background(), actor, validSubmitInput())
		require.NoError(t, err)
	}

	_, err := svc.List(citizen, ScopeAll)
	assert.ErrorIs(t, err, ErrForbidden)

	all, err := svc.List(officer, ScopeAll)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first by id, not by any business timestamp.
	assert.True(t, all[0].ID > all[1].ID && all[1].ID > all[2].ID)

	mine, err := svc.List(citizen, ScopeMine)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, r := range mine {
		assert.Equal(t, citizen.ID, r.UserID)
	}

	_, err = svc.List(citizen, "everything")
	var v *ValidationError
	assert.ErrorAs(t, err, &v)
}

func TestGetReportOwnership(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store, nil, "reports")
	report, err := svc.Submit(context.Background(), citizen, validSubmitInput())
	require.NoError(t, err)

	got, err := svc.Get(citizen, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.ID)

	_, err = svc.Get(Actor{ID: 2, Role: domain.RoleUser}, report.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get(officer, report.ID)
	assert.NoError(t, err)

	_, err = svc.Get(officer, 999)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestSubmitUploadsPhoto(t *testing.T) {
	store := newFakeReportStore()
	photoClient := &fakePhotoClient{}
	svc := NewReportService(store, photoClient, "communitycare/reports")

	in := validSubmitInput()
	in.Photo = strings.NewReader("jpeg bytes")
	report, err := svc.Submit(context.Background(), citizen, in)
	require.NoError(t, err)
	assert.Equal(t, 1, photoClient.uploads)
	assert.Equal(t, "communitycare/reports", photoClient.folder)
	assert.True(t, strings.HasPrefix(report.PhotoRef, "https://photos.example/"))
}

func TestSubmitWithoutPhotoSkipsUpload(t *testing.T) {
	store := newFakeReportStore()
	photoClient := &fakePhotoClient{}
	svc := NewReportService(store, photoClient, "communitycare/reports")

	report, err := svc.Submit(context.Background(), citizen, validSubmitInput())
	require.NoError(t, err)
	assert.Zero(t, photoClient.uploads)
	assert.Empty(t, report.PhotoRef)
}

func TestSubmitFailsWhenUploadFails(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store, &fakePhotoClient{fail: true}, "communitycare/reports")

	in := validSubmitInput()
	in.Photo = strings.NewReader("jpeg bytes")
	_, err := svc.Submit(context.Background(), citizen, in)
	require.Error(t, err)
	assert.Empty(t, store.reports, "no report row without its photo ref")
}
