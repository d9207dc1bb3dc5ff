package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"turfdesk/internal/staging"
	"turfdesk/internal/turf"
)

type fakeUploader struct {
	calls   int
	batches [][]*staging.File
	urls    []string
	err     error
}

func (f *fakeUploader) UploadBatch(ctx context.Context, files []*staging.File) ([]string, error) {
	f.calls++
	f.batches = append(f.batches, files)
	if f.err != nil {
		return nil, f.err
	}
	return f.urls, nil
}

type fakeTurfService struct {
	created    []turf.CreatePayload
	updatedIDs []int64
	updated    []turf.UpdatePayload
	err        error
	saved      *turf.Turf
}

func (f *fakeTurfService) Create(ctx context.Context, p turf.CreatePayload) (*turf.Turf, error) {
	f.created = append(f.created, p)
	if f.err != nil {
		return nil, f.err
	}
	return f.saved, nil
}

func (f *fakeTurfService) Update(ctx context.Context, id int64, p turf.UpdatePayload) (*turf.Turf, error) {
	f.updatedIDs = append(f.updatedIDs, id)
	f.updated = append(f.updated, p)
	if f.err != nil {
		return nil, f.err
	}
	return f.saved, nil
}

type fakeIdentity struct {
	id  int64
	err error
}

func (f fakeIdentity) OwnerID(ctx context.Context) (int64, error) {
	return f.id, f.err
}

func newSubmitter(up *fakeUploader, ts *fakeTurfService, id fakeIdentity) *Submitter {
	return &Submitter{
		Uploads: up,
		Turfs:   ts,
		Session: id,
		Logger:  zap.NewNop().Sugar(),
	}
}

func editInstance(t *testing.T, turfID int64, retained []string, pending ...*staging.File) *Instance {
	t.Helper()
	seed := SeedState(&turf.Turf{
		ID:                 turfID,
		Name:               "Green Arena",
		Phone:              "9841234567",
		Location:           "Baneshwor, Kathmandu",
		Type:               turf.SportFutsal,
		PricePerSlot:       "1500",
		OperatingStartTime: "06:00",
		OperatingEndTime:   "21:00",
		ImageURLs:          retained,
	})
	in := NewInstance(ModeEdit, turfID, seed)
	if len(pending) > 0 {
		in.Apply(func(s State) State { return s.WithImagesAdded(pending...) })
	}
	return in
}

func TestSubmitUpdateWithoutPendingImages(t *testing.T) {
	up := &fakeUploader{}
	ts := &fakeTurfService{saved: &turf.Turf{ID: 7}}
	s := newSubmitter(up, ts, fakeIdentity{id: 11})

	in := editInstance(t, 7, []string{"a.jpg", "b.jpg"})

	saved, err := s.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)

	// Nothing pending, so the uploader must never run.
	assert.Zero(t, up.calls)

	require.Len(t, ts.updated, 1)
	assert.Equal(t, []int64{7}, ts.updatedIDs)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, ts.updated[0].ImageURLs)
	assert.Empty(t, ts.created)
	assert.False(t, in.Busy())
}

func TestSubmitUpdateUploadsPendingThenMerges(t *testing.T) {
	up := &fakeUploader{urls: []string{"https://cdn.example.com/new.jpg"}}
	ts := &fakeTurfService{saved: &turf.Turf{ID: 9}}
	s := newSubmitter(up, ts, fakeIdentity{id: 11})

	in := editInstance(t, 9, []string{"kept.jpg"}, stagedFile("fresh.png"))

	_, err := s.Submit(context.Background(), in)
	require.NoError(t, err)

	// Exactly one batch carrying exactly the one pending file.
	require.Equal(t, 1, up.calls)
	require.Len(t, up.batches[0], 1)
	assert.Equal(t, "fresh.png", up.batches[0][0].Name)

	// Retained first, uploaded after.
	require.Len(t, ts.updated, 1)
	assert.Equal(t, []string{"kept.jpg", "https://cdn.example.com/new.jpg"}, ts.updated[0].ImageURLs)
}

func TestSubmitCreateCarriesOwner(t *testing.T) {
	up := &fakeUploader{urls: []string{"u1.jpg", "u2.jpg"}}
	ts := &fakeTurfService{saved: &turf.Turf{ID: 31}}
	s := newSubmitter(up, ts, fakeIdentity{id: 11})

	in := NewInstance(ModeCreate, 0, State{Fields: validFields()})
	in.Apply(func(st State) State {
		return st.WithImagesAdded(stagedFile("one.jpg"), stagedFile("two.jpg"))
	})

	saved, err := s.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(31), saved.ID)

	require.Len(t, ts.created, 1)
	assert.Equal(t, int64(11), ts.created[0].OwnerID)
	assert.Equal(t, []string{"u1.jpg", "u2.jpg"}, ts.created[0].ImageURLs)
	assert.Equal(t, "Green Arena", ts.created[0].Name)
	assert.Empty(t, ts.updated)
}

func TestSubmitUploadFailureStopsBeforeSave(t *testing.T) {
	cause := errors.New("backend responded 500")
	up := &fakeUploader{err: cause}
	ts := &fakeTurfService{saved: &turf.Turf{ID: 1}}
	s := newSubmitter(up, ts, fakeIdentity{id: 11})

	in := editInstance(t, 1, []string{"kept.jpg"}, stagedFile("doomed.png"))

	_, err := s.Submit(context.Background(), in)
	require.Error(t, err)

	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, StageUpload, submitErr.Stage)
	assert.ErrorIs(t, err, cause)

	// The save must never have been attempted.
	assert.Empty(t, ts.created)
	assert.Empty(t, ts.updated)
	assert.False(t, in.Busy())
}

func TestSubmitSaveFailureReportsSaveStage(t *testing.T) {
	cause := errors.New("backend responded 422: name taken")
	up := &fakeUploader{urls: []string{"stored.jpg"}}
	ts := &fakeTurfService{err: cause}
	s := newSubmitter(up, ts, fakeIdentity{id: 11})

	in := editInstance(t, 4, nil, stagedFile("up.png"))

	_, err := s.Submit(context.Background(), in)
	require.Error(t, err)

	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, StageSave, submitErr.Stage)
	assert.ErrorIs(t, err, cause)

	// The upload did happen; there is no rollback.
	assert.Equal(t, 1, up.calls)
	assert.False(t, in.Busy())
}

func TestSubmitValidationFailureStaysLocal(t *testing.T) {
	up := &fakeUploader{}
	ts := &fakeTurfService{}
	s := newSubmitter(up, ts, fakeIdentity{id: 11})

	fields := validFields()
	fields.PricePerSlot = "free"
	in := NewInstance(ModeCreate, 0, State{Fields: fields})

	_, err := s.Submit(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	// A validation failure never reaches the network.
	assert.Zero(t, up.calls)
	assert.Empty(t, ts.created)
	assert.Empty(t, ts.updated)
	assert.False(t, in.Busy())
}

func TestSubmitRejectsReentry(t *testing.T) {
	up := &fakeUploader{}
	ts := &fakeTurfService{saved: &turf.Turf{ID: 2}}
	s := newSubmitter(up, ts, fakeIdentity{id: 11})

	in := editInstance(t, 2, []string{"a.jpg"})

	_, err := in.BeginSubmit()
	require.NoError(t, err)
	require.True(t, in.Busy())

	_, err = s.Submit(context.Background(), in)
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Empty(t, ts.updated)

	in.EndSubmit()
	require.False(t, in.Busy())

	_, err = s.Submit(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, ts.updated, 1)
}

func TestSubmitCreateFailsWhenOwnerUnknown(t *testing.T) {
	up := &fakeUploader{}
	ts := &fakeTurfService{saved: &turf.Turf{ID: 3}}
	s := newSubmitter(up, ts, fakeIdentity{err: errors.New("no session token configured")})

	in := NewInstance(ModeCreate, 0, State{Fields: validFields()})

	_, err := s.Submit(context.Background(), in)
	require.Error(t, err)

	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, StageSave, submitErr.Stage)
	assert.Empty(t, ts.created)
}
