package form

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"turfdesk/internal/staging"
	"turfdesk/internal/turf"
)

// UploadService pushes pending files to wherever images live and returns one
// stored URL per file, in submission order. The whole batch succeeds or the
// whole submission aborts.
type UploadService interface {
	UploadBatch(ctx context.Context, files []*staging.File) ([]string, error)
}

// TurfService is the backend's create/update surface for a single listing.
type TurfService interface {
	Create(ctx context.Context, p turf.CreatePayload) (*turf.Turf, error)
	Update(ctx context.Context, id int64, p turf.UpdatePayload) (*turf.Turf, error)
}

// Identity supplies the signed-in owner's account id, required before a
// create is attempted.
type Identity interface {
	OwnerID(ctx context.Context) (int64, error)
}

// Submitter runs the submission sequence: validate, upload the pending
// batch, merge references, dispatch create or update. Steps are strictly
// sequential and nothing runs concurrently with the save call.
type Submitter struct {
	Uploads UploadService
	Turfs   TurfService
	Session Identity
	Logger  *zap.SugaredLogger
}

// Submit drives one submission for an open form. The instance's busy flag
// guards against re-entry; validation errors, upload failures and save
// failures all come back as-is with the flag cleared, ready for the owner
// to correct and resubmit.
func (s *Submitter) Submit(ctx context.Context, in *Instance) (*turf.Turf, error) {
	state, err := in.BeginSubmit()
	if err != nil {
		return nil, err
	}
	defer in.EndSubmit()

	return s.run(ctx, state, in.Mode, in.TurfID)
}

func (s *Submitter) run(ctx context.Context, state State, mode Mode, turfID int64) (*turf.Turf, error) {
	if err := Validate(state.Fields); err != nil {
		return nil, err
	}

	refs := make([]string, 0, state.Images.TotalCount())
	refs = append(refs, state.Images.Retained...)

	if pending := state.Images.Pending; len(pending) > 0 {
		urls, err := s.Uploads.UploadBatch(ctx, pending)
		if err != nil {
			return nil, &SubmitError{Stage: StageUpload, Cause: err}
		}
		refs = append(refs, urls...)
	}

	saved, err := s.dispatch(ctx, state.Fields, refs, mode, turfID)
	if err != nil {
		if uploaded := len(state.Images.Pending); uploaded > 0 {
			// No rollback: the batch is already stored and now unreferenced.
			s.Logger.Warnw("save failed after image upload, uploaded files are orphaned",
				"uploaded", uploaded)
		}
		return nil, &SubmitError{Stage: StageSave, Cause: err}
	}
	return saved, nil
}

func (s *Submitter) dispatch(ctx context.Context, f FormFields, refs []string, mode Mode, turfID int64) (*turf.Turf, error) {
	if mode == ModeEdit {
		return s.Turfs.Update(ctx, turfID, turf.UpdatePayload{
			Name:               f.Name,
			Phone:              f.Phone,
			Location:           f.Location,
			Type:               f.Type,
			PricePerSlot:       f.PricePerSlot,
			Description:        f.Description,
			OperatingStartTime: f.OperatingStartTime,
			OperatingEndTime:   f.OperatingEndTime,
			ImageURLs:          refs,
		})
	}

	ownerID, err := s.Session.OwnerID(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve owner: %w", err)
	}
	return s.Turfs.Create(ctx, turf.CreatePayload{
		Name:               f.Name,
		Phone:              f.Phone,
		Location:           f.Location,
		Type:               f.Type,
		PricePerSlot:       f.PricePerSlot,
		Description:        f.Description,
		OperatingStartTime: f.OperatingStartTime,
		OperatingEndTime:   f.OperatingEndTime,
		ImageURLs:          refs,
		OwnerID:            ownerID,
	})
}
