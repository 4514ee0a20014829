package usecase

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/storage"
	"gitlab.com/fleetops/api/pipeline-admin/internal/validator"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
)

// ContactService implements the contact (interaction) commands. Edits to an
// existing contact additionally append field-level change rows to the audit
// log; the log is best-effort and never rolls back a committed edit.
type ContactService struct {
	contacts storage.ContactRepo
}

// NewContactService creates a ContactService.
func NewContactService(contacts storage.ContactRepo) *ContactService {
	return &ContactService{contacts: contacts}
}

// List returns every contact, most recent first.
func (s *ContactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.contacts.List(ctx)
}

// ListByProspect returns one prospect's contact timeline.
func (s *ContactService) ListByProspect(ctx context.Context, prospectID int64) ([]model.Contact, error) {
	return s.contacts.ListByProspect(ctx, prospectID)
}

// Get returns one contact by id.
func (s *ContactService) Get(ctx context.Context, id int64) (*model.Contact, error) {
	return s.contacts.Get(ctx, id)
}

// ListChanges returns the audit log for one contact, oldest first.
func (s *ContactService) ListChanges(ctx context.Context, contactID int64) ([]model.ContactChange, error) {
	return s.contacts.ListChanges(ctx, contactID)
}

// Save creates or updates a contact from its edit form. The completed flag
// is derived from status; updates append audit rows for every tracked field
// that changed.
func (s *ContactService) Save(ctx context.Context, form model.ContactForm) (*model.Contact, error) {
	user, err := requireWrite(ctx)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(form); err != nil {
		return nil, err
	}

	record := form.ToRecord()
	if record.ID > 0 {
		existing, err := s.contacts.Get(ctx, record.ID)
		if err != nil {
			return nil, err
		}
		if err := s.contacts.Update(ctx, record); err != nil {
			return nil, err
		}
		if changes := diffContactChanges(*existing, record); len(changes) > 0 {
			if err := s.contacts.InsertChanges(ctx, changes); err != nil {
				logger.FromContext(ctx).Error("Failed to append contact audit rows",
					zap.Int64("contact_id", record.ID), zap.Error(err))
			}
		}
	} else {
		if err := s.contacts.Insert(ctx, &record); err != nil {
			return nil, err
		}
	}

	logger.FromContext(ctx).Info("Saved contact",
		zap.Int64("contact_id", record.ID),
		zap.Int64("prospect_id", record.ProspectID),
		zap.String("user_id", user.ID))
	return &record, nil
}

// Delete removes a contact. Its audit rows remain.
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	if _, err := requireDelete(ctx); err != nil {
		return err
	}
	return s.contacts.Delete(ctx, id)
}

// diffContactChanges compares the persisted contact against the incoming
// edit and returns one audit row per tracked field that changed. Tracked
// fields are the ones dashboards and reports derive from.
func diffContactChanges(old, new model.Contact) []model.ContactChange {
	var changes []model.ContactChange
	record := func(field string, oldValue, newValue *string) {
		if strPtrEqual(oldValue, newValue) {
			return
		}
		changes = append(changes, model.ContactChange{
			ProspectID: new.ProspectID,
			ContactID:  new.ID,
			FieldName:  field,
			OldValue:   oldValue,
			NewValue:   newValue,
		})
	}

	record("status", strValue(old.Status), strValue(new.Status))
	record("forecast", strValue(old.Forecast), strValue(new.Forecast))
	record("actual", old.Actual, new.Actual)
	record("probability", floatValue(old.Probability), floatValue(new.Probability))
	record("gross_margin", floatValue(old.GrossMargin), floatValue(new.GrossMargin))
	record("final_gross_margin", floatPtrValue(old.FinalGrossMargin), floatPtrValue(new.FinalGrossMargin))
	record("expected_closing", old.ExpectedClosing, new.ExpectedClosing)
	record("actual_close_date", old.ActualCloseDate, new.ActualCloseDate)
	return changes
}

func strValue(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func floatValue(f float64) *string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return &s
}

func floatPtrValue(f *float64) *string {
	if f == nil {
		return nil
	}
	return floatValue(*f)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
