package storage

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/observer"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// ListContacts returns every contact, newest interaction first.
func (r *PostgresRepo) ListContacts(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Order("contact_date desc, created_at desc").Find(&contacts).Error
	observer.ObserveDbOperationDuration("list", "contact", time.Since(startTime), err)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list contacts: %w", apperrors.ErrDatabase, err)
	}
	return contacts, nil
}

// ListContactsByProspect returns one prospect's contact history, newest first.
func (r *PostgresRepo) ListContactsByProspect(ctx context.Context, prospectID int64) ([]model.Contact, error) {
	var contacts []model.Contact
	startTime := utils.Now()
	err := r.db.WithContext(ctx).
		Where("prospect_id = ?", prospectID).
		Order("contact_date desc, created_at desc").
		Find(&contacts).Error
	observer.ObserveDbOperationDuration("list_by_prospect", "contact", time.Since(startTime), err)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list contacts for prospect %d: %w", apperrors.ErrDatabase, prospectID, err)
	}
	return contacts, nil
}

// GetContact fetches one contact by primary key.
func (r *PostgresRepo) GetContact(ctx context.Context, id int64) (*model.Contact, error) {
	var contact model.Contact
	startTime := utils.Now()
	err := r.db.WithContext(ctx).First(&contact, id).Error
	observer.ObserveDbOperationDuration("get", "contact", time.Since(startTime), err)
	if err != nil {
		return nil, checkConstraintViolation(err)
	}
	return &contact, nil
}

// InsertContact creates a contact, filling its generated ID.
func (r *PostgresRepo) InsertContact(ctx context.Context, contact *model.Contact) error {
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Create(contact).Error
	observer.ObserveDbOperationDuration("insert", "contact", time.Since(startTime), err)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to insert contact",
			zap.Int64("prospect_id", contact.ProspectID), zap.Error(err))
		return checkConstraintViolation(err)
	}
	return nil
}

// UpdateContact overwrites the editable columns of an existing contact.
func (r *PostgresRepo) UpdateContact(ctx context.Context, contact model.Contact) error {
	startTime := utils.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Contact{}).
		Where("id = ?", contact.ID).
		Select(model.ContactUpdateColumns()).
		Updates(contact)
	observer.ObserveDbOperationDuration("update", "contact", time.Since(startTime), result.Error)
	if result.Error != nil {
		logger.FromContext(ctx).Error("Failed to update contact", zap.Int64("id", contact.ID), zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: contact %d not found", apperrors.ErrNotFound, contact.ID)
	}
	return nil
}

// DeleteContact removes a contact row.
func (r *PostgresRepo) DeleteContact(ctx context.Context, id int64) error {
	startTime := utils.Now()
	result := r.db.WithContext(ctx).Delete(&model.Contact{}, id)
	observer.ObserveDbOperationDuration("delete", "contact", time.Since(startTime), result.Error)
	if result.Error != nil {
		logger.FromContext(ctx).Error("Failed to delete contact", zap.Int64("id", id), zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: contact %d not found", apperrors.ErrNotFound, id)
	}
	return nil
}

// InsertContactChanges appends audit rows recording an edit. The log is
// append-only; failures here never roll back the edit itself.
func (r *PostgresRepo) InsertContactChanges(ctx context.Context, changes []model.ContactChange) error {
	if len(changes) == 0 {
		return nil
	}
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Create(&changes).Error
	observer.ObserveDbOperationDuration("insert", "contact_change", time.Since(startTime), err)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to insert contact changes",
			zap.Int("count", len(changes)), zap.Error(err))
		return checkConstraintViolation(err)
	}
	return nil
}

// ListContactChanges returns the audit trail for one contact, newest first.
func (r *PostgresRepo) ListContactChanges(ctx context.Context, contactID int64) ([]model.ContactChange, error) {
	var changes []model.ContactChange
	startTime := utils.Now()
	err := r.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("created_at desc").
		Find(&changes).Error
	observer.ObserveDbOperationDuration("list", "contact_change", time.Since(startTime), err)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list contact changes for contact %d: %w", apperrors.ErrDatabase, contactID, err)
	}
	return changes, nil
}
