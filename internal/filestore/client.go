// Package filestore talks to the HTTP object store holding uploaded document
// blobs. Objects are stored under generated names; the original file name
// lives only in the document record.
package filestore

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
)

// Store is the object-store surface the document service needs.
type Store interface {
	Upload(ctx context.Context, originalName, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, storagePath string) error
	PublicURL(storagePath string) string
}

// Client is an HTTP object-store client.
type Client struct {
	http          *resty.Client
	bucket        string
	publicBaseURL string
}

// NewClient builds a store client for one bucket.
func NewClient(endpoint, bucket, publicBaseURL, authToken string) *Client {
	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(60 * time.Second).
		SetHeader("Accept", "application/json")
	if authToken != "" {
		client.SetAuthToken(authToken)
	}

	return &Client{
		http:          client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload stores a blob under a fresh generated name that keeps the original
// extension, and returns the storage path. Names are never derived from the
// upload name, which is user-controlled.
func (c *Client) Upload(ctx context.Context, originalName, contentType string, data []byte) (string, error) {
	ext := filepath.Ext(originalName)
	storagePath := uuid.NewString() + ext

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Post(fmt.Sprintf("/object/%s/%s", c.bucket, storagePath))
	if err != nil {
		logger.FromContext(ctx).Error("File upload failed",
			zap.String("storage_path", storagePath), zap.Error(err))
		return "", fmt.Errorf("%w: file upload failed: %w", apperrors.ErrDatabase, err)
	}
	if resp.IsError() {
		logger.FromContext(ctx).Error("File upload rejected",
			zap.String("storage_path", storagePath), zap.Int("status", resp.StatusCode()))
		return "", fmt.Errorf("%w: file upload rejected with status %d", apperrors.ErrBadRequest, resp.StatusCode())
	}

	logger.FromContext(ctx).Info("Uploaded file",
		zap.String("storage_path", storagePath), zap.Int("size", len(data)))
	return storagePath, nil
}

// Delete removes a blob. A missing object is treated as already deleted.
func (c *Client) Delete(ctx context.Context, storagePath string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/object/%s/%s", c.bucket, storagePath))
	if err != nil {
		return fmt.Errorf("%w: file delete failed: %w", apperrors.ErrDatabase, err)
	}
	if resp.IsError() && resp.StatusCode() != 404 {
		return fmt.Errorf("%w: file delete rejected with status %d", apperrors.ErrBadRequest, resp.StatusCode())
	}
	return nil
}

// PublicURL returns the browser-facing URL for a stored blob.
func (c *Client) PublicURL(storagePath string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.publicBaseURL, c.bucket, storagePath)
}
