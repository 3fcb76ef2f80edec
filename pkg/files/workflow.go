// Package files orchestrates creation, listing, retrieval, and visibility
// toggling of file metadata records.
//
// The workflow owns no authorization logic of its own: it loads records from
// the record store and delegates every allow/deny decision to pkg/policy,
// masking denials as not-found. Payload bytes go through the payload store;
// the two writes during an upload are independent and not transactional, so
// a failed metadata insert can leave an orphan payload behind. That orphan
// is logged, never cleaned up.
package files

import (
	"context"
	"encoding/base64"
	"errors"
	"mime"
	"path/filepath"
	"time"

	"github.com/depotlabs/filedepot/internal/logger"
	"github.com/depotlabs/filedepot/pkg/policy"
	"github.com/depotlabs/filedepot/pkg/store/payload"
	"github.com/depotlabs/filedepot/pkg/store/record"
)

// PageSize is the fixed number of records per listing page.
const PageSize = 20

// defaultMimeType is used when nothing can be inferred from a file's name.
const defaultMimeType = "application/octet-stream"

// Workflow performs file-metadata operations against the record and payload
// stores.
type Workflow struct {
	records  record.Store
	payloads payload.Store
}

// NewWorkflow creates a workflow over the given stores.
func NewWorkflow(records record.Store, payloads payload.Store) *Workflow {
	return &Workflow{
		records:  records,
		payloads: payloads,
	}
}

// Upload validates the request, checks the parent target, persists the
// payload for non-folder kinds, and inserts the metadata record.
//
// The parent, when given, must exist and be a folder; ownership of the
// parent is not checked, so any authenticated user may create under any
// existing folder.
func (w *Workflow) Upload(ctx context.Context, owner policy.Identity, req *UploadRequest) (*record.File, error) {
	if err := checkUploadRequest(req); err != nil {
		return nil, err
	}

	parentID := req.ParentID
	if parentID == "" {
		parentID = record.RootParentID
	}

	var parent *record.File
	if parentID != record.RootParentID {
		found, err := w.records.FindFileByID(ctx, parentID)
		if record.IsNotFound(err) {
			return nil, validationErr("Parent not found")
		}
		if err != nil {
			return nil, err
		}
		parent = found
	}

	if !policy.CanCreateUnder(owner, parent) {
		return nil, validationErr("Parent is not a folder")
	}

	file := &record.File{
		OwnerID:   string(owner),
		Name:      req.Name,
		Kind:      req.Kind,
		ParentID:  parentID,
		IsPublic:  req.IsPublic,
		CreatedAt: time.Now(),
	}

	if req.Kind == record.KindFolder {
		return w.records.InsertFile(ctx, file)
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, validationErr("Invalid data")
	}
	if len(data) == 0 {
		return nil, validationErr("Missing data")
	}

	path, err := w.payloads.Write(ctx, data)
	if err != nil {
		logger.Error("Payload write failed: %v", err)
		return nil, errSavingFile
	}

	file.StoragePath = path
	inserted, err := w.records.InsertFile(ctx, file)
	if err != nil {
		// The payload is already on storage with no record pointing at it.
		// There is no compensating delete; the orphan stays.
		logger.Warn("Metadata insert failed after payload write, orphan payload at %s: %v", path, err)
		return nil, errSavingFile
	}

	return inserted, nil
}

// Show returns the metadata record with the given id, but only to its
// owner. Public visibility grants no access here; it only applies to raw
// content retrieval. Missing records and ownership mismatches are the same
// not-found.
func (w *Workflow) Show(ctx context.Context, owner policy.Identity, fileID string) (*record.File, error) {
	file, err := w.records.FindFileByID(ctx, fileID)
	if record.IsNotFound(err) {
		return nil, errNotFound
	}
	if err != nil {
		return nil, err
	}

	if !policy.CanWrite(owner, file) {
		return nil, errNotFound
	}

	return file, nil
}

// List returns one fixed-size page of the caller's own records under
// parentID (empty means root). Listing never exposes another user's
// records, public or not. Out-of-range pages yield an empty slice.
func (w *Workflow) List(ctx context.Context, owner policy.Identity, parentID string, page int64) ([]record.File, error) {
	if parentID == "" {
		parentID = record.RootParentID
	}
	if page < 0 {
		page = 0
	}

	return w.records.ListFiles(ctx, string(owner), parentID, page, PageSize)
}

// SetVisibility flips the public flag on a record the caller owns and
// returns the updated record. Same not-found masking as Show.
func (w *Workflow) SetVisibility(ctx context.Context, owner policy.Identity, fileID string, isPublic bool) (*record.File, error) {
	file, err := w.records.FindFileByID(ctx, fileID)
	if record.IsNotFound(err) {
		return nil, errNotFound
	}
	if err != nil {
		return nil, err
	}

	if !policy.CanWrite(owner, file) {
		return nil, errNotFound
	}

	return w.records.SetFileVisibility(ctx, fileID, isPublic)
}

// GetContent returns the raw payload bytes and MIME type of a record.
// Anonymous callers are allowed; the read policy decides per record. A
// folder has no content and is rejected as a bad request before any
// visibility check. Metadata whose payload is missing on storage is
// reported as plain not-found.
func (w *Workflow) GetContent(ctx context.Context, identity policy.Identity, fileID string) ([]byte, string, error) {
	file, err := w.records.FindFileByID(ctx, fileID)
	if record.IsNotFound(err) {
		return nil, "", errNotFound
	}
	if err != nil {
		return nil, "", err
	}

	if file.Kind == record.KindFolder {
		return nil, "", errFolderData
	}

	if !policy.CanRead(identity, file) {
		return nil, "", errNotFound
	}

	data, err := w.payloads.Read(ctx, file.StoragePath)
	if errors.Is(err, payload.ErrNoPayload) {
		logger.Warn("File %s has dangling storage path %s", file.ID, file.StoragePath)
		return nil, "", errNotFound
	}
	if err != nil {
		logger.Error("Payload read failed for file %s: %v", file.ID, err)
		return nil, "", errReadingFile
	}

	mimeType := mime.TypeByExtension(filepath.Ext(file.Name))
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	return data, mimeType, nil
}
