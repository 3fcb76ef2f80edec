package files

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/depotlabs/filedepot/pkg/store/record"
)

// validate is the singleton validator instance.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// UploadRequest is the explicit schema of an upload. It is validated before
// the workflow performs any store access.
//
// ParentID is the hex id of an existing folder, or empty/"0" for the root.
// Data carries the base64-encoded payload and is required for every kind
// except folder.
type UploadRequest struct {
	Name     string      `json:"name" validate:"required"`
	Kind     record.Kind `json:"type" validate:"required,oneof=folder file image"`
	ParentID string      `json:"parentId"`
	IsPublic bool        `json:"isPublic"`
	Data     string      `json:"data" validate:"required_unless=Kind folder"`
}

// checkUploadRequest runs schema validation and translates field failures
// into the service's caller-visible validation messages.
func checkUploadRequest(req *UploadRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return validationErr("Invalid request")
	}

	// Report the first failing field the way the API always has.
	switch fieldErrs[0].Field() {
	case "Name":
		return validationErr("Missing name")
	case "Kind":
		return validationErr("Missing type")
	case "Data":
		return validationErr("Missing data")
	default:
		return validationErr("Invalid request")
	}
}
