package service

import (
	"mime/multipart"
	"strings"

	"VideoHub.com/pkg/errno"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// VideoPagination is the page block of the home feed and the library.
type VideoPagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit,omitempty"`
	TotalPages  int   `json:"totalPages"`
	TotalVideos int64 `json:"totalVideos"`
}

type UploadVideoRequest struct {
	Title       string `validate:"required,max=100"`
	Description string `validate:"max=1000"`
	CategoryID  string `validate:"required"`
	UserID      string `validate:"required"`
	IsPublished bool

	Video     *multipart.FileHeader
	Thumbnail *multipart.FileHeader
}

// FieldIssue describes one rejected upload field.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormError reports every invalid upload field. It converts to InvalidFormErr.
type FormError struct {
	Details []FieldIssue
}

func (e *FormError) Error() string {
	return errno.InvalidFormErr.ErrMsg
}

func (e *FormError) Unwrap() error {
	return errno.InvalidFormErr
}

func newFormError(errs validator.ValidationErrors) *FormError {
	details := make([]FieldIssue, 0, len(errs))
	for _, fe := range errs {
		details = append(details, FieldIssue{Field: jsonField(fe.Field()), Message: issueMessage(fe)})
	}
	return &FormError{Details: details}
}

func jsonField(name string) string {
	switch name {
	case "CategoryID":
		return "categoryId"
	case "UserID":
		return "userId"
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "max":
		return "Must contain at most " + fe.Param() + " character(s)"
	}
	return "Invalid value"
}
