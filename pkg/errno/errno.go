package errno

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	SuccessCode = 0

	ServiceErrCode = 10001 + iota
	ParamErrCode
	AuthorizationFailedErrCode
	PermissionDeniedErrCode
	NotFoundErrCode
	ConflictErrCode
	TooManyRequestsErrCode
)

// ErrNo is a business error carrying the HTTP status it is reported with.
type ErrNo struct {
	ErrCode int64
	Status  int
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return e.ErrMsg
}

// WithMessage returns a copy of e with a different message.
func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

func (e ErrNo) WithMessagef(format string, args ...interface{}) ErrNo {
	e.ErrMsg = fmt.Sprintf(format, args...)
	return e
}

func NewErrNo(code int64, status int, msg string) ErrNo {
	return ErrNo{ErrCode: code, Status: status, ErrMsg: msg}
}

var (
	Success    = NewErrNo(SuccessCode, http.StatusOK, "Success")
	ServiceErr = NewErrNo(ServiceErrCode, http.StatusInternalServerError, "Internal server error")
	ParamErr   = NewErrNo(ParamErrCode, http.StatusBadRequest, "Invalid request parameters")

	AuthorizationFailedErr = NewErrNo(AuthorizationFailedErrCode, http.StatusUnauthorized, "Authentication required")
	MissingCredentialsErr  = NewErrNo(ParamErrCode, http.StatusBadRequest, "Email and password are required")
	InvalidCredentialsErr  = NewErrNo(AuthorizationFailedErrCode, http.StatusUnauthorized, "Invalid email or password")
	AccountDisabledErr     = NewErrNo(AuthorizationFailedErrCode, http.StatusUnauthorized, "Account is disabled")
	PermissionDeniedErr    = NewErrNo(PermissionDeniedErrCode, http.StatusForbidden, "Access denied")
	AdminRequiredErr       = NewErrNo(PermissionDeniedErrCode, http.StatusForbidden, "Access denied. Admin privileges required.")

	UserNotFoundErr     = NewErrNo(NotFoundErrCode, http.StatusNotFound, "User not found")
	UserAlreadyExistErr = NewErrNo(ParamErrCode, http.StatusBadRequest, "User with this email or username already exists")
	SignupFieldsErr     = NewErrNo(ParamErrCode, http.StatusBadRequest, "All fields are required")
	SelfModifyErr       = NewErrNo(ParamErrCode, http.StatusBadRequest, "Cannot modify your own account.")
	SelfDeleteErr       = NewErrNo(ParamErrCode, http.StatusBadRequest, "Cannot delete your own account.")
	ResetFieldsErr      = NewErrNo(ParamErrCode, http.StatusBadRequest, "User ID and new password are required")
	NewPasswordShortErr = NewErrNo(ParamErrCode, http.StatusBadRequest, "New password must be at least 6 characters long")
	AdminNotFoundErr    = NewErrNo(NotFoundErrCode, http.StatusNotFound, "Admin user not found. Please create the admin user first.")
	InvalidRoleErr      = NewErrNo(ParamErrCode, http.StatusBadRequest, "Invalid role")
	PasswordTooShortErr = NewErrNo(ParamErrCode, http.StatusBadRequest, "Password must be at least 6 characters long")
	WrongPasswordErr    = NewErrNo(AuthorizationFailedErrCode, http.StatusUnauthorized, "Current password is incorrect")

	VideoNotFoundErr    = NewErrNo(NotFoundErrCode, http.StatusNotFound, "Video not found")
	CategoryNotFoundErr = NewErrNo(ParamErrCode, http.StatusBadRequest, "Category not found")
	InvalidFormErr      = NewErrNo(ParamErrCode, http.StatusBadRequest, "Invalid form data")
	VideoFileErr        = NewErrNo(ParamErrCode, http.StatusBadRequest, "Video file is required")
	InvalidLikeTypeErr  = NewErrNo(ParamErrCode, http.StatusBadRequest, "Invalid like type. Must be LIKE or DISLIKE")

	CommentNotFoundErr  = NewErrNo(NotFoundErrCode, http.StatusNotFound, "Comment not found")
	CommentContentErr   = NewErrNo(ParamErrCode, http.StatusBadRequest, "Comment content is required")
	CommentTooLongErr   = NewErrNo(ParamErrCode, http.StatusBadRequest, "Comment is too long (max 1000 characters)")
	SearchQueryEmptyErr = NewErrNo(ParamErrCode, http.StatusBadRequest, "Search query is required")
	SearchQueryLongErr  = NewErrNo(ParamErrCode, http.StatusBadRequest, "Search query too long (max 100 characters)")
	PaginationErr       = NewErrNo(ParamErrCode, http.StatusBadRequest, "Invalid page or limit parameter")

	PlaylistNotFoundErr      = NewErrNo(NotFoundErrCode, http.StatusNotFound, "Playlist not found")
	PlaylistTitleErr         = NewErrNo(ParamErrCode, http.StatusBadRequest, "Playlist title is required")
	PlaylistVideoIDErr       = NewErrNo(ParamErrCode, http.StatusBadRequest, "Video ID is required")
	PlaylistVideoExistErr    = NewErrNo(ConflictErrCode, http.StatusConflict, "Video is already in this playlist")
	PlaylistVideoNotFoundErr = NewErrNo(NotFoundErrCode, http.StatusNotFound, "Video not found in playlist")

	SelfSubscribeErr = NewErrNo(ParamErrCode, http.StatusBadRequest, "Cannot subscribe to yourself")
	ChannelNotFound  = NewErrNo(NotFoundErrCode, http.StatusNotFound, "Channel not found")
	AdminExistsErr   = NewErrNo(PermissionDeniedErrCode, http.StatusForbidden, "Admin already configured")

	TooManyRequestsErr = NewErrNo(TooManyRequestsErrCode, http.StatusTooManyRequests, "Too many requests")
)

// ConvertErr convert error to Errno
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	return ServiceErr
}
