package errno

import (
	"errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConvertErr(t *testing.T) {
	assert.Equal(t, Success, ConvertErr(nil))

	wrapped := pkgerrors.WithMessage(VideoNotFoundErr, "service.GetVideo failed")
	got := ConvertErr(wrapped)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "Video not found", got.ErrMsg)

	got = ConvertErr(errors.New("dial tcp: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, "Internal server error", got.ErrMsg)
}

func TestWithMessage(t *testing.T) {
	e := ParamErr.WithMessage("title is required")
	assert.Equal(t, "title is required", e.Error())
	assert.Equal(t, ParamErr.Status, e.Status)
	assert.Equal(t, "Invalid request parameters", ParamErr.ErrMsg)

	e = UserNotFoundErr.WithMessagef("user %s not found", "u1")
	assert.Equal(t, "user u1 not found", e.ErrMsg)
}
