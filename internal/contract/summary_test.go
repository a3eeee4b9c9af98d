package contract

import (
	"errors"
	"testing"

	"github.com/alexanderramin/wakatime/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewSummaryRequest_SetsDefaults(t *testing.T) {
	req := NewSummaryRequest(domain.RangeWeek)

	assert.Equal(t, domain.RangeWeek, req.Range)
	assert.Empty(t, req.ProjectFilter)
	assert.Nil(t, req.Now)
}

func TestSummaryResponse_Empty(t *testing.T) {
	resp := &SummaryResponse{}
	assert.True(t, resp.Empty())
	assert.False(t, resp.Filtered())

	resp.Result.TotalMinutes = 5
	assert.False(t, resp.Empty())
}

func TestRequestError_Unwraps(t *testing.T) {
	cause := errors.New("bad pattern")
	err := &RequestError{Code: ReqErrInvalidFilter, Message: "invalid filter", Err: cause}

	assert.Equal(t, "INVALID_FILTER: invalid filter", err.Error())
	assert.ErrorIs(t, err, cause)
}
