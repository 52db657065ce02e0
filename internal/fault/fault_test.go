package fault_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/stretchr/testify/assert"
)

func Test_KindStatus(t *testing.T) {
	tests := []struct {
		err    error
		kind   fault.Kind
		status int
	}{
		{fault.Validation("bad"), fault.KindValidation, http.StatusBadRequest},
		{fault.Auth("nope"), fault.KindAuth, http.StatusUnauthorized},
		{fault.Conflict("dupe"), fault.KindConflict, http.StatusConflict},
		{fault.NotFound("gone"), fault.KindNotFound, http.StatusNotFound},
		{fault.Provider("down", errors.New("x")), fault.KindProvider, http.StatusInternalServerError},
		{fault.Persistence("db", errors.New("x")), fault.KindPersistence, http.StatusInternalServerError},
		{errors.New("plain"), fault.Unknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.Equal(t, tt.kind, fault.KindOf(wrapped))
			assert.Equal(t, tt.status, fault.KindOf(wrapped).Status())
		})
	}
}

func Test_ErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := fault.Provider("Identity provider unavailable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Identity provider unavailable: connection reset", err.Error())
	assert.True(t, fault.Is(err, fault.KindProvider))
}
