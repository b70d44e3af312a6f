package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SceneIt_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInput},
		{domain.ErrInvalidRating, http.StatusBadRequest, ErrMsgInvalidRating},
		{domain.ErrInvalidTmdbID, http.StatusBadRequest, ErrMsgInvalidTmdbID},
		{domain.ErrInvalidUsername, http.StatusBadRequest, ErrMsgInvalidUsername},
		{domain.ErrCommentTooLong, http.StatusBadRequest, ErrMsgCommentTooLong},
		{domain.ErrUnauthorized, http.StatusUnauthorized, ErrMsgUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden, ErrMsgForbidden},
		{domain.ErrPlaylistNotFound, http.StatusNotFound, ErrMsgPlaylistNotFound},
		{domain.ErrProfileNotFound, http.StatusNotFound, ErrMsgProfileNotFound},
		{domain.ErrReviewNotFound, http.StatusNotFound, ErrMsgReviewNotFound},
		{domain.ErrUsernameTaken, http.StatusConflict, ErrMsgUsernameTaken},
		{fmt.Errorf("create playlist: %w", domain.ErrForbidden), http.StatusForbidden, ErrMsgForbidden},
		{domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondServiceError_HidesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	respondServiceError(w, r, "Load", fmt.Errorf("pq: connection refused on 10.0.0.3: %w", domain.ErrDatabaseError))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Something went wrong"}`, w.Body.String())
}
