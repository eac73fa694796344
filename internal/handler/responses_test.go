package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SaleBadge_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"store failure", domain.ErrStoreFailure, http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"wrapped store failure", fmt.Errorf("load: %w", fmt.Errorf("get: %w", domain.ErrStoreFailure)), http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"invalid nonce", domain.ErrInvalidNonce, http.StatusForbidden, ErrMsgInvalidNonceError},
		{"unknown error hides details", errors.New("pq: password authentication failed"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
