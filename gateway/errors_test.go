// file: gateway/errors_test.go
package gateway

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindHelpers_SeeThroughWrapping(t *testing.T) {
	base := &APIError{Kind: KindAuth, Status: 401, Message: "token expired"}
	wrapped := fmt.Errorf("loading users: %w", base)

	assert.True(t, IsAuth(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.False(t, IsAuth(errors.New("plain")))
}

func TestNotice(t *testing.T) {
	assert.Equal(t, "title is required",
		Notice(&APIError{Kind: KindValidation, Status: 422, Message: "title is required"}))

	assert.Equal(t, "You are not authorized to perform this action.",
		Notice(&APIError{Kind: KindAuth, Status: 403, Message: "admins only"}))

	// Server and network details never leak to the visitor.
	assert.Equal(t, "Something went wrong. Please try again.",
		Notice(&APIError{Kind: KindServer, Status: 500, Message: "pq: connection reset"}))
	assert.Equal(t, "Something went wrong. Please try again.",
		Notice(&APIError{Kind: KindNetwork, Message: "dial tcp: refused"}))
	assert.Equal(t, "Something went wrong. Please try again.",
		Notice(errors.New("plain")))
}
