package entity

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFault_StatusMapping(t *testing.T) {
	tests := []struct {
		kind   FaultKind
		status int
	}{
		{FaultInvalidPayload, http.StatusBadRequest},
		{FaultNotFound, http.StatusNotFound},
		{FaultNetwork, http.StatusServiceUnavailable},
		{FaultLLMProvider, http.StatusBadGateway},
		{FaultTimeout, http.StatusGatewayTimeout},
		{FaultGeneric, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			f := NewFault(tt.kind, "boom")
			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.status, f.Status)
			assert.Equal(t, "boom", f.Detail)
			assert.Equal(t, "boom", f.Error())
		})
	}
}

func TestNewFault_UnknownKindFallsBackToGeneric(t *testing.T) {
	f := NewFault(FaultKind("made_up"), "boom")
	assert.Equal(t, FaultGeneric, f.Kind)
	assert.Equal(t, http.StatusInternalServerError, f.Status)
}

func TestAsFault(t *testing.T) {
	f, ok := AsFault(NewTimeoutFault("deadline"))
	require.True(t, ok)
	assert.Equal(t, FaultTimeout, f.Kind)

	wrapped := fmt.Errorf("process task: %w", NewNetworkFault("unreachable"))
	f, ok = AsFault(wrapped)
	require.True(t, ok)
	assert.Equal(t, FaultNetwork, f.Kind)

	_, ok = AsFault(errors.New("plain"))
	assert.False(t, ok)
}

func TestWrapFault(t *testing.T) {
	orig := NewLLMProviderFault("upstream said no")
	assert.Same(t, orig, WrapFault(orig))

	f := WrapFault(errors.New("something unexpected"))
	assert.Equal(t, FaultGeneric, f.Kind)
	assert.Equal(t, "something unexpected", f.Detail)
}
