package entity

import (
	"errors"
	"net/http"
)

// FaultKind is one member of the closed error taxonomy. Each kind is bound to
// exactly one HTTP status; there is no dynamic registration.
type FaultKind string

const (
	FaultInvalidPayload FaultKind = "invalid_payload"
	FaultNotFound       FaultKind = "not_found"
	FaultNetwork        FaultKind = "network"
	FaultLLMProvider    FaultKind = "llm_provider"
	FaultTimeout        FaultKind = "timeout"
	FaultGeneric        FaultKind = "generic"
)

var faultStatus = map[FaultKind]int{
	FaultInvalidPayload: http.StatusBadRequest,
	FaultNotFound:       http.StatusNotFound,
	FaultNetwork:        http.StatusServiceUnavailable,
	FaultLLMProvider:    http.StatusBadGateway,
	FaultTimeout:        http.StatusGatewayTimeout,
	FaultGeneric:        http.StatusInternalServerError,
}

// Fault carries a fault kind, its HTTP status and a human-readable detail.
// Values are immutable after construction.
type Fault struct {
	Kind   FaultKind
	Status int
	Detail string
}

func (f *Fault) Error() string {
	return f.Detail
}

// NewFault builds a fault of the given kind. Unknown kinds fall back to the
// generic status so an unclassified failure can never leak without one.
func NewFault(kind FaultKind, detail string) *Fault {
	status, ok := faultStatus[kind]
	if !ok {
		kind = FaultGeneric
		status = http.StatusInternalServerError
	}
	return &Fault{Kind: kind, Status: status, Detail: detail}
}

func NewInvalidPayloadFault(detail string) *Fault { return NewFault(FaultInvalidPayload, detail) }
func NewNotFoundFault(detail string) *Fault       { return NewFault(FaultNotFound, detail) }
func NewNetworkFault(detail string) *Fault        { return NewFault(FaultNetwork, detail) }
func NewLLMProviderFault(detail string) *Fault    { return NewFault(FaultLLMProvider, detail) }
func NewTimeoutFault(detail string) *Fault        { return NewFault(FaultTimeout, detail) }
func NewGenericFault(detail string) *Fault        { return NewFault(FaultGeneric, detail) }

// AsFault reports whether err is, or wraps, a *Fault.
func AsFault(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// WrapFault returns err unchanged when it already carries a fault, otherwise a
// generic fault carrying err's message.
func WrapFault(err error) *Fault {
	if f, ok := AsFault(err); ok {
		return f
	}
	return NewGenericFault(err.Error())
}
