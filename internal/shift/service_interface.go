package shift

import "context"

// ServiceInterface defines the contract for the shift notice
type ServiceInterface interface {
	List(ctx context.Context) []Entry
	RequestChange(ctx context.Context, req ChangeRequest, requestedBy string) (*ChangeAck, error)
}

var _ ServiceInterface = (*Service)(nil)
