// Package store holds the client's authoritative state: the session and the
// task list. Each intent applies its pending transition immediately and
// returns a Request; running the request performs only the transport call
// and yields an Action that the owning store applies through Dispatch.
package store

import "context"

// Op names an asynchronous store operation
type Op string

const (
	OpLogin        Op = "login"
	OpRegister     Op = "register"
	OpFetch        Op = "fetch"
	OpCreate       Op = "create"
	OpUpdateStatus Op = "updateStatus"
	OpDelete       Op = "delete"
)

// Action is the terminal result of a Request: one of the *Fulfilled or
// *Rejected types in this package.
type Action interface {
	action()
}

// Request is an issued operation waiting for its transport call. The zero
// Request means nothing was issued.
type Request struct {
	Op  Op
	Seq uint64
	run func(ctx context.Context) Action
}

// Empty reports whether no call was issued
func (r Request) Empty() bool {
	return r.run == nil
}

// Run performs the transport call. It never touches store state and is safe
// to call from any goroutine.
func (r Request) Run(ctx context.Context) Action {
	if r.run == nil {
		return nil
	}
	return r.run(ctx)
}
