package queue

import "github.com/zeebo/errs"

var Error = errs.Class("queue")

var (
	ErrEmptyQueue        = Error.New("empty")
	ErrAllocationFailure = Error.New("could not allocate node")
	ErrInvalidQueue      = Error.New("invalid or destroyed queue")
)
