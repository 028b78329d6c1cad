package pagesim

import "fmt"

type constError string

const (
	// ErrInvalidCapacity may be returned from [Policy.Faults].
	ErrInvalidCapacity = constError("invalid capacity")
	// ErrInvalidTrials may be returned from [New].
	ErrInvalidTrials = constError("invalid trial count")
	// ErrInvalidSweep may be returned from [New].
	ErrInvalidSweep = constError("invalid capacity sweep")
	// ErrInvalidTrace may be returned from [New] and [NewGenerator].
	ErrInvalidTrace = constError("invalid trace configuration")
	// ErrInvalidPolicy may be returned from [New].
	ErrInvalidPolicy = constError("invalid policy set")
	// ErrNoSource may be returned from [New] and [NewGenerator].
	ErrNoSource = constError("missing random source")
)

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		ErrInvalidCapacity, MinimumCapacity, capacity)
}
