package fixmerkle

import "fmt"

// NotPowerOfTwoError is returned from [NewTree]
// when the number of items is not a power of two.
type NotPowerOfTwoError struct {
	// The capacity requested through [TreeConfig.Capacity].
	Capacity int

	// The number of items given to NewTree.
	LeafCount int
}

func (e NotPowerOfTwoError) Error() string {
	return fmt.Sprintf(
		"leaf count %d is not a power of two (capacity %d)",
		e.LeafCount, e.Capacity,
	)
}

// SizeMismatchError is returned from [NewTree]
// when the configured capacity does not match the number of items.
type SizeMismatchError struct {
	// The capacity configured through [TreeConfig.Capacity].
	Required int

	// The capacity implied by the item count, 2*len(items) - 1.
	Requested int
}

func (e SizeMismatchError) Error() string {
	return fmt.Sprintf(
		"tree size mismatch: configured capacity %d, items require %d",
		e.Required, e.Requested,
	)
}

// NoSuchLeafError is returned when a leaf index is outside of the tree.
// The tree remains valid after this error.
type NoSuchLeafError struct {
	Index int
}

func (e NoSuchLeafError) Error() string {
	return fmt.Sprintf("no such leaf: index %d", e.Index)
}
