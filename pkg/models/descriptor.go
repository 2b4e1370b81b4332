package models

// Descriptor is the static metadata attached to an operation.
type Descriptor struct {
	ID       string
	Title    string
	Subtitle string
	// Preview is a documentation page relative to the docs directory. Optional.
	Preview string
}
