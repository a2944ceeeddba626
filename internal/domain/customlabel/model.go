package customlabel

// CreateCustomLabel is the request shape accepted when creating a custom label.
// The resource does not declare any fields yet.
type CreateCustomLabel struct{}

// UpdateCustomLabel is the partial form of CreateCustomLabel: every field of
// the create shape becomes optional.
type UpdateCustomLabel struct{}
