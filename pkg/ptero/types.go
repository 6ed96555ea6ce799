package ptero

// Object is the panel's single-object envelope: one resource wrapped with
// its object type tag.
type Object[T any] struct {
	Object     string `json:"object"     yaml:"object"`
	Attributes T      `json:"attributes" yaml:"attributes"`
}

// List is the panel's list envelope. Entries keep the server-provided
// document order.
type List[T any] struct {
	Object string      `json:"object" yaml:"object"`
	Data   []Object[T] `json:"data"   yaml:"data"`
}

// Resources unwraps the list entries into a plain slice, preserving order.
func (l *List[T]) Resources() []T {
	resources := make([]T, len(l.Data))
	for i, obj := range l.Data {
		resources[i] = obj.Attributes
	}

	return resources
}

// RateLimits is the last quota snapshot observed on a successful response.
type RateLimits struct {
	// Limit is the total permitted requests in the current window.
	Limit int
	// Remaining is the number of requests left in the current window.
	Remaining int
}
