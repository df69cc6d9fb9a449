package fold

// Fold processes items left to right, carrying the accumulator forward.
// The step function must return the next accumulator; the signature makes
// dropping it a compile error, so the threading cannot be forgotten.
func Fold[T, A any](items []T, initial A, step func(acc A, item T) A) A {
	acc := initial
	for _, item := range items {
		acc = step(acc, item)
	}
	return acc
}

// Each visits every item once, in order, for a side effect.
func Each[T any](items []T, visit func(item T)) {
	for _, item := range items {
		visit(item)
	}
}

// MapSlice transforms every item into a fresh slice, leaving the input
// untouched.
func MapSlice[T, U any](items []T, transform func(item T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = transform(item)
	}
	return out
}
