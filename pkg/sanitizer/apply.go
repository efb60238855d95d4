package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose builds a reusable pipeline out of transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Input is the pipeline applied to every raw form value before validation:
// surrounding whitespace is dropped, inner runs collapse to one space and
// control characters are removed.
var Input = Compose(
	RemoveControlChars,
	NormalizeWhitespace,
)
