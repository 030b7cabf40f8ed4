package pure_utils

func Ptr[T any](v T) *T {
	return &v
}

func PtrValueOrDefault[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}
