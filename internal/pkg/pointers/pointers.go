package pointers

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

func Int(v int) *int          { return &v }
func String(v string) *string { return &v }

// NonEmpty returns nil for a blank string, which the API renders as null.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
