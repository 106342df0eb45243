package utils

// StringPtr returns a pointer to val when it holds a string and nil otherwise.
// Empty strings are kept; only the absence of a string value yields nil.
func StringPtr(val any) *string {
	switch v := val.(type) {
	case string:
		return &v
	case *string:
		return v
	default:
		return nil
	}
}

// StringField reads key from a decoded JSON object as a nullable string.
func StringField(m map[string]any, key string) *string {
	if m == nil {
		return nil
	}
	return StringPtr(m[key])
}

// FirstStringField returns the first key of keys holding a string value.
func FirstStringField(m map[string]any, keys ...string) *string {
	for _, key := range keys {
		if s := StringField(m, key); s != nil {
			return s
		}
	}
	return nil
}

// Nullable renders a nullable string, using "null" for nil.
func Nullable(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}

// EqualNullable compares two nullable strings by value; nil equals only nil.
func EqualNullable(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
