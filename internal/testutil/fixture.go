package testutil

// Headers builds a manifest header map from alternating name/value pairs.
// Panics on an odd argument count; this is a test construction aid.
func Headers(pairs ...string) map[string]string {
	if len(pairs)%2 != 0 {
		panic("testutil.Headers: odd number of arguments")
	}
	m := make(map[string]string, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return m
}
