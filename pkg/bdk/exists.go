package bdk

// Exists reports whether an optional string field was supplied. The empty
// string counts as absent.
func Exists(s string) bool {
	return s != ""
}

// ExistsInt reports whether an optional numeric field was supplied. Zero
// is a supplied value; only nil is absent.
func ExistsInt(n *int) bool {
	return n != nil
}
