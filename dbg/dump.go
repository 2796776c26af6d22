package dbg

import "github.com/kr/pretty"

// Dump formats a value with all of its fields, following pointers.
func Dump(v interface{}) string {
	return pretty.Sprint(v)
}
