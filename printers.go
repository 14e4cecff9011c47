package vector

import (
	"fmt"
	"strings"
)

// String renders the live elements as a diagnostic listing:
//
//	[1, 2, 3]
//
// An empty vector renders as []. Elements render with %v. The format is for
// logs and test fixtures, it is not a parseable encoding.
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < v.sz; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v.buf[i])
	}
	b.WriteByte(']')
	return b.String()
}
