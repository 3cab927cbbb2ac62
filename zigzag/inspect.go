package zigzag

import (
	"fmt"
	"strings"
)

// Dump renders the array in its interleaved form, values bracketed:
// [V1] K1 [V2] K2 ... [trailing]. Debugging aid only; the format is not
// stable.
func (a *Array[K, V]) Dump() string {
	var b strings.Builder
	a.entries.Ascend(func(e entry[K, V]) bool {
		fmt.Fprintf(&b, "[%v] %v ", e.val, e.key)
		return true
	})
	if a.trailing != nil {
		fmt.Fprintf(&b, "[%v]", *a.trailing)
	} else {
		b.WriteString("[]")
	}
	return b.String()
}
