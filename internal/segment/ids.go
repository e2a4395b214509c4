package segment

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment ids are dotted decimal paths: top-level segments are "1", "2", …
// and splitting segment "4" produces children "4.1", "4.2", …. Splitting a
// child nests another level ("4.2" -> "4.2.1").

// SplitIDs returns the n child ids produced by splitting parent.
func SplitIDs(parent string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s.%d", parent, i+1)
	}
	return ids
}

// IsSequential reports whether next directly follows current in the dotted
// id sequence. Two forms count:
//
//  1. Incrementing the last numeric part: "1" -> "2", "4.2" -> "4.3".
//  2. Stepping down into the first child of the incremented id:
//     "3" -> "4.1", "4.1" -> "4.2.1".
//
// A split child can follow a plain segment only when it starts at ".1";
// there is no way to tell where an earlier split run ended, so "3" -> "4.2"
// is not sequential.
func IsSequential(current, next string) bool {
	curParts := strings.Split(current, ".")
	nextParts := strings.Split(next, ".")

	last, err := strconv.Atoi(curParts[len(curParts)-1])
	if err != nil {
		return false
	}

	if len(curParts) == len(nextParts) {
		same := true
		for i := 0; i < len(curParts)-1; i++ {
			if curParts[i] != nextParts[i] {
				same = false
				break
			}
		}
		if same {
			if n, err := strconv.Atoi(nextParts[len(nextParts)-1]); err == nil && n == last+1 {
				return true
			}
		}
	}

	stepped := make([]string, len(curParts))
	copy(stepped, curParts)
	stepped[len(stepped)-1] = strconv.Itoa(last + 1)
	return next == strings.Join(stepped, ".")+".1"
}
