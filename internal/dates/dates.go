package dates

import (
	"time"

	"github.com/samber/lo"
)

// Layout is the date format used for document IDs and API payloads.
const Layout = "2006-01-02"

// Missing returns the dates in [start, end] (both inclusive) that are absent
// from existing, in ascending order. An inverted range yields an empty result.
func Missing(existing []string, start, end time.Time) []string {
	seen := lo.SliceToMap(existing, func(d string) (string, struct{}) {
		return d, struct{}{}
	})

	var missing []string
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		d := cur.Format(Layout)
		if _, ok := seen[d]; !ok {
			missing = append(missing, d)
		}
	}
	return missing
}
