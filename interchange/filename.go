package interchange

import (
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/ncobase/taskboard/types"
)

// FileName builds an export file name such as
// schedule_export_wh-a1_20240610_093000.csv. Empty qualifiers are skipped.
func FileName(kind, ext string, now time.Time, qualifiers ...string) string {
	parts := []string{kind, "export"}
	for _, q := range qualifiers {
		if s := slug.Make(q); s != "" {
			parts = append(parts, s)
		}
	}
	parts = append(parts, types.FormatTime(now, types.StampLayout))
	return strings.Join(parts, "_") + "." + strings.TrimPrefix(ext, ".")
}
