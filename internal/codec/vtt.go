package codec

import (
	"fmt"
	"strings"

	"github.com/SUNET/captedit/internal/caption"
)

// ExportVTT renders the sequence as WebVTT. The only difference from the
// SRT timestamps is the dot decimal separator; there is no VTT parse
// counterpart.
func ExportVTT(captions []*caption.Caption) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for _, c := range captions {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n",
			c.Index,
			strings.ReplaceAll(c.StartTime, ",", "."),
			strings.ReplaceAll(c.EndTime, ",", "."),
			c.Text)
	}
	return sb.String()
}
