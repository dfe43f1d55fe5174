package codec

import (
	"fmt"
	"strings"

	"github.com/SUNET/captedit/internal/caption"
)

const rtfHeader = `{\rtf1\ansi\deff0{\fonttbl{\f0 Arial;}}\viewkind4\uc1\pard\f0\fs20 `

// ExportRTF renders the transcript as RTF with a bold speaker prefix and
// a start - end time line per caption.
func ExportRTF(captions []*caption.Caption) string {
	var sb strings.Builder
	sb.WriteString(rtfHeader)
	for _, c := range captions {
		sb.WriteString(`\b `)
		sb.WriteString(rtfEscape(c.Speaker + ": "))
		sb.WriteString(`\b0 `)
		sb.WriteString(rtfEscape(c.StartTime + " - " + c.EndTime))
		sb.WriteString(`\line `)
		sb.WriteString(strings.ReplaceAll(rtfEscape(c.Text), "\n", `\line `))
		sb.WriteString(`\line\line `)
	}
	sb.WriteString("}")
	return strings.TrimSpace(sb.String())
}

// ExportRTFWith renders RTF honoring the export options.
func ExportRTFWith(captions []*caption.Caption, opts ExportOptions) string {
	var sb strings.Builder
	sb.WriteString(rtfHeader)
	for _, c := range captions {
		var header []string
		if opts.IncludeSpeaker {
			header = append(header, `\b `+rtfEscape(c.Speaker+":")+`\b0 `)
		}
		if opts.IncludeTimestamps {
			header = append(header, rtfEscape(timestampFor(c, opts)))
		}
		if len(header) > 0 {
			sb.WriteString(strings.Join(header, " "))
			sb.WriteString(`\line `)
		}
		sb.WriteString(strings.ReplaceAll(rtfEscape(c.Text), "\n", `\line `))
		sb.WriteString(`\line\line `)
	}
	sb.WriteString("}")
	return strings.TrimSpace(sb.String())
}

// rtfEscape escapes RTF control characters and encodes non-ASCII runes
// as signed 16-bit \uN? sequences.
func rtfEscape(text string) string {
	var sb strings.Builder
	for _, r := range text {
		switch {
		case r == '\\' || r == '{' || r == '}':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r < 128:
			sb.WriteRune(r)
		default:
			code := int(r)
			if code > 0x7FFF {
				code -= 0x10000
			}
			fmt.Fprintf(&sb, `\u%d?`, code)
		}
	}
	return sb.String()
}
