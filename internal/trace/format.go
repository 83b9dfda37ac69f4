package trace

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format represents the output format for trace events.
type Format uint8

const (
	FormatAuto   Format = iota // pick from output path
	FormatText                 // human-readable text
	FormatNDJSON               // newline-delimited JSON
)

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	}
	return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
}

type jsonEvent struct {
	Time      string            `json:"time"`
	Seq       uint64            `json:"seq"`
	Kind      string            `json:"kind"`
	Scope     string            `json:"scope"`
	SpanID    uint64            `json:"span_id,omitempty"`
	ParentID  uint64            `json:"parent_id,omitempty"`
	Name      string            `json:"name"`
	Detail    string            `json:"detail,omitempty"`
	ElapsedUS int64             `json:"elapsed_us,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

func encode(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		j := jsonEvent{
			Time:      ev.Time.Format(time.RFC3339Nano),
			Seq:       ev.Seq,
			Kind:      ev.Kind.String(),
			Scope:     ev.Scope.String(),
			SpanID:    ev.SpanID,
			ParentID:  ev.ParentID,
			Name:      ev.Name,
			Detail:    ev.Detail,
			ElapsedUS: ev.Elapsed.Microseconds(),
		}
		if len(ev.Fields) > 0 {
			j.Fields = make(map[string]string, len(ev.Fields))
			for _, f := range ev.Fields {
				j.Fields[f.Key] = f.Value
			}
		}
		data, _ := json.Marshal(j) //nolint:errcheck // plain strings and numbers
		return append(data, '\n')
	}

	// [seq] → scope name (detail) k=v +elapsed
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%6d] ", ev.Seq)
	if ev.ParentID > 0 {
		sb.WriteString("  ")
	}
	switch ev.Kind {
	case KindSpanBegin:
		sb.WriteString("→ ")
	case KindSpanEnd:
		sb.WriteString("← ")
	default:
		sb.WriteString("• ")
	}
	sb.WriteString(ev.Scope.String())
	sb.WriteByte(' ')
	sb.WriteString(ev.Name)
	if ev.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", ev.Detail)
	}
	for _, f := range ev.Fields {
		fmt.Fprintf(&sb, " %s=%s", f.Key, f.Value)
	}
	if ev.Kind == KindSpanEnd {
		fmt.Fprintf(&sb, " +%s", ev.Elapsed.Round(time.Microsecond))
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}
