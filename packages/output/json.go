package output

import (
	"bytes"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// expanded puts every array element on its own line, however short
var expanded = &pretty.Options{Width: 0, Prefix: "", Indent: "  ", SortKeys: false}

type member struct {
	key    string
	rawKey string
	value  []byte
}

// RenderJSON reports whether body is JSON and, if so, renders it. Objects
// have their top-level keys sorted, one pair per line; nested values keep
// their order and are compacted. Anything else is pretty-printed as is.
func RenderJSON(body []byte) (string, bool) {
	trimmed := bytes.TrimSpace(body)
	if !gjson.ValidBytes(trimmed) {
		return "", false
	}

	doc := gjson.ParseBytes(trimmed)
	if !doc.IsObject() {
		return string(pretty.PrettyOptions(trimmed, expanded)), true
	}
	return renderSortedObject(doc), true
}

func renderSortedObject(doc gjson.Result) string {
	var members []member
	index := make(map[string]int)

	doc.ForEach(func(key, value gjson.Result) bool {
		m := member{
			key:    key.Str,
			rawKey: key.Raw,
			value:  pretty.Ugly([]byte(value.Raw)),
		}
		// a repeated key keeps its last value
		if i, ok := index[m.key]; ok {
			members[i] = m
		} else {
			index[m.key] = len(members)
			members = append(members, m)
		}
		return true
	})

	slices.SortFunc(members, func(a, b member) int {
		return strings.Compare(a.key, b.key)
	})

	var sb strings.Builder
	sb.WriteString("{\n")
	for i, m := range members {
		sb.WriteString("  ")
		sb.WriteString(m.rawKey)
		sb.WriteString(": ")
		sb.Write(m.value)
		if i < len(members)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}
