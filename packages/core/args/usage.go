package args

import (
	"fmt"
	"strings"
)

var options = [][2]string{
	{"-X METHOD", "HTTP method: GET, POST or HEAD (default GET)"},
	{"-d DATA", "Send DATA as a form body (POST only)"},
	{"--json JSON", "Send JSON as the request body; implies POST and wins over -d"},
	{"-H \"Name: Value\"", "Add a request header (repeatable)"},
	{"-I, --head", "Send HEAD and print only the response headers (names sorted)"},
	{"-o FILE", "Write the response body to FILE"},
	{"-L", "Follow redirects (at most 10)"},
	{"-s", "Silent mode: print only the payload and errors"},
}

// Usage returns the usage hint listing every supported option
func Usage(program string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Usage: %s <URL> [-X METHOD] [-d DATA] [--json JSON] [-H \"Name: Value\"]... [-I|--head] [-o FILE] [-L] [-s]\n", program)
	sb.WriteString("\nOptions:\n")
	for _, opt := range options {
		fmt.Fprintf(&sb, "  %-18s %s\n", opt[0], opt[1])
	}
	return sb.String()
}
