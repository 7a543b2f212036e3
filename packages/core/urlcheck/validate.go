package urlcheck

import (
	"net/netip"
	neturl "net/url"
	"strconv"
	"strings"
)

type Kind int

const (
	KindScheme Kind = iota
	KindIPv6
	KindIPv4
	KindPort
)

var messages = map[Kind]string{
	KindScheme: "The URL does not have a valid base protocol.",
	KindIPv6:   "The URL contains an invalid IPv6 address.",
	KindIPv4:   "The URL contains an invalid IPv4 address.",
	KindPort:   "The URL contains an invalid port number.",
}

type Error struct {
	Kind Kind
	URL  string
}

func (e *Error) Error() string {
	return messages[e.Kind]
}

// Validate parses raw and accepts it only if it is a well-formed http or https URL
func Validate(raw string) (*neturl.URL, error) {
	if authority, ok := authorityOf(raw); ok {
		if kind, bad := checkAuthority(authority); bad {
			return nil, &Error{Kind: kind, URL: raw}
		}
	}

	u, err := neturl.Parse(raw)
	if err != nil {
		return nil, &Error{Kind: KindScheme, URL: raw}
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, &Error{Kind: KindScheme, URL: raw}
	}
	if u.Hostname() == "" {
		return nil, &Error{Kind: KindScheme, URL: raw}
	}
	u.Scheme = scheme
	normalizeIPv4Host(u)

	return u, nil
}

// authorityOf returns the host[:port] part of a "scheme://" URL, without userinfo
func authorityOf(raw string) (string, bool) {
	i := strings.Index(raw, "://")
	if i <= 0 || !validScheme(raw[:i]) {
		return "", false
	}
	rest := raw[i+3:]
	if end := strings.IndexAny(rest, "/?#\\"); end >= 0 {
		rest = rest[:end]
	}
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		rest = rest[at+1:]
	}
	return rest, true
}

func validScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

func checkAuthority(authority string) (Kind, bool) {
	var host, port string
	hasPort := false

	if strings.HasPrefix(authority, "[") {
		end := strings.Index(authority, "]")
		if end < 0 {
			return KindIPv6, true
		}
		addr, err := netip.ParseAddr(authority[1:end])
		if err != nil || !addr.Is6() || addr.Zone() != "" {
			return KindIPv6, true
		}
		rest := authority[end+1:]
		if rest != "" {
			if rest[0] != ':' {
				return KindIPv6, true
			}
			port, hasPort = rest[1:], true
		}
	} else {
		host = authority
		if i := strings.Index(authority, ":"); i >= 0 {
			host, port, hasPort = authority[:i], authority[i+1:], true
		}
		if _, ok := parseIPv4(host); endsInNumber(host) && !ok {
			return KindIPv4, true
		}
	}

	if hasPort && !validPort(port) {
		return KindPort, true
	}
	return 0, false
}

func validPort(port string) bool {
	if port == "" {
		return true
	}
	for i := 0; i < len(port); i++ {
		if port[i] < '0' || port[i] > '9' {
			return false
		}
	}
	n, err := strconv.ParseUint(port, 10, 32)
	return err == nil && n <= 65535
}

// endsInNumber reports whether the last label of host looks numeric, in which
// case the host must be an IPv4 address.
func endsInNumber(host string) bool {
	labels := strings.Split(host, ".")
	if len(labels) > 1 && labels[len(labels)-1] == "" {
		labels = labels[:len(labels)-1]
	}
	last := labels[len(labels)-1]
	if last == "" {
		return false
	}
	if isDigits(last) {
		return true
	}
	_, ok := parseIPv4Number(last)
	return ok
}

// normalizeIPv4Host rewrites shorthand IPv4 hosts such as 127.1 or
// 0x7f.0.0.1 to dotted decimal, which is all net/http can dial.
func normalizeIPv4Host(u *neturl.URL) {
	host := u.Hostname()
	if strings.HasPrefix(u.Host, "[") || !endsInNumber(host) {
		return
	}
	addr, ok := parseIPv4(host)
	if !ok {
		return
	}
	if port := u.Port(); port != "" {
		u.Host = addr.String() + ":" + port
		return
	}
	u.Host = addr.String()
}

// parseIPv4 accepts the forms browsers accept: one to four parts, each
// decimal, 0x-prefixed hex or 0-prefixed octal, with the last part filling
// the remaining bytes.
func parseIPv4(host string) (netip.Addr, bool) {
	parts := strings.Split(host, ".")
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > 4 {
		return netip.Addr{}, false
	}

	numbers := make([]uint64, len(parts))
	for i, part := range parts {
		n, ok := parseIPv4Number(part)
		if !ok {
			return netip.Addr{}, false
		}
		numbers[i] = n
	}

	var ipv4 uint64
	for i, n := range numbers[:len(numbers)-1] {
		if n > 255 {
			return netip.Addr{}, false
		}
		ipv4 |= n << (8 * (3 - i))
	}
	last := numbers[len(numbers)-1]
	if last >= 1<<(8*(5-len(numbers))) {
		return netip.Addr{}, false
	}
	ipv4 |= last

	return netip.AddrFrom4([4]byte{byte(ipv4 >> 24), byte(ipv4 >> 16), byte(ipv4 >> 8), byte(ipv4)}), true
}

func parseIPv4Number(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	base := 10
	switch {
	case len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X"):
		s, base = s[2:], 16
	case len(s) >= 2 && s[0] == '0':
		s, base = s[1:], 8
	}
	if s == "" {
		return 0, true
	}
	n, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
