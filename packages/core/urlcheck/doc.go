// Package urlcheck classifies a URL string before any network activity.
//
// Validation is purely syntactic. Malformed IPv6 literals, IPv4 addresses and
// ports are reported as distinct kinds; every other problem, including a
// missing or non-HTTP scheme, is reported as an invalid base protocol.
package urlcheck
