package models

import "strings"

// SanitizeKeySegment escapes the key delimiter so a crafted segment cannot
// address a neighbouring bucket.
func SanitizeKeySegment(s string) string {
	return strings.ReplaceAll(s, ":", "_")
}

// BucketKey is the store key for one client within one class.
func BucketKey(class EndpointClass, ip string) string {
	return string(class) + ":" + SanitizeKeySegment(ip)
}
