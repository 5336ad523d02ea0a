package model

import "strings"

// Author-supplied tags travel over the wire with a fixed prefix to keep them
// apart from system tags. The convention is confined to this encode/decode
// pair; the rest of the core works with bare tag names.
const authorTagPrefix = "author_tag_"

// EncodeAuthorTag converts a bare tag name to its wire form.
func EncodeAuthorTag(name string) string {
	return authorTagPrefix + name
}

// DecodeAuthorTag strips the author prefix from a wire tag. The second
// return is false for system tags, which carry no prefix.
func DecodeAuthorTag(tag string) (string, bool) {
	name, ok := strings.CutPrefix(tag, authorTagPrefix)
	return name, ok
}
