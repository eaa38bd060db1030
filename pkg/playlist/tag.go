package playlist

import (
	"github.com/justmike2000/m3u8parse/pkg/playlist/primitives"
)

// Tag is a parsed directive, together with the URI line that followed it
// when the directive expects one.
type Tag struct {
	// directive name, without the leading '#'.
	Name string

	// attribute list, in source order.
	Attributes primitives.Attributes

	// URI of the resource described by the directive.
	// Empty when the directive carries none.
	URI string
}

// Map returns the flat form of the tag: every attribute plus a synthetic
// "uri" key when a URI is present.
func (t *Tag) Map() map[string]string {
	ret := t.Attributes.Map()
	if t.URI != "" {
		ret["uri"] = t.URI
	}
	return ret
}

type tagClass int

const (
	classOther tagClass = iota
	classMediaTag
	classMediaResource
	classVariantStream
)

type tagRule struct {
	class tagClass

	// whether the resource URI is the next line of the playlist,
	// rather than an inline URI attribute.
	expectsURI bool
}

// classification of directive names into target collections.
// Unlisted directives go to Others.
var tagRules = map[string]tagRule{
	"EXT-X-MEDIA":              {class: classMediaTag},
	"EXTINF":                   {class: classMediaResource, expectsURI: true},
	"EXT-X-STREAM-INF":         {class: classVariantStream, expectsURI: true},
	"EXT-X-I-FRAME-STREAM-INF": {class: classVariantStream},
}
