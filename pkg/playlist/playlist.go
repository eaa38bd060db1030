// Package playlist contains a M3U8 playlist decoder.
package playlist

import (
	"strings"
	"unicode/utf8"

	"github.com/justmike2000/m3u8parse/pkg/playlist/primitives"
)

// EXT-X-VERSION defaults to this when the playlist carries no version tag.
const defaultVersion = "2"

// Playlist is the parsed representation of a M3U8 playlist.
// It is never mutated after Unmarshal returns.
type Playlist struct {
	// EXT-X-VERSION
	Version string

	// EXT-X-INDEPENDENT-SEGMENTS
	IndependentSegments bool

	// EXT-X-MEDIA tags (alternative renditions).
	MediaTags []*Tag

	// EXTINF media segments.
	MediaResources []*Tag

	// EXT-X-STREAM-INF and EXT-X-I-FRAME-STREAM-INF variants.
	VariantStreams []*Tag

	// directives that belong to none of the three collections.
	Others []*Tag
}

// splitDirective splits a '#'-prefixed line into the directive name and its
// raw payload. Lines whose name does not have tag shape are comments.
func splitDirective(line string) (string, string, bool) {
	name, data, _ := strings.Cut(line[1:], ":")
	if !strings.HasPrefix(name, "EXT") {
		return "", "", false
	}
	return name, data, true
}

// EXTINF carries "duration[,title]" rather than an attribute list.
func extinfAttributes(data string) primitives.Attributes {
	var attrs primitives.Attributes

	duration, title, _ := strings.Cut(data, ",")
	attrs.Set("DURATION", strings.TrimSpace(duration))

	if title = strings.TrimSpace(title); title != "" {
		attrs.Set("TITLE", title)
	}

	return attrs
}

func (p *Playlist) push(t *Tag) {
	switch tagRules[t.Name].class {
	case classMediaTag:
		p.MediaTags = append(p.MediaTags, t)

	case classMediaResource:
		p.MediaResources = append(p.MediaResources, t)

	case classVariantStream:
		p.VariantStreams = append(p.VariantStreams, t)

	default:
		p.Others = append(p.Others, t)
	}
}

// Unmarshal decodes a playlist.
//
// Decoding is a single forward pass and is deliberately tolerant: malformed
// directives degrade to best-effort tags, lines with no meaning are skipped,
// and the only fatal condition is input that is not valid UTF-8 text, which
// yields a DecodeError.
func Unmarshal(buf []byte) (*Playlist, error) {
	if !utf8.Valid(buf) {
		return nil, &DecodeError{Reason: "input is not valid UTF-8"}
	}

	p := &Playlist{
		Version: defaultVersion,
	}

	// directive still awaiting its URI on a following line.
	var pending *Tag

	s := string(buf)

	for len(s) > 0 {
		var line string
		line, s = primitives.ReadLine(s)
		line = strings.TrimSpace(line)

		switch {
		case line == "":
			// blank lines do not break the directive/URI pairing

		case line[0] == '#':
			name, data, ok := splitDirective(line)
			if !ok {
				// comments do not break the pairing either
				continue
			}

			// a new directive resolves the previous one without a URI
			if pending != nil {
				p.push(pending)
				pending = nil
			}

			switch name {
			case "EXTM3U":

			case "EXT-X-VERSION":
				if data != "" {
					p.Version = data
				}

			case "EXT-X-INDEPENDENT-SEGMENTS":
				p.IndependentSegments = true

			default:
				tag := &Tag{Name: name}

				if name == "EXTINF" {
					tag.Attributes = extinfAttributes(data)
				} else {
					tag.Attributes = primitives.UnmarshalAttributes(data)
				}

				if tagRules[name].expectsURI {
					pending = tag
				} else {
					p.push(tag)
				}
			}

		default:
			if pending != nil {
				pending.URI = line
				p.push(pending)
				pending = nil
			}
			// orphan URI lines are dropped
		}
	}

	if pending != nil {
		p.push(pending)
	}

	return p, nil
}
