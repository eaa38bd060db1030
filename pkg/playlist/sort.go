package playlist

import (
	"sort"
)

func sortedByAttribute(tags []*Tag, key string) []*Tag {
	ret := make([]*Tag, len(tags))
	copy(ret, tags)

	sort.SliceStable(ret, func(i, j int) bool {
		vi, oki := ret[i].Attributes.Get(key)
		vj, okj := ret[j].Attributes.Get(key)

		switch {
		case oki && okj:
			return vi < vj

		case oki:
			// entries missing the attribute sort last
			return true

		default:
			return false
		}
	})

	return ret
}

// GetMediaTags returns the media tags ordered by ascending string comparison
// of the given attribute. Entries missing the attribute sort last; source
// order is preserved among equal or missing values. The playlist itself is
// not reordered.
func (p *Playlist) GetMediaTags(key string) []*Tag {
	return sortedByAttribute(p.MediaTags, key)
}

// GetMediaResources returns the media resources ordered by the given
// attribute, with the same rules as GetMediaTags.
func (p *Playlist) GetMediaResources(key string) []*Tag {
	return sortedByAttribute(p.MediaResources, key)
}

// GetVariantStreams returns the variant streams ordered by the given
// attribute, with the same rules as GetMediaTags.
func (p *Playlist) GetVariantStreams(key string) []*Tag {
	return sortedByAttribute(p.VariantStreams, key)
}
