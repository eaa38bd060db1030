/*
Package m3u8parse fetches and parses M3U8 playlists.

The parser lives in pkg/playlist and works on already-fetched text; this
package adds the HTTP fetch step in front of it.
*/
package m3u8parse

import (
	"context"
	"net/http"

	"github.com/justmike2000/m3u8parse/pkg/playlist"
)

// ClientOnRequestFunc is the prototype of Client.OnRequest.
type ClientOnRequestFunc func(*http.Request)

// Client fetches a playlist document and parses it.
type Client struct {
	//
	// parameters (all optional except URI)
	//
	// URI of the playlist.
	URI string
	// HTTP client.
	// It defaults to http.DefaultClient.
	HTTPClient *http.Client
	// called before every request, to inspect it or add headers.
	OnRequest ClientOnRequestFunc
	// function used to log.
	// It defaults to log.Printf.
	Log LogFunc
}

func (c *Client) initialize() {
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.OnRequest == nil {
		c.OnRequest = func(*http.Request) {}
	}
	if c.Log == nil {
		c.Log = defaultLog
	}
}

// Fetch downloads the document at the client URI and parses it.
// Retrieval failures yield a *FetchError; non-text documents yield a
// *playlist.DecodeError.
func (c *Client) Fetch(ctx context.Context) (*playlist.Playlist, error) {
	c.initialize()

	c.Log(LogLevelDebug, "fetching playlist %s", c.URI)

	body, err := fetchPlaylist(ctx, c.HTTPClient, c.OnRequest, c.URI)
	if err != nil {
		return nil, err
	}

	c.Log(LogLevelDebug, "parsing playlist %s (%d bytes)", c.URI, len(body))

	return playlist.Unmarshal(body)
}

// FromURI fetches and parses the playlist at uri with default settings.
func FromURI(ctx context.Context, uri string) (*playlist.Playlist, error) {
	c := &Client{URI: uri}
	return c.Fetch(ctx)
}

// Parse parses an already-fetched playlist document.
func Parse(buf []byte) (*playlist.Playlist, error) {
	return playlist.Unmarshal(buf)
}
