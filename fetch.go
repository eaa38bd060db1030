package m3u8parse

import (
	"context"
	"io"
	"net/http"
)

func fetchPlaylist(
	ctx context.Context,
	httpClient *http.Client,
	onRequest ClientOnRequestFunc,
	uri string,
) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, &FetchError{URL: uri, Err: err}
	}

	onRequest(req)

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: uri, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: uri, StatusCode: res.StatusCode}
	}

	byts, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &FetchError{URL: uri, Err: err}
	}

	return byts, nil
}
