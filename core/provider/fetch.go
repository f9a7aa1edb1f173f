// ABOUTME: Result page fetching for the provider client
// ABOUTME: Decodes continuation payloads and stops at the first failure or the continuation cap

package provider

import (
	"context"
	"encoding/json"
	"iter"

	"snapfind-api/core/domain"
	coreerrors "snapfind-api/core/errors"
)

// continuationPayload is the JSON form of a result page that may carry a cursor
type continuationPayload struct {
	HTML       string `json:"html"`
	Markup     string `json:"markup"`
	Cursor     string `json:"cursor"`
	NextCursor string `json:"next_cursor"`
}

func (p continuationPayload) markup() string {
	if p.HTML != "" {
		return p.HTML
	}
	return p.Markup
}

func (p continuationPayload) cursor() string {
	if p.Cursor != "" {
		return p.Cursor
	}
	return p.NextCursor
}

// decodePage splits a response body into markup and continuation token.
// A JSON body that does not decode is kept as raw markup without a cursor.
func decodePage(contentType string, body []byte) (markup string, cursor string, err error) {
	if !jsonLike(contentType, body) {
		return string(body), "", nil
	}
	var payload continuationPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return string(body), "", &coreerrors.MalformedPayloadError{Source: "continuation", Reason: err.Error()}
	}
	return payload.markup(), payload.cursor(), nil
}

// FetchPages yields the result pages for handle, following continuation
// cursors. The first failing request yields its error and ends the sequence.
// After MaxContinuations follow-up requests the sequence ends silently.
func (c *Client) FetchPages(ctx context.Context, handle domain.SearchHandle) iter.Seq2[domain.RawPage, error] {
	return func(yield func(domain.RawPage, error) bool) {
		cursor := ""
		for index := 0; index <= c.config.MaxContinuations; index++ {
			if err := ctx.Err(); err != nil {
				yield(domain.RawPage{}, err)
				return
			}

			markup, next, err := c.fetchPage(ctx, handle, cursor)
			if err != nil {
				yield(domain.RawPage{}, err)
				return
			}
			if !yield(domain.RawPage{Index: index, Markup: markup}, nil) {
				return
			}
			if next == "" || next == cursor {
				return
			}
			cursor = next
		}
		c.logWarn("Continuation cap reached", map[string]interface{}{
			"max_continuations": c.config.MaxContinuations,
			"handle_id":         handle.HandleID,
		})
	}
}

func (c *Client) fetchPage(ctx context.Context, handle domain.SearchHandle, cursor string) (string, string, error) {
	if c.deps.HTTPClient == nil {
		return "", "", apiError("search", 0, "HTTP client not configured")
	}

	pageURL, err := c.searchURL(handle.HandleID, handle.AssetLocator, cursor)
	if err != nil {
		return "", "", err
	}

	resp, err := c.deps.HTTPClient.Get(ctx, pageURL)
	if err != nil {
		return "", "", apiError("search", 0, err.Error())
	}
	body, readErr := readBody(resp)
	if !isSuccess(resp.StatusCode()) {
		return "", "", apiError("search", resp.StatusCode(), "non-success status")
	}
	if readErr != nil {
		return "", "", apiError("search", resp.StatusCode(), readErr.Error())
	}

	markup, next, err := decodePage(resp.Header("Content-Type"), body)
	if err != nil {
		c.logWarn("Continuation payload not decodable, using raw body", map[string]interface{}{
			"error": err.Error(),
		})
	}
	c.logDebug("Result page fetched", map[string]interface{}{
		"bytes":        len(body),
		"has_cursor":   next != "",
		"continuation": cursor != "",
	})
	return markup, next, nil
}
