// ABOUTME: Image upload for the provider client
// ABOUTME: Turns the loosely typed upload reply into a search handle

package provider

import (
	"bytes"
	"context"
	"encoding/json"

	"snapfind-api/core/domain"
)

// uploadResponse is the loosely typed upload reply. Depending on the
// endpoint version the handle comes as cbir_id or as image_shard + image_id.
type uploadResponse struct {
	CbirID     string      `json:"cbir_id"`
	ImageID    string      `json:"image_id"`
	ImageShard interface{} `json:"image_shard"`
	URL        string      `json:"url"`
	Orig       string      `json:"orig"`
}

func (r uploadResponse) handle() domain.SearchHandle {
	id := r.CbirID
	if id == "" && r.ImageID != "" {
		if shard := stringField(r.ImageShard); shard != "" {
			id = shard + "/" + r.ImageID
		}
	}
	locator := r.URL
	if locator == "" {
		locator = r.Orig
	}
	return domain.SearchHandle{HandleID: id, AssetLocator: locator}
}

// Submit uploads image bytes and returns the provider handle.
// Any failure is logged and reported as ok == false.
func (c *Client) Submit(ctx context.Context, image []byte) (domain.SearchHandle, bool) {
	if c.deps.HTTPClient == nil {
		c.logWarn("Image upload skipped", map[string]interface{}{
			"error": "HTTP client not configured",
		})
		return domain.SearchHandle{}, false
	}

	resp, err := c.deps.HTTPClient.Post(ctx, c.config.UploadURL, detectImageType(image), bytes.NewReader(image))
	if err != nil {
		c.logWarn("Image upload failed", map[string]interface{}{
			"error": apiError("upload", 0, err.Error()).Error(),
		})
		return domain.SearchHandle{}, false
	}

	body, err := readBody(resp)
	if !isSuccess(resp.StatusCode()) {
		c.logWarn("Image upload rejected", map[string]interface{}{
			"error": apiError("upload", resp.StatusCode(), "non-success status").Error(),
		})
		return domain.SearchHandle{}, false
	}
	if err != nil {
		c.logWarn("Image upload response unreadable", map[string]interface{}{
			"error": err.Error(),
		})
		return domain.SearchHandle{}, false
	}

	var payload uploadResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logWarn("Image upload response is not JSON", map[string]interface{}{
			"error": err.Error(),
		})
		return domain.SearchHandle{}, false
	}

	handle := payload.handle()
	if handle.IsZero() {
		c.logWarn("Image upload response missing handle fields", map[string]interface{}{
			"has_id":      handle.HandleID != "",
			"has_locator": handle.AssetLocator != "",
		})
		return domain.SearchHandle{}, false
	}

	c.logDebug("Image uploaded", map[string]interface{}{
		"handle_id": handle.HandleID,
	})
	return handle, true
}
