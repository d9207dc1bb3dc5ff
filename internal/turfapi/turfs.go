package turfapi

import (
	"context"
	"net/http"
	"strconv"

	"turfdesk/internal/turf"
)

// Get fetches one listing, typically to seed the edit form.
func (c *Client) Get(ctx context.Context, id int64) (*turf.Turf, error) {
	var out turf.Turf
	if err := c.doJSON(ctx, http.MethodGet, turfPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a brand-new listing owned by payload.OwnerID.
func (c *Client) Create(ctx context.Context, payload turf.CreatePayload) (*turf.Turf, error) {
	var out turf.Turf
	if err := c.doJSON(ctx, http.MethodPost, "/api/turfs", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update overwrites the listing's editable fields. Ownership never moves,
// so the payload carries no owner.
func (c *Client) Update(ctx context.Context, id int64, payload turf.UpdatePayload) (*turf.Turf, error) {
	var out turf.Turf
	if err := c.doJSON(ctx, http.MethodPut, turfPath(id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func turfPath(id int64) string {
	return "/api/turfs/" + strconv.FormatInt(id, 10)
}
