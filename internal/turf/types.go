package turf

import "time"

// SportType is the closed set of sports the backend accepts for a listing.
type SportType string

const (
	SportFootball   SportType = "football"
	SportCricket    SportType = "cricket"
	SportBadminton  SportType = "badminton"
	SportTennis     SportType = "tennis"
	SportBasketball SportType = "basketball"
	SportVolleyball SportType = "volleyball"
	SportHockey     SportType = "hockey"
	SportFutsal     SportType = "futsal"
)

// Sports lists every selectable sport in display order.
func Sports() []SportType {
	return []SportType{
		SportFootball,
		SportCricket,
		SportBadminton,
		SportTennis,
		SportBasketball,
		SportVolleyball,
		SportHockey,
		SportFutsal,
	}
}

func (s SportType) Valid() bool {
	switch s {
	case SportFootball, SportCricket, SportBadminton, SportTennis,
		SportBasketball, SportVolleyball, SportHockey, SportFutsal:
		return true
	}
	return false
}

// Turf is the backend's venue record. This side reads one instance when an
// edit form opens and writes one on submit; listings are never enumerated or
// cached here. ImageURLs keeps the backend's order: index 0 is the primary
// image shown to players.
type Turf struct {
	ID                 int64     `json:"id"`
	OwnerID            int64     `json:"ownerId"`
	Name               string    `json:"name"`
	Phone              string    `json:"phone"`
	Location           string    `json:"location"`
	Type               SportType `json:"type"`
	PricePerSlot       string    `json:"pricePerSlot"`
	Description        string    `json:"description,omitempty"`
	OperatingStartTime string    `json:"operatingStartTime"`
	OperatingEndTime   string    `json:"operatingEndTime"`
	ImageURLs          []string  `json:"imageUrls,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// CreatePayload is the create request body. OwnerID comes from the session,
// never from user input.
type CreatePayload struct {
	Name               string    `json:"name"`
	Phone              string    `json:"phone"`
	Location           string    `json:"location"`
	Type               SportType `json:"type"`
	PricePerSlot       string    `json:"pricePerSlot"`
	Description        string    `json:"description,omitempty"`
	OperatingStartTime string    `json:"operatingStartTime"`
	OperatingEndTime   string    `json:"operatingEndTime"`
	ImageURLs          []string  `json:"imageUrls"`
	OwnerID            int64     `json:"ownerId"`
}

// UpdatePayload is the update request body; ownership never changes on
// update so it carries no owner.
type UpdatePayload struct {
	Name               string    `json:"name"`
	Phone              string    `json:"phone"`
	Location           string    `json:"location"`
	Type               SportType `json:"type"`
	PricePerSlot       string    `json:"pricePerSlot"`
	Description        string    `json:"description,omitempty"`
	OperatingStartTime string    `json:"operatingStartTime"`
	OperatingEndTime   string    `json:"operatingEndTime"`
	ImageURLs          []string  `json:"imageUrls"`
}
