package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ListingStatus represents the visibility state of a marketplace listing
type ListingStatus int

const (
	ListingStatusActive    ListingStatus = 0
	ListingStatusSold      ListingStatus = 1
	ListingStatusWithdrawn ListingStatus = 2
)

func (s ListingStatus) String() string {
	names := [...]string{"Active", "Sold", "Withdrawn"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Active"
	}
	return names[s]
}

func (s ListingStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ListingStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ListingStatus(i)
		return nil
	}
	switch str {
	case "Active":
		*s = ListingStatusActive
	case "Sold":
		*s = ListingStatusSold
	case "Withdrawn":
		*s = ListingStatusWithdrawn
	}
	return nil
}

func (s ListingStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ListingStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ListingStatusActive
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ListingStatus(v)
	case int:
		*s = ListingStatus(v)
	}
	return nil
}
