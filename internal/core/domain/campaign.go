package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCampaign is returned for campaigns that cannot be judged.
var ErrInvalidCampaign = errors.New("invalid campaign")

// Campaign represents an advertising campaign together with its daily
// performance history. Records are unique per date; ordering is not
// guaranteed.
type Campaign struct {
	Key          string
	DisplayName  string
	MediaChannel string
	Records      []DailyRecord
}

// Validate checks the campaign identity and every record.
func (c Campaign) Validate() error {
	if c.Key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidCampaign)
	}
	for _, r := range c.Records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("campaign %s: %w", c.Key, err)
		}
	}
	return nil
}
