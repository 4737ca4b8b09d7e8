package enums

import "fmt"

// HowHeard records where a shopper learned about the shop.
type HowHeard string

const (
	HowHeardSocialMedia   HowHeard = "social-media"
	HowHeardSearchEngine  HowHeard = "search-engine"
	HowHeardFriendFamily  HowHeard = "friend-family"
	HowHeardAdvertisement HowHeard = "advertisement"
	HowHeardOther         HowHeard = "other"
)

var validHowHeard = []HowHeard{
	HowHeardSocialMedia,
	HowHeardSearchEngine,
	HowHeardFriendFamily,
	HowHeardAdvertisement,
	HowHeardOther,
}

func (h HowHeard) String() string {
	return string(h)
}

func (h HowHeard) IsValid() bool {
	for _, candidate := range validHowHeard {
		if candidate == h {
			return true
		}
	}
	return false
}

func ParseHowHeard(value string) (HowHeard, error) {
	for _, candidate := range validHowHeard {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid how-heard value %q", value)
}

// Satisfaction is the 1..5 rating collected after an order.
type Satisfaction int

const (
	SatisfactionMin Satisfaction = 1
	SatisfactionMax Satisfaction = 5
)

func (s Satisfaction) IsValid() bool {
	return s >= SatisfactionMin && s <= SatisfactionMax
}
