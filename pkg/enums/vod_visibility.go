package enums

import "fmt"

// VodVisibility controls which audience may see a catalog entry.
type VodVisibility string

const (
	VodVisibilitySubscribers VodVisibility = "subscribers"
	VodVisibilityAll         VodVisibility = "all"
)

var validVodVisibilities = []VodVisibility{
	VodVisibilitySubscribers,
	VodVisibilityAll,
}

// DefaultVodVisibility is applied when an upload omits the visibility tier.
const DefaultVodVisibility = VodVisibilitySubscribers

// String implements fmt.Stringer.
func (v VodVisibility) String() string {
	return string(v)
}

// IsValid reports whether the value is a known VodVisibility.
func (v VodVisibility) IsValid() bool {
	for _, candidate := range validVodVisibilities {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVodVisibility converts raw input into a VodVisibility.
func ParseVodVisibility(value string) (VodVisibility, error) {
	for _, candidate := range validVodVisibilities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid vod visibility %q", value)
}
