package cefrlex

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTier is returned for labels outside A1–C2.
var ErrInvalidTier = errors.New("invalid CEFR tier")

// Tier is a CEFR proficiency level.
type Tier uint8

// TierUnknown marks an entry without a usable tier.
const (
	TierUnknown Tier = iota
	A1
	A2
	B1
	B2
	C1
	C2
)

// MaxRank is the rank of the highest tier.
const MaxRank = int(C2)

var tierLabels = [...]string{"", "A1", "A2", "B1", "B2", "C1", "C2"}

// ParseTier parses one of the labels A1, A2, B1, B2, C1, C2. Case and
// surrounding whitespace are ignored; anything else is an error.
func ParseTier(s string) (Tier, error) {
	label := strings.ToUpper(strings.TrimSpace(s))
	for i := A1; i <= C2; i++ {
		if tierLabels[i] == label {
			return i, nil
		}
	}
	return TierUnknown, fmt.Errorf("%w: %q", ErrInvalidTier, s)
}

// TierOfRank maps a rank 1–6 back to its tier.
func TierOfRank(rank int) (Tier, error) {
	if rank < int(A1) || rank > MaxRank {
		return TierUnknown, fmt.Errorf("%w: rank %d", ErrInvalidTier, rank)
	}
	return Tier(rank), nil
}

// Rank is 1 for A1 up to 6 for C2, and 0 for TierUnknown.
func (t Tier) Rank() int {
	if !t.IsValid() {
		return 0
	}
	return int(t)
}

// IsValid is false for TierUnknown and out-of-range values.
func (t Tier) IsValid() bool {
	return t >= A1 && t <= C2
}

func (t Tier) String() string {
	if !t.IsValid() {
		return "unknown"
	}
	return tierLabels[t]
}

// MarshalText renders a tier as its label; unknown tiers render empty.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return []byte{}, nil
	}
	return []byte(tierLabels[t]), nil
}

// UnmarshalText parses a tier label. An empty label yields TierUnknown.
func (t *Tier) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*t = TierUnknown
		return nil
	}
	tier, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = tier
	return nil
}

// tierMask is a bit set of tiers, bit rank-1 for each tier present.
type tierMask uint8

func (m tierMask) with(t Tier) tierMask {
	if !t.IsValid() {
		return m
	}
	return m | 1<<(t-1)
}

// atOrAbove reports whether m holds a tier of rank >= minRank.
func (m tierMask) atOrAbove(minRank int) bool {
	if minRank > MaxRank {
		return false
	}
	if minRank < 1 {
		minRank = 1
	}
	return m>>(minRank-1) != 0
}

// tiers lists the tiers in m in ascending order.
func (m tierMask) tiers() []Tier {
	var ts []Tier
	for t := A1; t <= C2; t++ {
		if m&(1<<(t-1)) != 0 {
			ts = append(ts, t)
		}
	}
	return ts
}
