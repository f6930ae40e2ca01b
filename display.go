package holdings

import (
	"fmt"
	"strings"
)

// DisplayMode selects the currency holdings are displayed in.
type DisplayMode int

const (
	// Unified displays every figure converted into one target currency.
	Unified DisplayMode = iota
	// Native displays each holding in its own purchase currency.
	Native
)

func (m DisplayMode) String() string {
	switch m {
	case Unified:
		return "unified"
	case Native:
		return "native"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
}

// ParseDisplayMode parses a mode name. "original" and "converted" are accepted
// as aliases of "native" and "unified".
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unified", "converted":
		return Unified, nil
	case "native", "original":
		return Native, nil
	default:
		return Unified, fmt.Errorf("invalid display mode %q: must be 'native' or 'unified'", s)
	}
}

func (m DisplayMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *DisplayMode) UnmarshalText(text []byte) error {
	v, err := ParseDisplayMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
