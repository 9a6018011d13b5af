// Package theme loads widget skin descriptions from theme.toml files: title
// bar metrics, border insets and colors. The toolkit core only consumes the
// resulting fields, never the file format.
package theme

import (
	"encoding/hex"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "theme")

// FileName is the description file expected inside a theme directory.
const FileName = "theme.toml"

// Side selects which end of the title bar holds the close button.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (s *Side) UnmarshalText(text []byte) error {
	switch v := Side(strings.ToLower(string(text))); v {
	case SideLeft, SideRight:
		*s = v
		return nil
	default:
		return errors.Errorf("invalid side %q (want left or right)", text)
	}
}

// Color is a color.RGBA decoded from "#rrggbb" or "#rrggbbaa" hex notation.
type Color struct {
	color.RGBA
}

func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "#")
	if len(s) != 6 && len(s) != 8 {
		return errors.Errorf("invalid color %q (want #rrggbb or #rrggbbaa)", text)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrapf(err, "invalid color %q", text)
	}
	c.R, c.G, c.B, c.A = raw[0], raw[1], raw[2], 0xff
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return nil
}

// Insets are the border thicknesses around a window's client area.
type Insets struct {
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
}

// Theme is a loaded skin description. Fields missing from the file keep the
// Default values.
type Theme struct {
	TitleBarHeight float64 `toml:"titlebar_height"`
	TitleSide      Side    `toml:"title_side"`
	DistanceToSide float64 `toml:"distance_to_side"`
	SplitImage     bool    `toml:"split_image"`
	Borders        Insets  `toml:"borders"`
	Background     Color   `toml:"background"`
	Border         Color   `toml:"border"`
	TitleBar       Color   `toml:"titlebar"`
}

// Default returns the built-in skin.
func Default() *Theme {
	return &Theme{
		TitleBarHeight: 20,
		TitleSide:      SideRight,
		DistanceToSide: 5,
		Borders:        Insets{Left: 1, Top: 1, Right: 1, Bottom: 1},
		Background:     Color{color.RGBA{0xe6, 0xe6, 0xe6, 0xff}},
		Border:         Color{color.RGBA{0x00, 0x00, 0x00, 0xff}},
		TitleBar:       Color{color.RGBA{0x3c, 0x3c, 0x3c, 0xff}},
	}
}

// Load reads dir/theme.toml on top of the defaults. It fails when the
// directory path is empty, the file cannot be read or decoded, or the
// description asks for an unsupported feature.
func Load(dir string) (*Theme, error) {
	if dir == "" {
		return nil, errors.New("empty theme directory")
	}
	th := Default()
	path := filepath.Join(dir, FileName)
	if _, err := toml.DecodeFile(path, th); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if err := th.validate(); err != nil {
		return nil, errors.Wrapf(err, "validate %s", path)
	}
	logger.WithField("dir", dir).Debug("theme loaded")
	return th, nil
}

func (t *Theme) validate() error {
	if t.SplitImage {
		return errors.New("split title bar images are not supported")
	}
	if t.TitleBarHeight < 0 {
		return errors.Errorf("negative titlebar_height %v", t.TitleBarHeight)
	}
	if t.DistanceToSide < 0 {
		return errors.Errorf("negative distance_to_side %v", t.DistanceToSide)
	}
	return nil
}
