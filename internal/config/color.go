package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %s: %w", value.Value, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	c.NRGBA = color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}

func (c YAMLColor) MarshalYAML() (interface{}, error) {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}
