package sentiment

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mileserickson/vader-sentiment-demo/vader"
)

// Color is a red, green, blue triple with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// SentimentColor maps the negative, positive and neutral components to
// the red, green and blue channels, as they are.
func SentimentColor(scores vader.Scores) Color {
	return Color{
		R: scores.Negative,
		G: scores.Positive,
		B: scores.Neutral,
	}
}

// Valid reports whether every channel is within [0, 1].
func (c Color) Valid() bool {
	for _, v := range [...]float64{c.R, c.G, c.B} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}

	return true
}

// RGBA implements color.Color. Channels outside [0, 1] are clamped.
func (c Color) RGBA() (r, g, b, a uint32) {
	return channel16(c.R), channel16(c.G), channel16(c.B), 0xffff
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel16(c.R)>>8, channel16(c.G)>>8, channel16(c.B)>>8)
}

// MarshalJSON encodes the color as an [r, g, b] array.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{c.R, c.G, c.B})
}

// UnmarshalJSON decodes an [r, g, b] array.
func (c *Color) UnmarshalJSON(data []byte) error {
	var rgb [3]float64
	if err := json.Unmarshal(data, &rgb); err != nil {
		return err
	}
	c.R, c.G, c.B = rgb[0], rgb[1], rgb[2]

	return nil
}

func channel16(v float64) uint32 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}

	return uint32(math.Round(v * 0xffff))
}
