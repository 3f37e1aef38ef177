package hwlight

// Hardware brightness ranges. The notification and button LEDs take an
// 8-bit value, the LCD backlight a 12-bit one.
const (
	maxLEDBrightness       = 255
	maxBacklightBrightness = 4095
)

// brightness extracts the perceived brightness of an AARRGGBB color.
// RGB channels are pre-scaled by alpha when alpha is not 0xFF, then
// collapsed to a luma value with fixed-point weights (77, 150, 29)/256.
func brightness(color uint32) uint32 {
	alpha := (color >> 24) & 0xff
	red := (color >> 16) & 0xff
	green := (color >> 8) & 0xff
	blue := color & 0xff

	if alpha != 0xff {
		red = red * alpha / 0xff
		green = green * alpha / 0xff
		blue = blue * alpha / 0xff
	}

	return (77*red + 150*green + 29*blue) >> 8
}

// scaleBrightness maps an 8-bit brightness into the target hardware range.
// Integer truncation throughout, matching the PWM driver contract.
func scaleBrightness(b, maxBrightness uint32) uint32 {
	return b * maxBrightness / 0xff
}

// scaledBrightness computes the hardware brightness for a state.
func scaledBrightness(s State, maxBrightness uint32) uint32 {
	return scaleBrightness(brightness(s.Color), maxBrightness)
}
