// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ColorTheme is the closed set of named color themes used by therapies and
// testimonials. Values outside the set fall back to ThemeRose.
type ColorTheme string

const (
	ThemeRose  ColorTheme = "rose"
	ThemeAmber ColorTheme = "amber"
	ThemeGreen ColorTheme = "green"
	ThemeSlate ColorTheme = "slate"
)

// ColorThemes lists every valid theme, in display order.
var ColorThemes = []ColorTheme{ThemeRose, ThemeAmber, ThemeGreen, ThemeSlate}

// ParseColorTheme maps a raw string to a known theme. Unrecognized values
// return ThemeRose so rendering stays deterministic.
func ParseColorTheme(s string) ColorTheme {
	for _, t := range ColorThemes {
		if s == string(t) {
			return t
		}
	}
	return ThemeRose
}
