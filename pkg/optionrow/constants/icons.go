package constants

// Icon glyphs for use with icon fonts (Material Design Icons).
const (
	Done = "\U000F012C" // Checkmark shown on selected rows
)

// DoneSVG is the checkmark used when no icon font is loaded. The fill is
// substituted with the requested color before rasterizing.
const DoneSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">` +
	`<path fill="%s" d="M9 16.17L4.83 12l-1.42 1.41L9 19 21 7l-1.41-1.41z"/></svg>`
