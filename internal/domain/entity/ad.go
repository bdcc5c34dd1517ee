package entity

// AdPlacements maps a page position to the raw HTML injected into that slot.
// The well-known positions are listed below, but any key is accepted; public
// pages simply render whatever slots exist.
type AdPlacements map[string]string

const (
	AdPositionHeader  = "header"
	AdPositionHero    = "hero"
	AdPositionSidebar = "sidebar"
	AdPositionFooter  = "footer"
)
