package card

// Photo is one print in the memories gallery. An empty Path draws a
// placeholder print with just the caption.
type Photo struct {
	Path    string
	Caption string
	Tilt    float64 // degrees, positive is clockwise
}

func DefaultPhotos() []Photo {
	return []Photo{
		{Caption: "The day we met", Tilt: -3},
		{Caption: "Our beach trip", Tilt: 2},
		{Caption: "Your smile", Tilt: -1},
		{Caption: "First date", Tilt: 3},
		{Caption: "Walk in the park", Tilt: -2},
		{Caption: "That gift", Tilt: 1},
		{Caption: "Holding hands", Tilt: -3},
		{Caption: "Last birthday", Tilt: 2},
		{Caption: "Laughing together", Tilt: -1},
	}
}

func DefaultReasons() []string {
	return []string{
		"You make me smile every day",
		"You are always there for me",
		"Your kindness and warm heart",
		"Being with you feels like home",
	}
}

// ShowPhoto opens photo i in the lightbox. It returns false unless the card
// is opened and i names one of its photos.
func (c *Card) ShowPhoto(i int) bool {
	if c.stage != Opened || i < 0 || i >= c.photos {
		return false
	}
	c.shown = i
	c.showing = true
	return true
}

// HidePhoto closes the lightbox and reports whether it was open.
func (c *Card) HidePhoto() bool {
	was := c.showing
	c.showing = false
	return was
}

// ShownPhoto returns the index of the photo in the lightbox, if any.
func (c *Card) ShownPhoto() (int, bool) { return c.shown, c.showing }
