package model

// GetID implementations let generic collection helpers address records by id.

func (p Product) GetID() string      { return p.ID }
func (c Category) GetID() string     { return c.ID }
func (b Brand) GetID() string        { return b.ID }
func (h HeroSlide) GetID() string    { return h.ID }
func (a Ad) GetID() string           { return a.ID }
func (o SpecialOffer) GetID() string { return o.ID }
func (o Order) GetID() string        { return o.ID }
func (h HelpSection) GetID() string  { return h.ID }
