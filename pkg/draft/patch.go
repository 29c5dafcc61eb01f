package draft

import "tableflip.dev/sojourn/pkg/trip"

// Patch is a partial item update; nil fields leave the current value alone.
type Patch struct {
	Name        *string
	Start       *trip.Clock
	End         *trip.Clock
	Origin      *string
	Destination *string
	Mode        *trip.Mode
	Cost        *float64
	Currency    *string

	Description *string
	Rating      *int
	Tags        []string
	Gate        *string
	Platform    *string
	LocalName   *string
	ImageRef    *string
}

func (p Patch) apply(it *trip.Item) {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Start != nil {
		it.Start = *p.Start
	}
	if p.End != nil {
		it.End = *p.End
	}
	if p.Origin != nil {
		it.Origin = *p.Origin
	}
	if p.Destination != nil {
		it.Destination = *p.Destination
	}
	if p.Mode != nil {
		it.Mode = *p.Mode
	}
	if p.Cost != nil && *p.Cost >= 0 {
		it.Cost = *p.Cost
	}
	if p.Currency != nil {
		it.Currency = *p.Currency
	}
	if p.Description != nil {
		it.Details.Description = *p.Description
	}
	if p.Rating != nil && *p.Rating >= 0 && *p.Rating <= 5 {
		it.Details.Rating = *p.Rating
	}
	if p.Tags != nil {
		it.Details.Tags = append([]string(nil), p.Tags...)
	}
	if p.Gate != nil {
		it.Details.Gate = *p.Gate
	}
	if p.Platform != nil {
		it.Details.Platform = *p.Platform
	}
	if p.LocalName != nil {
		it.Details.LocalName = *p.LocalName
	}
	if p.ImageRef != nil {
		it.Details.ImageRef = *p.ImageRef
	}
}
