package domain

type Granularity string

const (
	GranularityYear  Granularity = "year"
	GranularityMonth Granularity = "month"
	GranularityWeek  Granularity = "week"
	GranularityDay   Granularity = "day"
)

// ValidGranularities is the canonical set of accepted scale granularities.
var ValidGranularities = map[string]bool{
	"year": true, "month": true, "week": true, "day": true,
}

type Placement string

const (
	PlacementInside  Placement = "inside"
	PlacementToLeft  Placement = "to_left"
	PlacementToRight Placement = "to_right"
	PlacementAbove   Placement = "above"
	PlacementBelow   Placement = "below"
)

// ValidPlacements is the canonical set of accepted label placements.
var ValidPlacements = map[string]bool{
	"inside": true, "to_left": true, "to_right": true, "above": true, "below": true,
}

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCentre Alignment = "centre"
	AlignRight  Alignment = "right"
)

// ValidAlignments is the canonical set of accepted label alignments.
var ValidAlignments = map[string]bool{
	"left": true, "centre": true, "right": true,
}
