package enums

// ItemKind says which listing a match was found in.
type ItemKind string

const (
	ItemKindSubmission ItemKind = "submission"
	ItemKindComment    ItemKind = "comment"
)
