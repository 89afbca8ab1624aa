package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartType is the manufacturing category of a work item. Each part type
// carries its own catalog of products and job rates.
type PartType string

const (
	PartTypeSleeve PartType = "sleeve"
	PartTypeRod    PartType = "rod"
	PartTypePin    PartType = "pin"
)

func (p PartType) Valid() bool {
	switch p {
	case PartTypeSleeve, PartTypeRod, PartTypePin:
		return true
	}
	return false
}

// Product is a catalog item. Sleeve products are identified by code,
// rod and pin products by part name; Key holds whichever applies.
// Rate is the part-level rate used when a part type has no operation
// taxonomy for the entry.
type Product struct {
	ID        string
	PartType  PartType
	Key       string
	Name      string
	Rate      decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// JobTypeRate maps one (partType, jobName) operation to a rate per okay
// part. Work logs reference it by lookup at report time, not by stored
// foreign key, so rate edits apply to future report runs.
type JobTypeRate struct {
	ID        string
	PartType  PartType
	JobName   string
	Rate      decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
