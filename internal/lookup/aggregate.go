package lookup

import (
	"github.com/handiism/define/internal/model"
)

// Aggregate groups records by headword and attaches pron to every group.
//
// Groups appear in the order their headword was first seen and records keep
// their input order, so the same input always gives the same Groups. pron
// may be nil.
func Aggregate(records []model.LookupRecord, pron *model.Pronunciation) *model.Groups {
	groups := model.NewGroups()
	for _, rec := range records {
		groups.Add(rec)
	}
	if pron != nil {
		groups.SetPronunciation(pron)
	}
	return groups
}
