package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/define/internal/model"
)

func TestAggregate(t *testing.T) {
	records := []model.LookupRecord{
		{Headword: "run", Gloss: "1"},
		{Headword: "Run", Gloss: "2"},
		{Headword: "run", Gloss: "3"},
		{Headword: "ran", Gloss: "4"},
	}
	pron := &model.Pronunciation{Raw: "(rŭn)"}

	groups := Aggregate(records, pron)

	assert.Equal(t, []string{"run", "Run", "ran"}, groups.Headwords())
	all := groups.All()
	require.Len(t, all, 3)
	assert.Equal(t, []model.LookupRecord{records[0], records[2]}, all[0].Records)

	for _, g := range all {
		assert.Same(t, pron, g.Pronunciation)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	records := []model.LookupRecord{
		{Headword: "b", Gloss: "1"},
		{Headword: "a", Gloss: "2"},
		{Headword: "b", Gloss: "3"},
	}

	first := Aggregate(records, nil)
	second := Aggregate(records, nil)

	assert.Equal(t, first.All(), second.All())
	assert.Equal(t, []string{"b", "a"}, first.Headwords())
}

func TestAggregate_Empty(t *testing.T) {
	groups := Aggregate(nil, &model.Pronunciation{Raw: "x"})
	assert.Zero(t, groups.Len())
	assert.Empty(t, groups.All())
}

func TestAggregate_EveryRecordInExactlyOneGroup(t *testing.T) {
	records := []model.LookupRecord{
		{Headword: "x", Gloss: "1"},
		{Headword: "y", Gloss: "2"},
		{Headword: "x", Gloss: "3"},
		{Headword: "z", Gloss: "4"},
		{Headword: "y", Gloss: "5"},
	}

	total := 0
	for _, g := range Aggregate(records, nil).All() {
		for _, r := range g.Records {
			assert.Equal(t, g.Headword, r.Headword)
		}
		total += len(g.Records)
	}
	assert.Equal(t, len(records), total)
}
