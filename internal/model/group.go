package model

// WordGroup holds every record that shares one headword.
type WordGroup struct {
	// Headword is the word all Records define.
	Headword string

	// Pronunciation is shared by every group of a lookup; nil when absent.
	Pronunciation *Pronunciation

	// Records are in the order the service returned them.
	Records []LookupRecord
}

// Groups is an insertion-ordered mapping from headword to WordGroup.
//
// Iteration order is the order in which each headword was first added,
// so rendering the same lookup twice always produces the same output.
type Groups struct {
	groups []*WordGroup
	index  map[string]int
}

// NewGroups creates an empty Groups.
func NewGroups() *Groups {
	return &Groups{index: make(map[string]int)}
}

// Add appends rec to the group for its headword, creating the group on
// first sight. Headwords are compared with exact string equality.
func (g *Groups) Add(rec LookupRecord) {
	i, ok := g.index[rec.Headword]
	if !ok {
		i = len(g.groups)
		g.index[rec.Headword] = i
		g.groups = append(g.groups, &WordGroup{Headword: rec.Headword})
	}
	g.groups[i].Records = append(g.groups[i].Records, rec)
}

// SetPronunciation attaches p to every group.
func (g *Groups) SetPronunciation(p *Pronunciation) {
	for _, wg := range g.groups {
		wg.Pronunciation = p
	}
}

// Len returns the number of distinct headwords.
func (g *Groups) Len() int {
	return len(g.groups)
}

// Headwords returns the headwords in first-seen order.
func (g *Groups) Headwords() []string {
	out := make([]string, len(g.groups))
	for i, wg := range g.groups {
		out[i] = wg.Headword
	}
	return out
}

// All returns copies of every group in first-seen order.
func (g *Groups) All() []WordGroup {
	out := make([]WordGroup, len(g.groups))
	for i, wg := range g.groups {
		out[i] = wg.clone()
	}
	return out
}

func (wg *WordGroup) clone() WordGroup {
	records := make([]LookupRecord, len(wg.Records))
	copy(records, wg.Records)
	return WordGroup{
		Headword:      wg.Headword,
		Pronunciation: wg.Pronunciation,
		Records:       records,
	}
}
