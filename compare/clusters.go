package compare

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ClusterSet describes syllable clusters built around a list of bases. Every
// base is extended by the nukta and the sub-consonant, then combined with
// every vowel sign and every other sign. An empty string in VowelSigns or
// OtherSigns stands for the cluster without such a sign; empty lists are
// treated as {""}.
type ClusterSet struct {
	Bases        []string
	Nukta        string // appended to every base, if set
	SubConsonant string // consonant joined to every base, e.g. virama + ya
	RephFirst    bool   // SubConsonant precedes the base, as reph forms do
	VowelSigns   []string
	OtherSigns   []string
}

// Clusters returns the clusters of a set, base by base, without duplicates.
// The clusters are meant to be compared with Words.
func Clusters(cs ClusterSet) []string {
	vowels, others := orBare(cs.VowelSigns), orBare(cs.OtherSigns)
	seen := make(map[string]bool)
	var clusters []string
	for _, base := range cs.Bases {
		if base == "" {
			continue
		}
		core := base + cs.Nukta
		if cs.SubConsonant != "" {
			if cs.RephFirst {
				core = cs.SubConsonant + core
			} else {
				core += cs.SubConsonant
			}
		}
		for _, v := range vowels {
			for _, o := range others {
				c := core + v + o
				if !seen[c] {
					seen[c] = true
					clusters = append(clusters, c)
				}
			}
		}
	}
	tracer().Debugf("built %d clusters from %d bases", len(clusters), len(cs.Bases))
	return clusters
}

func orBare(signs []string) []string {
	if len(signs) == 0 {
		return []string{""}
	}
	return signs
}

// Names of entries of a cluster data file with a fixed meaning. All other
// entries are base groups or sub-consonants, listed by name in BaseNames and
// SubConsonantNames.
const (
	entryBaseNames     = "BaseNames"
	entrySubConsonants = "SubConsonantNames"
	entryNukta         = "Nukta"
	entryVowelSigns    = "Vowel Signs"
	entryOtherSigns    = "Other Signs"
	entryNumbers       = "Numbers"
	entryUsesLakh      = "UsesLakh"
)

// Sub-consonants written before the base.
var rephNames = []string{"Reph", "Repha", "Repaya", "Ra Initial"}

// ClusterData is the cluster inventory of a script: groups of bases like
// "Consonants" or "Vowels", sub-consonant forms, the nukta, vowel signs,
// other signs, and the script's digits.
type ClusterData struct {
	entries map[string][]string
}

// ParseClusterData reads a cluster data file. It is a JSON object mapping
// entry names to lists of strings, e.g.
//
//	{ "BaseNames": ["Consonants"], "Consonants": ["क", "ख"], "Vowel Signs": ["ा", "ि"] }
func ParseClusterData(data []byte) (*ClusterData, error) {
	cd := &ClusterData{}
	if err := json.Unmarshal(data, &cd.entries); err != nil {
		return nil, fmt.Errorf("cluster data: %w", err)
	}
	if _, ok := cd.entries[entryBaseNames]; !ok {
		return nil, fmt.Errorf("cluster data: no entry %q", entryBaseNames)
	}
	return cd, nil
}

// BaseNames returns the names of the base groups.
func (cd *ClusterData) BaseNames() []string {
	return slices.Clone(cd.entries[entryBaseNames])
}

// SubConsonantNames returns the names of the sub-consonant forms.
func (cd *ClusterData) SubConsonantNames() []string {
	return slices.Clone(cd.entries[entrySubConsonants])
}

// Digits returns the script's digits 0 to 9, or nil if the data has none.
func (cd *ClusterData) Digits() []rune {
	nums := cd.entries[entryNumbers]
	if len(nums) != 10 {
		return nil
	}
	digits := make([]rune, 0, 10)
	for _, n := range nums {
		r := []rune(n)
		if len(r) != 1 {
			return nil
		}
		digits = append(digits, r[0])
	}
	return digits
}

// UsesLakh tells if the script groups numbers in lakhs. This is the default
// if the data does not say otherwise.
func (cd *ClusterData) UsesLakh() bool {
	v := cd.entries[entryUsesLakh]
	return len(v) == 0 || v[0] == "true" || v[0] == "True"
}

// Set builds the cluster set for a base group. subConsonant names a
// sub-consonant form, "" or "None" select none. With nukta set, the script's
// nukta is added to every base. Every vowel sign and every other sign of the
// data is used, each also left out once.
func (cd *ClusterData) Set(baseGroup, subConsonant string, nukta bool) (ClusterSet, error) {
	if !slices.Contains(cd.entries[entryBaseNames], baseGroup) {
		return ClusterSet{}, fmt.Errorf("no base group %q, have %v", baseGroup, cd.BaseNames())
	}
	cs := ClusterSet{
		Bases:      cd.entries[baseGroup],
		VowelSigns: append([]string{""}, cd.entries[entryVowelSigns]...),
		OtherSigns: append([]string{""}, cd.entries[entryOtherSigns]...),
	}
	if nukta {
		n := cd.entries[entryNukta]
		if len(n) == 0 || n[0] == "" {
			return ClusterSet{}, errors.New("script has no nukta")
		}
		cs.Nukta = n[0]
	}
	if subConsonant != "" && subConsonant != "None" {
		forms := cd.entries[subConsonant]
		if !slices.Contains(cd.entries[entrySubConsonants], subConsonant) || len(forms) == 0 {
			return ClusterSet{}, fmt.Errorf("no sub-consonant %q, have %v", subConsonant, cd.SubConsonantNames())
		}
		cs.SubConsonant = forms[0]
		cs.RephFirst = slices.Contains(rephNames, subConsonant)
	}
	return cs, nil
}
