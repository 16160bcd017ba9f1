package boc

import (
	"sort"
	"strings"

	"github.com/robotomize/valetfx/internal/strutil"
)

const pairSuffix = "/CAD"

// labels returns the group series labels ordered by series key, without the /CAD quote suffix
func (g groupDocument) labels() []string {
	keys := make([]string, 0, len(g.GroupDetails.GroupSeries))
	for k := range g.GroupDetails.GroupSeries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make([]string, 0, len(keys))
	for _, k := range keys {
		name := strutil.RemoveExtraSpaces(g.GroupDetails.GroupSeries[k].Label)
		name = strings.TrimSpace(strutil.RemoveAll(name, pairSuffix))
		if name == "" {
			continue
		}
		list = append(list, name)
	}

	return list
}
