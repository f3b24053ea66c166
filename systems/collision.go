package systems

import (
	"sort"

	"github.com/automoto/kokaton/components"
	"github.com/automoto/kokaton/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Collide finds every live entity tagged tag whose rectangle strictly
// overlaps obj and hands it to resolve, oldest first. resolve returns false
// to stop the scan, typically after destroying obj.
func Collide(obj *resolv.Object, tag string, resolve func(other *donburi.Entry) bool) {
	for _, e := range Overlapping(obj, tag) {
		if !e.Valid() {
			continue
		}
		if !resolve(e) {
			return
		}
	}
}

// Overlapping returns the entities tagged tag that strictly overlap obj,
// ordered by when they were added to the space.
func Overlapping(obj *resolv.Object, tag string) []*donburi.Entry {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var hits []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		if !gamemath.Overlaps(obj, o) {
			continue
		}
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		hits = append(hits, e)
	}
	sort.Slice(hits, func(i, j int) bool {
		return components.Object.Get(hits[i]).Seq < components.Object.Get(hits[j]).Seq
	})
	return hits
}
