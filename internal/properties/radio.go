package properties

import (
	"fmt"
	"sort"

	"github.com/nerrad567/gray-logic-insteon/internal/insteon"
)

// DecodeGroups reconstructs the radio-button groups encoded in a device's
// per-button on-masks. Buttons are scanned in ascending ID order; a
// button already claimed by an earlier group is skipped. A non-zero
// effective on-mask starts a group anchored at that button, with every
// other set bit contributing its button ID. Groups of one (a mask that
// references no other position) are not real groups and are discarded.
//
// Each returned group lists the anchor first, then the remaining members
// in ascending ID order.
func DecodeGroups(d Device) [][]int {
	var groups [][]int
	assigned := make(map[int]bool)

	for _, b := range d.Buttons() {
		if assigned[b.ID] {
			continue
		}
		p := d.Property(insteon.ButtonPropertyName(insteon.PropOnMask, b.ID))
		if p == nil {
			continue
		}
		mask, _ := resolveMask(p)
		if mask == 0 {
			continue
		}

		group := []int{b.ID}
		for bit := 0; bit < 8; bit++ {
			if bit == b.ID-1 {
				continue
			}
			if mask&(1<<bit) != 0 {
				group = append(group, bit+1)
			}
		}
		if len(group) < 2 {
			continue
		}

		groups = append(groups, group)
		for _, id := range group {
			assigned[id] = true
		}
	}
	return groups
}

// radioButtonRows builds the UI rows and schema for the device's radio
// groups. Each group's options are its own members plus every ungrouped
// button, so a button can be pulled out of "ungrouped" into this group
// but not moved between two existing groups directly. When two or more
// buttons remain ungrouped, one extra empty group row is emitted so the
// UI can create a brand-new group.
func radioButtonRows(d Device) ([]Row, Schema) {
	groups := DecodeGroups(d)
	rows := []Row{}
	schema := Schema{}

	inGroup := make(map[int]bool)
	for _, g := range groups {
		for _, id := range g {
			inGroup[id] = true
		}
	}
	var remaining []int
	for _, b := range d.Buttons() {
		if !inGroup[b.ID] {
			remaining = append(remaining, b.ID)
		}
	}

	for i, g := range groups {
		name := fmt.Sprintf("%s%d", RadioButtonGroupPrefix, i)

		anchor := g[0]
		onMask := d.Property(insteon.ButtonPropertyName(insteon.PropOnMask, anchor))
		offMask := d.Property(insteon.ButtonPropertyName(insteon.PropOffMask, anchor))
		modified := (onMask != nil && onMask.IsDirty()) || (offMask != nil && offMask.IsDirty())

		selectable := make([]int, 0, len(g)+len(remaining))
		selectable = append(selectable, g...)
		selectable = append(selectable, remaining...)
		sort.Ints(selectable)

		rows = append(rows, Row{
			Name:     name,
			Value:    buttonNames(d, g),
			Modified: modified,
		})
		schema[name] = SchemaEntry{
			Name:    name,
			Type:    TypeMultiSelect,
			Options: nameOptions(d, selectable),
		}
	}

	if len(remaining) > 1 {
		name := fmt.Sprintf("%s%d", RadioButtonGroupPrefix, len(groups))
		rows = append(rows, Row{Name: name, Value: []string{}, Modified: false})
		schema[name] = SchemaEntry{
			Name:    name,
			Type:    TypeMultiSelect,
			Options: nameOptions(d, remaining),
		}
	}

	return rows, schema
}

// buttonNames maps button IDs to display names, dropping IDs the device
// has no button for (a mask bit can reference an absent position).
func buttonNames(d Device, ids []int) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		for _, b := range d.Buttons() {
			if b.ID == id {
				names = append(names, b.Name)
				break
			}
		}
	}
	return names
}

// nameOptions renders button IDs as schema option values.
func nameOptions(d Device, ids []int) []any {
	names := buttonNames(d, ids)
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}
