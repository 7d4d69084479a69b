package properties

import (
	"strings"

	"github.com/nerrad567/gray-logic-insteon/internal/insteon"
)

// Enumerate produces the UI rows and editor schema for every writable
// property on a device. Operating flags come first in collection order,
// then extended properties. Raw mask properties never surface directly;
// the first one encountered is replaced by the derived toggle rows
// followed by the radio-group rows, and the rest are dropped. Ramp rate
// surfaces in seconds with a select editor over the standard rate table.
func Enumerate(d Device) ([]Row, Schema) {
	rows := []Row{}
	schema := Schema{}

	for _, name := range d.FlagNames() {
		p := d.Flag(name)
		if p == nil || p.IsReadOnly() {
			continue
		}
		row, entry := genericRow(p)
		rows = append(rows, row)
		schema[name] = entry
	}

	// Classify extended properties up front, then splice the derived mask
	// cluster in where the first mask property sat, so iteration order and
	// row production stay independent.
	var plain []Property
	maskIndex := -1
	for i, name := range d.PropertyNames() {
		p := d.Property(name)
		if p == nil || p.IsReadOnly() {
			continue
		}
		if strings.Contains(name, "mask") {
			if maskIndex < 0 {
				maskIndex = i
			}
			continue
		}
		plain = append(plain, p)
	}

	spliced := false
	for i, name := range d.PropertyNames() {
		if maskIndex >= 0 && i >= maskIndex && !spliced {
			spliced = true
			tRows, tSchema := toggleRows(d)
			rows = append(rows, tRows...)
			mergeSchema(schema, tSchema)
			rRows, rSchema := radioButtonRows(d)
			rows = append(rows, rRows...)
			mergeSchema(schema, rSchema)
		}
		p := find(plain, name)
		if p == nil {
			continue
		}
		if name == insteon.PropRampRate {
			rows = append(rows, rampRateRow(p))
			schema[name] = rampRateSchema()
			continue
		}
		row, entry := genericRow(p)
		rows = append(rows, row)
		schema[name] = entry
	}

	return rows, schema
}

// genericRow renders a bool or byte property with its matching editor.
func genericRow(p Property) (Row, SchemaEntry) {
	v, dirty := Resolve(p)
	row := Row{Name: p.Name(), Value: v, Modified: dirty}
	if _, ok := v.(bool); ok {
		return row, boolSchema(p.Name())
	}
	return row, byteSchema(p.Name())
}

// rampRateRow renders the ramp rate in seconds rather than its wire code.
func rampRateRow(p Property) Row {
	code, dirty := resolveMask(p)
	return Row{
		Name:     p.Name(),
		Value:    insteon.RampRateToSeconds(code),
		Modified: dirty,
	}
}

// rampRateSchema is a select over the distinct standard rates, ascending.
func rampRateSchema() SchemaEntry {
	seconds := insteon.RampRateOptions()
	options := make([]any, len(seconds))
	for i, s := range seconds {
		options[i] = s
	}
	return SchemaEntry{
		Name:     insteon.PropRampRate,
		Required: true,
		Type:     TypeSelect,
		Options:  options,
	}
}

func mergeSchema(dst, src Schema) {
	for k, v := range src {
		dst[k] = v
	}
}

func find(props []Property, name string) Property {
	for _, p := range props {
		if p.Name() == name {
			return p
		}
	}
	return nil
}
