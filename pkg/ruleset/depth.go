package ruleset

import (
	"strings"

	"github.com/walteh/layoutfix/pkg/config"
)

// Depth returns how many directories below the route group prefix path's file sits.
// app/(dashboard)/account/page.tsx with a route group depth of 2 has depth 1.
func Depth(path string, routeGroupDepth int) int {
	return strings.Count(strings.ReplaceAll(path, "\\", "/"), "/") - routeGroupDepth
}

// ImportTable maps a depth to the relative import path of the spacer module
type ImportTable map[int]string

// NewImportTable builds the table for depths 1 through the configured max depth
func NewImportTable(spacer *config.Spacer) ImportTable {
	table := make(ImportTable, spacer.MaxDepth)
	for depth := 1; depth <= spacer.MaxDepth; depth++ {
		table[depth] = strings.Repeat("../", depth+spacer.GroupDepth()) + spacer.Module
	}
	return table
}

// Lookup returns the import path for depth. Depths outside the table fall
// through to the shallowest entry and ok is false.
func (t ImportTable) Lookup(depth int) (path string, ok bool) {
	if p, found := t[depth]; found {
		return p, true
	}
	return t[1], false
}
