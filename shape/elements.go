// SPDX-License-Identifier: MIT
// Package: diagramkit/shape
//
// elements.go - per-element drawing defaults (CPK colours, pixel radii) and
// the periodic-table facts element tiles print.

package shape

import "strings"

// ElementInfo is the drawing default for one chemical element.
type ElementInfo struct {
	Symbol   string
	Name     string
	Number   int
	Mass     float64 // standard atomic weight
	Category string
	Color    string  // CPK fill
	Radius   float64 // pixels at scale 1
}

// Generic is used for symbols missing from the table.
var Generic = ElementInfo{Symbol: "?", Name: "unknown", Category: "unknown", Color: "#ff1493", Radius: 16}

var elements = map[string]ElementInfo{
	"H":  {"H", "Hydrogen", 1, 1.008, "nonmetal", "#ffffff", 12},
	"He": {"He", "Helium", 2, 4.0026, "noble gas", "#d9ffff", 12},
	"Li": {"Li", "Lithium", 3, 6.94, "alkali metal", "#cc80ff", 20},
	"Be": {"Be", "Beryllium", 4, 9.0122, "alkaline earth metal", "#c2ff00", 17},
	"B":  {"B", "Boron", 5, 10.81, "metalloid", "#ffb5b5", 17},
	"C":  {"C", "Carbon", 6, 12.011, "nonmetal", "#4b5563", 18},
	"N":  {"N", "Nitrogen", 7, 14.007, "nonmetal", "#3050f8", 17},
	"O":  {"O", "Oxygen", 8, 15.999, "nonmetal", "#ff0d0d", 17},
	"F":  {"F", "Fluorine", 9, 18.998, "halogen", "#90e050", 15},
	"Ne": {"Ne", "Neon", 10, 20.18, "noble gas", "#b3e3f5", 14},
	"Na": {"Na", "Sodium", 11, 22.99, "alkali metal", "#ab5cf2", 22},
	"Mg": {"Mg", "Magnesium", 12, 24.305, "alkaline earth metal", "#8aff00", 20},
	"Al": {"Al", "Aluminium", 13, 26.982, "post-transition metal", "#bfa6a6", 21},
	"Si": {"Si", "Silicon", 14, 28.085, "metalloid", "#f0c8a0", 21},
	"P":  {"P", "Phosphorus", 15, 30.974, "nonmetal", "#ff8000", 20},
	"S":  {"S", "Sulfur", 16, 32.06, "nonmetal", "#ffff30", 20},
	"Cl": {"Cl", "Chlorine", 17, 35.45, "halogen", "#1ff01f", 20},
	"Ar": {"Ar", "Argon", 18, 39.948, "noble gas", "#80d1e3", 16},
	"K":  {"K", "Potassium", 19, 39.098, "alkali metal", "#8f40d4", 24},
	"Ca": {"Ca", "Calcium", 20, 40.078, "alkaline earth metal", "#3dff00", 22},
	"Sc": {"Sc", "Scandium", 21, 44.956, "transition metal", "#e6e6e6", 21},
	"Ti": {"Ti", "Titanium", 22, 47.867, "transition metal", "#bfc2c7", 21},
	"V":  {"V", "Vanadium", 23, 50.942, "transition metal", "#a6a6ab", 20},
	"Cr": {"Cr", "Chromium", 24, 51.996, "transition metal", "#8a99c7", 20},
	"Mn": {"Mn", "Manganese", 25, 54.938, "transition metal", "#9c7ac7", 20},
	"Fe": {"Fe", "Iron", 26, 55.845, "transition metal", "#e06633", 20},
	"Co": {"Co", "Cobalt", 27, 58.933, "transition metal", "#f090a0", 20},
	"Ni": {"Ni", "Nickel", 28, 58.693, "transition metal", "#50d050", 20},
	"Cu": {"Cu", "Copper", 29, 63.546, "transition metal", "#c88033", 20},
	"Zn": {"Zn", "Zinc", 30, 65.38, "transition metal", "#7d80b0", 20},
	"Br": {"Br", "Bromine", 35, 79.904, "halogen", "#a62929", 22},
	"Ag": {"Ag", "Silver", 47, 107.87, "transition metal", "#c0c0c0", 22},
	"I":  {"I", "Iodine", 53, 126.9, "halogen", "#940094", 24},
	"Au": {"Au", "Gold", 79, 196.97, "transition metal", "#ffd123", 22},
}

// byNumber indexes elements by atomic number.
var byNumber = func() map[int]ElementInfo {
	m := make(map[int]ElementInfo, len(elements))
	for _, e := range elements {
		m[e.Number] = e
	}
	return m
}()

// Element looks up sym case-insensitively ("cl", "CL" and "Cl" all match).
// ok is false for unknown symbols, which get Generic with the symbol kept.
func Element(sym string) (info ElementInfo, ok bool) {
	key := normalizeSymbol(sym)
	if e, found := elements[key]; found {
		return e, true
	}
	g := Generic
	if key != "" {
		g.Symbol = key
	}
	return g, false
}

// ElementByNumber looks up an element by atomic number.
func ElementByNumber(z int) (ElementInfo, bool) {
	if e, ok := byNumber[z]; ok {
		return e, true
	}
	g := Generic
	g.Number = z
	return g, false
}

func normalizeSymbol(sym string) string {
	sym = strings.TrimSpace(sym)
	if sym == "" {
		return ""
	}
	return strings.ToUpper(sym[:1]) + strings.ToLower(sym[1:])
}
