// Package chem generates chemistry diagrams: a general molecule composer
// (arbitrary atoms and bonds), fixed layouts for small molecules, the benzene
// ring, a graduated beaker and periodic-table element tiles.
//
// Every molecule drawing emits all bond fragments before any atom fragment,
// so spheres always cover the bond ends.
package chem
