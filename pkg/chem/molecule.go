package chem

import (
	"sort"
	"strconv"
	"strings"
)

// Molecule owns its atom and bond arenas.
//
// Both arenas are positional: AtomAt and BondAt grow the arena on demand so
// that a reader can populate index i of two parallel source arrays (for
// example ids and element symbols) in any order.
type Molecule struct {
	Atoms []*Atom
	Bonds []*Bond
}

// NewMolecule returns an empty molecule.
func NewMolecule() *Molecule {
	return &Molecule{}
}

// AtomCount returns the number of atoms.
func (m *Molecule) AtomCount() int { return len(m.Atoms) }

// BondCount returns the number of bonds.
func (m *Molecule) BondCount() int { return len(m.Bonds) }

// AddAtom appends atom and returns it.
func (m *Molecule) AddAtom(atom *Atom) *Atom {
	m.Atoms = append(m.Atoms, atom)
	return atom
}

// AddBond appends bond and returns it.
func (m *Molecule) AddBond(bond *Bond) *Bond {
	m.Bonds = append(m.Bonds, bond)
	return bond
}

// AtomAt returns the atom at index i, growing the arena to i+1 entries
// first. Any gap is filled with fresh placeholder atoms. Negative indexes
// return nil.
func (m *Molecule) AtomAt(i int) *Atom {
	if i < 0 {
		return nil
	}
	for len(m.Atoms) <= i {
		m.Atoms = append(m.Atoms, &Atom{})
	}
	return m.Atoms[i]
}

// BondAt returns the bond at index i, growing the arena like AtomAt.
func (m *Molecule) BondAt(i int) *Bond {
	if i < 0 {
		return nil
	}
	for len(m.Bonds) <= i {
		m.Bonds = append(m.Bonds, &Bond{})
	}
	return m.Bonds[i]
}

// AtomByID returns the first atom carrying id.
func (m *Molecule) AtomByID(id string) (*Atom, bool) {
	for _, a := range m.Atoms {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// IndexOf returns the arena position of atom, or -1.
func (m *Molecule) IndexOf(atom *Atom) int {
	for i, a := range m.Atoms {
		if a == atom {
			return i
		}
	}
	return -1
}

// Neighbors returns the atoms bonded to atom, in bond order.
func (m *Molecule) Neighbors(atom *Atom) []*Atom {
	var result []*Atom
	for _, b := range m.Bonds {
		if !b.Contains(atom) {
			continue
		}
		other := b.Atoms[0]
		if other == atom {
			other = b.Atoms[1]
		}
		if other != nil {
			result = append(result, other)
		}
	}
	return result
}

// Formula returns the molecular formula in Hill order: carbon first, then
// hydrogen, then the remaining symbols alphabetically. Without carbon all
// symbols are alphabetical. Atoms without a symbol are not counted.
func (m *Molecule) Formula() string {
	counts := make(map[string]int)
	for _, a := range m.Atoms {
		if a.Symbol == "" {
			continue
		}
		counts[a.Symbol]++
	}

	symbols := make([]string, 0, len(counts))
	for sym := range counts {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	_, hasCarbon := counts["C"]
	if hasCarbon {
		sort.SliceStable(symbols, func(i, j int) bool {
			return hillRank(symbols[i]) < hillRank(symbols[j])
		})
	}

	var sb strings.Builder
	for _, sym := range symbols {
		sb.WriteString(sym)
		if n := counts[sym]; n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}

func hillRank(sym string) int {
	switch sym {
	case "C":
		return 0
	case "H":
		return 1
	default:
		return 2
	}
}
