// Package chem holds the minimal molecular object model produced by the
// PubChem Compound ASN reader: atoms, bonds, molecules, and the nested
// container (file, sequence, model, molecule set) that readers hand back.
package chem

// Atom is a single atom of a molecule.
// ID is the identifier supplied by the source record and Symbol the
// element symbol; either may be empty when the record only populated the
// other field for this position.
type Atom struct {
	ID     string
	Symbol string
}

// Bond connects two atoms of the same molecule. The endpoint slots are set
// independently and stay nil until populated.
type Bond struct {
	Atoms [2]*Atom
}

// Atom returns the atom at endpoint slot pos (0 or 1), or nil.
func (b *Bond) Atom(pos int) *Atom {
	if pos < 0 || pos > 1 {
		return nil
	}
	return b.Atoms[pos]
}

// SetAtom stores atom in endpoint slot pos. Out of range slots are ignored.
func (b *Bond) SetAtom(atom *Atom, pos int) {
	if pos < 0 || pos > 1 {
		return
	}
	b.Atoms[pos] = atom
}

// Complete reports whether both endpoints are set.
func (b *Bond) Complete() bool {
	return b.Atoms[0] != nil && b.Atoms[1] != nil
}

// Contains reports whether atom is one of the bond's endpoints.
func (b *Bond) Contains(atom *Atom) bool {
	return atom != nil && (b.Atoms[0] == atom || b.Atoms[1] == atom)
}

// MoleculeSet is an ordered collection of molecules.
type MoleculeSet struct {
	Molecules []*Molecule
}

// Add appends mol to the set.
func (s *MoleculeSet) Add(mol *Molecule) {
	s.Molecules = append(s.Molecules, mol)
}

// ChemModel wraps a molecule set.
type ChemModel struct {
	MoleculeSet *MoleculeSet
}

// ChemSequence is an ordered list of models.
type ChemSequence struct {
	Models []*ChemModel
}

// ChemFile is the top level container returned by readers.
type ChemFile struct {
	Sequences []*ChemSequence
}

// Wrap builds the canonical single-molecule container:
// one sequence holding one model holding one set holding mol.
func Wrap(mol *Molecule) *ChemFile {
	set := &MoleculeSet{}
	set.Add(mol)
	return &ChemFile{
		Sequences: []*ChemSequence{{
			Models: []*ChemModel{{MoleculeSet: set}},
		}},
	}
}

// Molecules returns every molecule in the file, in container order.
func (f *ChemFile) Molecules() []*Molecule {
	if f == nil {
		return nil
	}
	var result []*Molecule
	for _, seq := range f.Sequences {
		for _, model := range seq.Models {
			if model.MoleculeSet == nil {
				continue
			}
			result = append(result, model.MoleculeSet.Molecules...)
		}
	}
	return result
}
