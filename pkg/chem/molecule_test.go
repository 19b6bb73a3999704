package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomAtGrowsArena(t *testing.T) {
	mol := NewMolecule()

	a := mol.AtomAt(2)
	require.NotNil(t, a)
	assert.Equal(t, 3, mol.AtomCount())
	for i, atom := range mol.Atoms {
		assert.NotNilf(t, atom, "placeholder %d", i)
	}

	// Existing positions are returned, not replaced.
	assert.Same(t, a, mol.AtomAt(2))
	assert.Same(t, mol.Atoms[0], mol.AtomAt(0))
	assert.Equal(t, 3, mol.AtomCount())

	assert.Nil(t, mol.AtomAt(-1))
}

func TestBondAtGrowsArena(t *testing.T) {
	mol := NewMolecule()

	b := mol.BondAt(0)
	require.NotNil(t, b)
	assert.Equal(t, 1, mol.BondCount())
	assert.False(t, b.Complete())

	mol.BondAt(4)
	assert.Equal(t, 5, mol.BondCount())
	assert.Same(t, b, mol.BondAt(0))
}

func TestBondEndpoints(t *testing.T) {
	a := &Atom{ID: "1", Symbol: "C"}
	o := &Atom{ID: "2", Symbol: "O"}

	var b Bond
	b.SetAtom(o, 1)
	assert.Nil(t, b.Atom(0))
	assert.Same(t, o, b.Atom(1))
	assert.False(t, b.Complete())

	b.SetAtom(a, 0)
	assert.True(t, b.Complete())
	assert.True(t, b.Contains(a))
	assert.False(t, b.Contains(&Atom{ID: "1"}))

	b.SetAtom(a, 2)
	assert.Nil(t, b.Atom(2))
}

func TestNeighborsAndLookup(t *testing.T) {
	mol := NewMolecule()
	c := mol.AddAtom(&Atom{ID: "1", Symbol: "C"})
	o := mol.AddAtom(&Atom{ID: "2", Symbol: "O"})
	h := mol.AddAtom(&Atom{ID: "3", Symbol: "H"})
	mol.AddBond(&Bond{Atoms: [2]*Atom{c, o}})
	mol.AddBond(&Bond{Atoms: [2]*Atom{o, h}})

	assert.Equal(t, []*Atom{o}, mol.Neighbors(c))
	assert.Equal(t, []*Atom{c, h}, mol.Neighbors(o))

	got, ok := mol.AtomByID("3")
	require.True(t, ok)
	assert.Same(t, h, got)
	_, ok = mol.AtomByID("9")
	assert.False(t, ok)

	assert.Equal(t, 1, mol.IndexOf(o))
	assert.Equal(t, -1, mol.IndexOf(&Atom{}))
}

func TestFormula(t *testing.T) {
	tests := []struct {
		name    string
		symbols []string
		want    string
	}{
		{name: "ethanol", symbols: []string{"C", "C", "O", "H", "H", "H", "H", "H", "H"}, want: "C2H6O"},
		{name: "no carbon", symbols: []string{"O", "H", "H"}, want: "H2O"},
		{name: "salt", symbols: []string{"Na", "Cl"}, want: "ClNa"},
		{name: "chloroform", symbols: []string{"Cl", "C", "Cl", "H", "Cl"}, want: "CHCl3"},
		{name: "unset symbols ignored", symbols: []string{"C", ""}, want: "C"},
		{name: "empty", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mol := NewMolecule()
			for _, s := range tt.symbols {
				mol.AddAtom(&Atom{Symbol: s})
			}
			assert.Equal(t, tt.want, mol.Formula())
		})
	}
}

func TestWrapBuildsSingleMoleculeContainer(t *testing.T) {
	mol := NewMolecule()
	file := Wrap(mol)

	require.Len(t, file.Sequences, 1)
	require.Len(t, file.Sequences[0].Models, 1)
	set := file.Sequences[0].Models[0].MoleculeSet
	require.NotNil(t, set)
	require.Len(t, set.Molecules, 1)
	assert.Same(t, mol, set.Molecules[0])
	assert.Equal(t, []*Molecule{mol}, file.Molecules())

	var nilFile *ChemFile
	assert.Nil(t, nilFile.Molecules())
}
