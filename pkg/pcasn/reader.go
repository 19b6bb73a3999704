package pcasn

import (
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/OpenTraceLab/pcasn/pkg/chem"
)

// Block keywords recognized by the reader.
const (
	cmdCompound = "PC-Compound ::="
	cmdAtoms    = "atoms"
	cmdBonds    = "bonds"
	cmdAID      = "aid"
	cmdElement  = "element"
	cmdAID1     = "aid1"
	cmdAID2     = "aid2"
)

// Reader decodes one PubChem Compound ASN record from an input stream.
//
// A Reader holds no decode state between calls; every Read builds its own
// molecule and identifier table. It is bound to a single stream, so
// concurrent Read calls on the same Reader are not allowed, but separate
// Readers may decode in parallel.
type Reader struct {
	in           io.Reader
	logger       log.Logger
	structural   bool
	strictBraces bool
	maxLineSize  int
}

// NewReader creates a reader over in.
func NewReader(in io.Reader, opts ...Option) *Reader {
	r := &Reader{
		in:          in,
		logger:      log.NewNopLogger(),
		maxLineSize: DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read consumes the stream and returns the decoded compound wrapped in a
// ChemFile holding a single sequence, model, molecule set and molecule.
func (r *Reader) Read() (*chem.ChemFile, error) {
	return r.decode(newScannerSource(r.in, r.maxLineSize))
}

// Read decodes a record from in.
func Read(in io.Reader, opts ...Option) (*chem.ChemFile, error) {
	return NewReader(in, opts...).Read()
}

// ReadString decodes a record held in memory.
func ReadString(text string, opts ...Option) (*chem.ChemFile, error) {
	return Read(strings.NewReader(text), opts...)
}

// ReadFile decodes the record stored at path.
func ReadFile(path string, opts ...Option) (*chem.ChemFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "pcasn: open")
	}
	defer f.Close()

	return Read(f, opts...)
}

// ReadMolecule decodes a record from in and returns the molecule itself.
func ReadMolecule(in io.Reader, opts ...Option) (*chem.Molecule, error) {
	file, err := Read(in, opts...)
	if err != nil {
		return nil, err
	}
	return file.Molecules()[0], nil
}

// DecodeLines decodes a record from an arbitrary line source. Options
// that concern the physical stream (WithMaxLineSize) have no effect.
func DecodeLines(src LineSource, opts ...Option) (*chem.ChemFile, error) {
	return NewReader(nil, opts...).decode(src)
}

func (r *Reader) decode(src LineSource) (*chem.ChemFile, error) {
	if r.structural {
		src = NewStructuralSource(src)
	}
	p := &parseContext{
		src:    src,
		mol:    chem.NewMolecule(),
		ids:    make(map[string]*chem.Atom),
		logger: r.logger,
		strict: r.strictBraces,
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return chem.Wrap(p.mol), nil
}

// parseContext is the state of one decode pass.
type parseContext struct {
	src    LineSource
	mol    *chem.Molecule
	ids    map[string]*chem.Atom
	logger log.Logger
	strict bool
	line   int
}

func (p *parseContext) next() (string, bool) {
	line, ok := p.src.Next()
	if ok {
		p.line++
	}
	return line, ok
}

func (p *parseContext) run() error {
	for {
		line, ok := p.next()
		if !ok {
			break
		}
		if !strings.Contains(line, "{") {
			level.Debug(p.logger).Log("msg", "skipping non-block line", "line", p.line)
			continue
		}
		if err := p.processBlock(line); err != nil {
			return err
		}
	}

	if err := p.src.Err(); err != nil {
		return &StreamError{Line: p.line, Err: errors.Wrap(err, "read input")}
	}
	level.Debug(p.logger).Log("msg", "decoded compound", "atoms", p.mol.AtomCount(), "bonds", p.mol.BondCount())
	return nil
}

func (p *parseContext) processBlock(line string) error {
	cmd, _ := Command(line)
	switch cmd {
	case cmdAtoms:
		level.Debug(p.logger).Log("msg", "block found", "block", cmd, "line", p.line)
		p.processAtomBlock()
	case cmdBonds:
		level.Debug(p.logger).Log("msg", "block found", "block", cmd, "line", p.line)
		return p.processBondBlock()
	case cmdCompound:
		level.Debug(p.logger).Log("msg", "compound record found", "line", p.line)
	default:
		level.Debug(p.logger).Log("msg", "skipping block", "command", cmd, "line", p.line)
		p.skipBlock(line)
	}
	return nil
}

func (p *parseContext) processAtomBlock() {
	for {
		line, ok := p.next()
		if !ok {
			return
		}
		switch {
		case strings.Contains(line, "{"):
			p.processAtomField(line)
		case strings.Contains(line, "}"):
			return
		}
	}
}

func (p *parseContext) processAtomField(line string) {
	cmd, _ := Command(line)
	switch cmd {
	case cmdAID:
		level.Debug(p.logger).Log("msg", "block found", "block", "atoms.aid", "line", p.line)
		p.readAtomIDs()
	case cmdElement:
		level.Debug(p.logger).Log("msg", "block found", "block", "atoms.element", "line", p.line)
		p.readAtomSymbols()
	default:
		level.Debug(p.logger).Log("msg", "skipping block", "command", "atoms."+cmd, "line", p.line)
		p.skipBlock(line)
	}
}

func (p *parseContext) processBondBlock() error {
	for {
		line, ok := p.next()
		if !ok {
			return nil
		}
		switch {
		case strings.Contains(line, "{"):
			if err := p.processBondField(line); err != nil {
				return err
			}
		case strings.Contains(line, "}"):
			return nil
		}
	}
}

func (p *parseContext) processBondField(line string) error {
	cmd, _ := Command(line)
	switch cmd {
	case cmdAID1:
		level.Debug(p.logger).Log("msg", "block found", "block", "bonds.aid1", "line", p.line)
		return p.readBondEndpoints(0)
	case cmdAID2:
		level.Debug(p.logger).Log("msg", "block found", "block", "bonds.aid2", "line", p.line)
		return p.readBondEndpoints(1)
	default:
		level.Debug(p.logger).Log("msg", "skipping block", "command", "bonds."+cmd, "line", p.line)
		p.skipBlock(line)
	}
	return nil
}

// readAtomIDs assigns identifiers to atoms by position and registers them
// for bond resolution. A redefined identifier points at its last atom.
func (p *parseContext) readAtomIDs() {
	for i := 0; ; i++ {
		line, ok := p.next()
		if !ok || strings.Contains(line, "}") {
			return
		}
		atom := p.mol.AtomAt(i)
		id := Value(line)
		atom.ID = id
		p.ids[id] = atom
	}
}

func (p *parseContext) readAtomSymbols() {
	for i := 0; ; i++ {
		line, ok := p.next()
		if !ok || strings.Contains(line, "}") {
			return
		}
		p.mol.AtomAt(i).Symbol = ToSymbol(Value(line))
	}
}

func (p *parseContext) readBondEndpoints(pos int) error {
	for i := 0; ; i++ {
		line, ok := p.next()
		if !ok || strings.Contains(line, "}") {
			return nil
		}
		bond := p.mol.BondAt(i)
		id := Value(line)
		atom, found := p.ids[id]
		if !found {
			return &IntegrityError{ID: id, Line: p.line}
		}
		bond.SetAtom(atom, pos)
	}
}
