// Package pcasn reads PubChem Compound records written in ASN.1 text
// notation and builds a chem.Molecule from them.
//
// Only four leaf blocks carry data for the reader:
//
//	PC-Compound ::= {
//	  atoms {
//	    aid {            -- atom identifiers, one value per line
//	      1,
//	      2
//	    },
//	    element {        -- element symbols, same positions as aid
//	      c,
//	      o
//	    }
//	  },
//	  bonds {
//	    aid1 {           -- first endpoint, by atom identifier
//	      1
//	    },
//	    aid2 {           -- second endpoint, by atom identifier
//	      2
//	    }
//	  }
//	}
//
// Every other block is skipped by brace counting. The reader is line
// oriented and forward only: a block opens on a line containing '{', and
// values are read one per line up to the first ','. Compact records that
// put several values or braces on one line can be read with
// WithStructuralSplit, which reflows each physical line into logical
// lines before decoding.
//
// A stream holds one compound; several records in one stream are merged
// into a single molecule.
package pcasn
