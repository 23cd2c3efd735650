// Package cellmap groups a project's cells by the texture atlas (cell map)
// they belong to.
//
// Keyframes and effect nodes refer to cells by their position in the
// project's flat cell table, while the authoring tool's documents refer to
// them by atlas and name. Table holds both views.
package cellmap

import (
	"sort"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-ssbp/ssbp"
)

// Entry is one cell of an atlas.
type Entry struct {
	ssbp.CellEntry
	Name string
}

// Cell is all cells sharing one cell map, in the order they were encountered
// in the flat cell table.
type Cell struct {
	Map       ssbp.CellMap
	Name      string
	ImagePath string
	Entries   []Entry

	byIndex map[uint16]int
}

// Index returns the cell map's index, the key by which cells refer to it.
func (c *Cell) Index() uint16 {
	return c.Map.Index
}

// NameByIndex returns the name of the cell with the passed in-map index.
func (c *Cell) NameByIndex(index uint16) (string, bool) {
	i, ok := c.byIndex[index]
	if !ok {
		return "", false
	}
	return c.Entries[i].Name, true
}

// Ref is where a flat cell table position points: the owning cell map and the
// cell's name.
type Ref struct {
	MapIndex uint16
	MapName  string
	Name     string
}

// Table is the result of resolving a project's cell table.
type Table struct {
	// Flat has one entry per position of the project's cell table.
	Flat []Ref

	maps  map[uint16]*Cell
	order []uint16
}

// Resolve reads the project's cell table in a single pass, creating one Cell
// per distinct cell map.
func Resolve(p *ssbp.Project) (*Table, error) {
	entries, err := p.CellEntries()
	if err != nil {
		return nil, errors.Wrap(err, "reading cell table")
	}

	t := &Table{
		Flat: make([]Ref, 0, len(entries)),
		maps: make(map[uint16]*Cell),
	}
	// Cell maps are shared by many entries; read each only once.
	byOffset := make(map[uint32]*Cell)

	for i, e := range entries {
		c, ok := byOffset[e.CellMap.Offset]
		if !ok {
			cm, err := p.CellMap(e)
			if err != nil {
				return nil, errors.Wrapf(err, "reading cell map of cell %d", i)
			}
			if existing, ok := t.maps[cm.Index]; ok {
				c = existing
			} else {
				if c, err = newCell(p, cm); err != nil {
					return nil, errors.Wrapf(err, "reading cell map of cell %d", i)
				}
				t.maps[cm.Index] = c
				t.order = append(t.order, cm.Index)
				glog.V(2).Infof("cell map %d: %q, image %q, %s, %s", cm.Index, c.Name, c.ImagePath, cm.WrapMode, cm.FilterMode)
			}
			byOffset[e.CellMap.Offset] = c
		}

		name, err := p.String(e.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "reading name of cell %d", i)
		}
		if _, dup := c.byIndex[e.Index]; dup {
			return nil, &ssbp.DuplicateIndexError{Map: c.Map.Index, Index: e.Index, Name: name}
		}
		c.byIndex[e.Index] = len(c.Entries)
		c.Entries = append(c.Entries, Entry{CellEntry: e, Name: name})
		t.Flat = append(t.Flat, Ref{MapIndex: c.Map.Index, MapName: c.Name, Name: name})
	}
	return t, nil
}

func newCell(p *ssbp.Project, cm ssbp.CellMap) (*Cell, error) {
	name, err := p.String(cm.Name)
	if err != nil {
		return nil, err
	}
	img, err := p.String(cm.ImagePath)
	if err != nil {
		return nil, err
	}
	return &Cell{
		Map:       cm,
		Name:      name,
		ImagePath: img,
		byIndex:   make(map[uint16]int),
	}, nil
}

// Len returns the number of distinct cell maps.
func (t *Table) Len() int {
	return len(t.maps)
}

// Get returns the cell map with the passed index.
func (t *Table) Get(index uint16) (*Cell, bool) {
	c, ok := t.maps[index]
	return c, ok
}

// Encountered returns the cell maps in the order their first cell appears in
// the flat cell table.
func (t *Table) Encountered() []*Cell {
	out := make([]*Cell, 0, len(t.order))
	for _, idx := range t.order {
		out = append(out, t.maps[idx])
	}
	return out
}

// Sorted returns the cell maps ordered by index. This is the order in which
// documents list them.
func (t *Table) Sorted() []*Cell {
	out := t.Encountered()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Map.Index < out[j].Map.Index
	})
	return out
}

// Position returns where the cell map with the passed index appears in
// Sorted, or -1.
func (t *Table) Position(index uint16) int {
	for i, c := range t.Sorted() {
		if c.Map.Index == index {
			return i
		}
	}
	return -1
}

// Lookup resolves a position in the flat cell table.
func (t *Table) Lookup(flat int) (Ref, error) {
	if flat < 0 || flat >= len(t.Flat) {
		return Ref{}, &ssbp.MissingCellError{Index: flat, Count: len(t.Flat)}
	}
	return t.Flat[flat], nil
}
