package ssbp

import (
	"github.com/golang/glog"
)

const (
	// DATA_ID is "SSPB" read as a little-endian word.
	DATA_ID      = 0x42505353
	DATA_VERSION = 11
)

// ProjectHeader is the record at offset zero of every .ssbp file.
//
// The sequence pack count is carried for layout only; sequences are not
// decoded.
type ProjectHeader struct {
	DataID           uint32
	Version          uint32
	Flags            uint32
	ImageBaseDir     StringRef
	Cells            Ref[CellEntry]
	AnimePacks       Ref[AnimePack]
	EffectFiles      Ref[EffectFile]
	NumCells         uint16
	NumAnimePacks    uint16
	NumEffectFiles   uint16
	NumSequencePacks uint16
}

// Project is an opened .ssbp file: its header plus a view on its bytes
// through which all further records are read.
type Project struct {
	Header ProjectHeader

	view *View
}

// Open reads the project header from buf. buf must not be modified while the
// project is in use.
func Open(buf []byte) (*Project, error) {
	v := NewView(buf)
	h, err := ReadAt[ProjectHeader](v, 0)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("ssbp header: id 0x%08x version %d flags 0x%x; %d cells, %d anime packs, %d effects, %d sequence packs",
		h.DataID, h.Version, h.Flags, h.NumCells, h.NumAnimePacks, h.NumEffectFiles, h.NumSequencePacks)
	if h.DataID != DATA_ID || h.Version != DATA_VERSION {
		glog.Warningf("ssbp header: id 0x%08x version %d, expected 0x%08x version %d; decoding anyway", h.DataID, h.Version, DATA_ID, DATA_VERSION)
	}
	return &Project{Header: h, view: v}, nil
}

// View returns the view through which the project's records are read.
func (p *Project) View() *View {
	return p.view
}

// String reads a string of the project.
func (p *Project) String(ref StringRef) (string, error) {
	return p.view.String(ref)
}

// ImageBaseDir returns the directory the project's image paths are relative to.
func (p *Project) ImageBaseDir() (string, error) {
	return p.view.String(p.Header.ImageBaseDir)
}

// CellEntries reads the project's flat cell table, in file order.
func (p *Project) CellEntries() ([]CellEntry, error) {
	return DerefArray(p.view, p.Header.Cells, int(p.Header.NumCells))
}

// CellMap reads the cell map the passed cell belongs to.
func (p *Project) CellMap(c CellEntry) (CellMap, error) {
	return Deref(p.view, c.CellMap)
}

// AnimePacks reads the project's anime packs.
func (p *Project) AnimePacks() ([]AnimePack, error) {
	return DerefArray(p.view, p.Header.AnimePacks, int(p.Header.NumAnimePacks))
}

// EffectFiles reads the project's effect files.
func (p *Project) EffectFiles() ([]EffectFile, error) {
	return DerefArray(p.view, p.Header.EffectFiles, int(p.Header.NumEffectFiles))
}
