package ssbp_test

import (
	"testing"

	"badc0de.net/pkg/go-ssbp/ssbp"
	"badc0de.net/pkg/go-ssbp/ssbp/ssbptest"
	"badc0de.net/pkg/go-ssbp/ttesting"
)

func TestOpenMinimal(t *testing.T) {
	p, err := ssbp.Open(ssbptest.Minimal())
	if err != nil {
		t.Fatalf("failed to open project: %s", err)
	}
	ttesting.AssertEqualInt(t, "cells", int(p.Header.NumCells), 1)
	ttesting.AssertEqualInt(t, "anime packs", int(p.Header.NumAnimePacks), 1)
	ttesting.AssertEqualInt(t, "effect files", int(p.Header.NumEffectFiles), 0)

	dir, err := p.ImageBaseDir()
	if err != nil {
		t.Fatalf("failed to read image base dir: %s", err)
	}
	ttesting.AssertEqualString(t, "image base dir", dir, "")

	cells, err := p.CellEntries()
	if err != nil {
		t.Fatalf("failed to read cells: %s", err)
	}
	name, err := p.String(cells[0].Name)
	if err != nil {
		t.Fatalf("failed to read cell name: %s", err)
	}
	ttesting.AssertEqualString(t, "cell name", name, "cell0")
	ttesting.AssertEqualInt(t, "cell width", int(cells[0].Width), 32)

	cm, err := p.CellMap(cells[0])
	if err != nil {
		t.Fatalf("failed to read cell map: %s", err)
	}
	mapName, _ := p.String(cm.Name)
	ttesting.AssertEqualString(t, "cell map name", mapName, "atlas")
	ttesting.AssertEqualString(t, "filter mode", cm.FilterMode.String(), "linear")

	packs, err := p.AnimePacks()
	if err != nil {
		t.Fatalf("failed to read anime packs: %s", err)
	}
	anims, err := packs[0].AnimEntries(p.View())
	if err != nil {
		t.Fatalf("failed to read animations: %s", err)
	}
	ttesting.AssertEqualInt(t, "animations", len(anims), 2)
	for i, want := range []string{"Setup", "Run"} {
		got, _ := p.String(anims[i].Name)
		ttesting.AssertEqualString(t, "animation name", got, want)
	}

	initial, err := anims[0].InitialData(p.View(), int(packs[0].NumParts))
	if err != nil {
		t.Fatalf("failed to read default pose: %s", err)
	}
	ttesting.AssertEqualFloat32(t, "default scale", initial[0].Scale[0], 1)

	effects, err := p.EffectFiles()
	if err != nil {
		t.Fatalf("failed to read effect files: %s", err)
	}
	ttesting.AssertEqualInt(t, "no effects", len(effects), 0)
}

func TestOpenTruncated(t *testing.T) {
	_, err := ssbp.Open(make([]byte, ssbp.PROJECT_HEADER_SIZE-1))
	var be *ssbp.BoundsError
	ttesting.AssertErrorAs(t, "short header", err, &be)
}

func TestCellTableOutOfBounds(t *testing.T) {
	b := ssbptest.New()
	b.Header().Cells = ssbp.Ref[ssbp.CellEntry]{Offset: 0x1000}
	b.Header().NumCells = 1
	p, err := ssbp.Open(b.Bytes())
	if err != nil {
		t.Fatalf("failed to open project: %s", err)
	}
	_, err = p.CellEntries()
	var be *ssbp.BoundsError
	ttesting.AssertErrorAs(t, "cell table past end", err, &be)
}
