// Package ssbp reads the binary project files (.ssbp) exported by the
// SpriteStudio 6 authoring tool.
//
// An .ssbp file is a single blob in which records refer to each other by
// 32-bit offsets from the start of the file. Nothing in the file states the
// size or type of what an offset points at; the referring record decides
// that. This package projects the raw bytes onto the fixed-size records
// (project header, cell maps, cells, anime packs, parts, animations, default
// poses, labels, effect files and effect nodes), validating every offset
// against the buffer before it is read.
//
// Higher-level interpretation lives in subpackages: cellmap groups cells by
// their atlas, anime decodes the per-frame keyframe streams, and effect
// decodes particle effect node trees.
package ssbp
