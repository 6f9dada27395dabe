// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package argvector - wraps the caller's argument slice so it can be read by index and permuted in place.
//
// The wrapped slice shares its backing array with the caller, every
// permutation is visible through the caller's slice.
package argvector

// Vector - argument vector data
type Vector struct {
	data []string
}

// New - builds a Vector over s without copying it.
func New(s []string) *Vector {
	return &Vector{data: s}
}

// Len - returns the number of arguments.
func (v *Vector) Len() int {
	return len(v.data)
}

// At - returns the argument at index i or an empty string if i is out of range.
func (v *Vector) At(i int) string {
	if i < 0 || i >= len(v.data) {
		return ""
	}
	return v.data[i]
}

// Slice - returns the underlying slice.
func (v *Vector) Slice() []string {
	return v.data
}

// Remaining - Get all values from index i inclusive.
func (v *Vector) Remaining(i int) []string {
	if i < 0 {
		i = 0
	}
	if i >= len(v.data) {
		return []string{}
	}
	return v.data[i:]
}

// Rotate - moves the block [middle, top) in front of the block [bottom, middle).
// Relative order inside each block is kept.
// Out of range or empty blocks leave the vector untouched.
func (v *Vector) Rotate(bottom, middle, top int) {
	if bottom < 0 || top > len(v.data) || bottom >= middle || middle >= top {
		return
	}
	v.reverse(bottom, middle)
	v.reverse(middle, top)
	v.reverse(bottom, top)
}

func (v *Vector) reverse(from, to int) {
	for i, j := from, to-1; i < j; i, j = i+1, j-1 {
		v.data[i], v.data[j] = v.data[j], v.data[i]
	}
}
