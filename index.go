// index.go: One-based list index used to address displayed members
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

// Index addresses a member by position in the currently displayed list.
// It is stored zero-based internally and rendered one-based to users.
type Index struct {
	zeroBased int
}

// IndexFromOneBased builds an Index from the one-based position users type.
func IndexFromOneBased(oneBased int) Index {
	return Index{zeroBased: oneBased - 1}
}

// ZeroBased returns the index for slice access.
func (i Index) ZeroBased() int { return i.zeroBased }

// OneBased returns the index as displayed to users.
func (i Index) OneBased() int { return i.zeroBased + 1 }
