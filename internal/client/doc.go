// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the admin client runtime.
//
// It restores the saved session, builds the accounts store and its bridge,
// and hands control to the terminal UI until the user quits.
package client
