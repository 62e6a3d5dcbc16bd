// SPDX-License-Identifier: Apache-2.0

// Package client implements the headless client application runtime.
//
// It wires the client services and background cache refresh into a single
// process lifecycle: restore (or bootstrap) a session, reconcile the note
// cache once, render the current list, then keep refreshing in the background
// until the process is interrupted.
package client
