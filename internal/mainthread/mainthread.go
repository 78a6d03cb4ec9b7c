// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package mainthread

import (
	"golang.org/x/sync/errgroup"
)

// Loop is an event loop that occupies the calling thread while running.
type Loop interface {
	// Run blocks until Stop is called. Stop may be called before Run.
	Run()
	Stop()
}

// RunWith runs fn on a worker goroutine while loop runs on the calling
// goroutine. The loop is stopped as soon as fn returns and the error of fn is
// returned.
func RunWith(loop Loop, fn func() error) error {
	var group errgroup.Group

	group.Go(func() error {
		defer loop.Stop()
		return fn()
	})

	loop.Run()

	return group.Wait()
}
