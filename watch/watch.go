// This file is part of Opgen.
//
// Opgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Opgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Opgen.  If not, see <https://www.gnu.org/licenses/>.

// Package watch runs a function whenever a file changes.
//
// Changes are detected by polling the size and modification time of the
// file. There is no notification from the operating system so very quick
// successive changes that leave both the same will be missed.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/jetsetilly/opgen/logger"
)

// DefaultInterval is used if the interval given to Watch() is not positive.
const DefaultInterval = 500 * time.Millisecond

// the information used to decide if a file has changed
type state struct {
	exists  bool
	size    int64
	modTime time.Time
}

func stat(filename string) state {
	info, err := os.Stat(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Log(logger.Allow, "watch", err)
		}
		return state{}
	}
	return state{
		exists:  true,
		size:    info.Size(),
		modTime: info.ModTime(),
	}
}

func (s state) equal(o state) bool {
	return s.exists == o.exists && s.size == o.size && s.modTime.Equal(o.modTime)
}

// Watch calls fn immediately and then every time the named file changes.
// Errors returned by fn are logged and do not stop the watch. The function
// returns when the context is done.
func Watch(ctx context.Context, filename string, interval time.Duration, fn func() error) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	call := func() {
		if err := fn(); err != nil {
			logger.Log(logger.Allow, "watch", err)
		}
	}

	last := stat(filename)
	call()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Logf(logger.Allow, "watch", "watching %s every %v", filename, interval)

	for {
		select {
		case <-ctx.Done():
			logger.Logf(logger.Allow, "watch", "stopped watching %s", filename)
			return nil
		case <-ticker.C:
			s := stat(filename)
			if s.equal(last) {
				continue
			}
			last = s
			if !s.exists {
				logger.Logf(logger.Allow, "watch", "%s has been removed", filename)
			}
			call()
		}
	}
}
