// ./cache.go
package sweph

/*
Package sweph provides the cache of decoded ephemeris segments.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.

Authorship:
Mohammad Shafiee authored this Go code. The file format and the reduction
algorithms follow the Swiss Ephemeris by Dieter Koch and Alois Treindl,
Astrodienst AG.
*/

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
	"github.com/sirupsen/logrus"
)

// defaultMaxSegments is the number of decoded segments kept when the configuration
// does not say otherwise. A planet file needs 11 segments per date.
const defaultMaxSegments = 4096

// segmentCache keeps decoded segments keyed by file, body and segment number.
// Segments are immutable, so a cached pointer may be handed to any goroutine.
// A miss is not an error: the caller decodes the segment again.
// All methods accept a nil receiver, which caches nothing.
type segmentCache struct {
	c   *ristretto.Cache
	log *logrus.Entry
}

// newSegmentCache creates a cache holding up to maxSegments segments.
func newSegmentCache(maxSegments int64, log *logrus.Entry) (*segmentCache, error) {
	if maxSegments <= 0 {
		maxSegments = defaultMaxSegments
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxSegments * 10,
		MaxCost:     maxSegments,
		BufferItems: 64,
		// the cost of an entry is one segment
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating segment cache: %w", err)
	}
	if log == nil {
		log = newLogEntry(nil)
	}
	return &segmentCache{c: c, log: log}, nil
}

func segmentKey(file string, body, index int) string {
	return fmt.Sprintf("%s|%d|%d", file, body, index)
}

// get returns the cached segment, if any.
func (sc *segmentCache) get(file string, body, index int) (*Segment, bool) {
	if sc == nil {
		return nil, false
	}
	v, ok := sc.c.Get(segmentKey(file, body, index))
	if !ok {
		sc.log.WithFields(logrus.Fields{"file": file, "body": body, "segment": index}).Debug("segment cache miss")
		return nil, false
	}
	seg, ok := v.(*Segment)
	return seg, ok
}

// put stores a segment. Ristretto admits entries asynchronously and may drop them.
func (sc *segmentCache) put(file string, seg *Segment) {
	if sc == nil {
		return
	}
	sc.c.Set(segmentKey(file, seg.Body, seg.Index), seg, 1)
}

// wait blocks until pending writes are visible.
func (sc *segmentCache) wait() {
	if sc == nil {
		return
	}
	sc.c.Wait()
}

// close releases the cache.
func (sc *segmentCache) close() {
	if sc == nil {
		return
	}
	sc.c.Close()
}
