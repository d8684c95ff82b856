package gocrc

import (
	"strconv"
	"sync"
	"time"

	"github.com/gocrc/gocrc/internal/lru"
)

const (
	defaultMaxTables    = 256
	defaultTablesWindow = 10 * time.Minute
)

// tableLRU memoizes bytewise and wordwise lookup tables by the exact
// (width, poly, refin) byte pattern that produced them, so two Engines
// built for the same catalogue entry, or the same custom Params, share one
// set of tables instead of rebuilding and re-allocating them each.
type tableLRU struct {
	lru *lru.Cache
}

var globalTableCache = newTableLRU(defaultMaxTables)

func newTableLRU(max int) *tableLRU {
	return &tableLRU{lru: lru.New(max, defaultTablesWindow)}
}

type tableKey struct {
	width uint8
	poly  uint64
	refin bool
}

func (k tableKey) String() string {
	return strconv.FormatUint(uint64(k.width), 10) + ":" +
		strconv.FormatUint(k.poly, 10) + ":" + strconv.FormatBool(k.refin)
}

// tableSet lazily builds the tables for one (width, poly, refin) triple.
// Building is guarded by sync.Once rather than the cache's own lock, since
// two Engines can race to insert the same key and both be handed the same
// *tableSet before either has populated it.
type tableSet struct {
	poly  uint64
	refin bool

	onceByte sync.Once
	bytewise *[256]uint64

	onceWord sync.Once
	wordwise *[tableSliceCount * tableByteCount]uint64
}

func (s *tableSet) ensureBytewise() *[256]uint64 {
	s.onceByte.Do(func() {
		s.bytewise = buildBytewiseTable(s.poly, s.refin)
	})
	return s.bytewise
}

func (s *tableSet) ensureWordwise() (*[256]uint64, *[tableSliceCount * tableByteCount]uint64) {
	bytewise := s.ensureBytewise()
	s.onceWord.Do(func() {
		s.wordwise = buildWordwiseTable(bytewise, s.refin)
	})
	return bytewise, s.wordwise
}

func (c *tableLRU) setFor(width uint8, poly uint64, refin bool) *tableSet {
	key := tableKey{width: width, poly: poly, refin: refin}.String()
	val, _ := c.lru.GetOrInsert(key, &tableSet{poly: poly, refin: refin})
	return val.(*tableSet)
}

// bytewiseTableFor returns the shared bytewise table for poly/refin,
// building it if this is the first Engine to ask for it.
func (c *tableLRU) bytewiseTableFor(width uint8, poly uint64, refin bool) *[256]uint64 {
	return c.setFor(width, poly, refin).ensureBytewise()
}

// wordwiseTableFor returns the shared bytewise and wordwise tables for
// poly/refin, building whichever of the two has not been built yet.
func (c *tableLRU) wordwiseTableFor(width uint8, poly uint64, refin bool) (*[256]uint64, *[tableSliceCount * tableByteCount]uint64) {
	return c.setFor(width, poly, refin).ensureWordwise()
}
