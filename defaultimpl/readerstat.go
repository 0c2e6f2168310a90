package impl

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"
)

// DebugOff deactivates all debug messages. Errors, warnings or information are still printed.
const DebugOff = 0

// DebugLow shows debug messages that happen very rarely during operation (to keep the log files small).
const DebugLow = 1

// DebugHigh shows all debug messages.
const DebugHigh = 2

//--------------------------------------------------------------------------------------------------------------------//

type _ReaderStat struct {
	debugLvl    uint8  // enable debug logging [0, 1, 2] (level: high=2)
	packageName string // text for debug logging

	_BufNew     uint64
	_BufReq     uint64
	_BufHit     uint64
	_BufMiss    uint64
	_BufLoad    uint64
	_BufLoadErr uint64
	_BufBypass  uint64
	_BufInval   uint64
	_BufClose   uint64
}

func (s *_ReaderStat) Stat() map[string]uint64 {
	ret := map[string]uint64{
		"BufNew":     atomic.LoadUint64(&s._BufNew),
		"BufReq":     atomic.LoadUint64(&s._BufReq),
		"BufHit":     atomic.LoadUint64(&s._BufHit),
		"BufMiss":    atomic.LoadUint64(&s._BufMiss),
		"BufLoad":    atomic.LoadUint64(&s._BufLoad),
		"BufLoadErr": atomic.LoadUint64(&s._BufLoadErr),
		"BufBypass":  atomic.LoadUint64(&s._BufBypass),
		"BufInval":   atomic.LoadUint64(&s._BufInval),
		"BufClose":   atomic.LoadUint64(&s._BufClose),
	}

	// ignore zero values
	for k, v := range ret {
		if v == 0 {
			delete(ret, k)
		}
	}
	return ret
}

func (s *_ReaderStat) PrintStatAfterClose() {
	// final call in .Close()

	first := true
	var sb strings.Builder
	for k, v := range s.Stat() {
		if !first {
			sb.WriteString(", ")
		} else {
			first = false
		}
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(fmt.Sprintf("%d", v))
	}

	if s.debugLvl >= DebugLow { // Debug level: low=1
		log.Printf("DEBUG: %s/stat.PrintStatAfterClose: %s", s.packageName, sb.String())
	}
}

// ------------------------------------------------------------------------------------------------------------------ //

func (s *_ReaderStat) BufNew(capacity int, pooled bool) {
	atomic.AddUint64(&s._BufNew, 1)
	if s.debugLvl >= DebugHigh { // Debug level: high=2
		log.Printf("DEBUG: %s/stat.BufNew: capacity=%d, pooled=%v", s.packageName, capacity, pooled)
	}
}

func (s *_ReaderStat) BufReq(off int64, reqLen int) {
	atomic.AddUint64(&s._BufReq, 1)
	if s.debugLvl >= DebugHigh { // Debug level: high=2
		log.Printf("DEBUG: %s/stat.BufReq: off=%d, len=%d", s.packageName, off, reqLen)
	}
}

func (s *_ReaderStat) BufHit(off int64, reqLen int) {
	atomic.AddUint64(&s._BufHit, 1)
	if s.debugLvl >= DebugHigh { // Debug level: high=2
		log.Printf("DEBUG: %s/stat.BufHit: off=%d, len=%d", s.packageName, off, reqLen)
	}
}

func (s *_ReaderStat) BufMiss(off int64, reqLen int) {
	atomic.AddUint64(&s._BufMiss, 1)
	if s.debugLvl >= DebugHigh { // Debug level: high=2
		log.Printf("DEBUG: %s/stat.BufMiss: off=%d, len=%d", s.packageName, off, reqLen)
	}
}

func (s *_ReaderStat) BufLoad(off int64, n int, err error) {
	if err == nil {
		atomic.AddUint64(&s._BufLoad, 1)
	} else {
		atomic.AddUint64(&s._BufLoadErr, 1)
	}
	if s.debugLvl >= DebugHigh || err != nil {
		pre := "DEBUG" // Debug level: high=2
		if err != nil {
			pre = "ERROR" // Debug level: error=0
		}
		log.Printf("%s: %s/stat.BufLoad: off=%d, n=%d, err=%v", pre, s.packageName, off, n, err)
	}
}

func (s *_ReaderStat) BufBypass(off int64, reqLen, capacity int) {
	atomic.AddUint64(&s._BufBypass, 1)
	if s.debugLvl >= DebugHigh { // Debug level: high=2
		log.Printf("DEBUG: %s/stat.BufBypass: off=%d, len=%d, capacity=%d", s.packageName, off, reqLen, capacity)
	}
}

func (s *_ReaderStat) BufInval() {
	atomic.AddUint64(&s._BufInval, 1)
	if s.debugLvl >= DebugHigh { // Debug level: high=2
		log.Printf("DEBUG: %s/stat.BufInval", s.packageName)
	}
}

func (s *_ReaderStat) BufClose(pooled bool) {
	atomic.AddUint64(&s._BufClose, 1)
	if s.debugLvl >= DebugLow { // Debug level: low=1
		log.Printf("DEBUG: %s/stat.BufClose: pooled=%v", s.packageName, pooled)
	}
}
