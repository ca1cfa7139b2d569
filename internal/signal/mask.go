package signal

import (
	"fmt"
	"math/bits"
)

// Mask is a set of canonical signals, one bit per ordinal.
type Mask uint64

// MaskNone is the empty set.
const MaskNone Mask = 0

// Bit returns the singleton set holding s.
func Bit(s Signal) Mask {
	return 1 << uint(s)
}

// MaskOf returns the set holding every given signal.
func MaskOf(sigs ...Signal) Mask {
	var m Mask
	for _, s := range sigs {
		m |= Bit(s)
	}
	return m
}

// Has reports whether s is in m.
func (m Mask) Has(s Signal) bool {
	return m&Bit(s) != 0
}

// Union returns m ∪ o.
func (m Mask) Union(o Mask) Mask { return m | o }

// Intersect returns m ∩ o.
func (m Mask) Intersect(o Mask) Mask { return m & o }

// Without returns m with every signal of o removed.
func (m Mask) Without(o Mask) Mask { return m &^ o }

// IsEmpty reports whether m holds no signal.
func (m Mask) IsEmpty() bool { return m == MaskNone }

// Count returns the number of signals in m.
func (m Mask) Count() int { return bits.OnesCount64(uint64(m)) }

// Signals returns the members of m in ordinal order.
func (m Mask) Signals() []Signal {
	sigs := make([]Signal, 0, m.Count())
	for s := First; s <= Last; s++ {
		if m.Has(s) {
			sigs = append(sigs, s)
		}
	}
	return sigs
}

func (m Mask) String() string {
	return fmt.Sprintf("%v", m.Signals())
}

var (
	maskAll          Mask
	maskStandard     Mask
	maskRealTime     Mask
	dispositionMasks [dispositionCount]Mask
)

// MaskAll returns the set of every canonical signal.
func MaskAll() Mask { return maskAll }

// MaskStandard returns the standard block.
func MaskStandard() Mask { return maskStandard }

// MaskRealTime returns the real-time block.
func MaskRealTime() Mask { return maskRealTime }

// MaskFor returns the signals whose default disposition is d.
func MaskFor(d Disposition) Mask {
	return dispositionMasks[d]
}

func init() {
	if Count > 64 {
		panic("signal: canonical set does not fit in Mask")
	}
	for s := First; s <= Last; s++ {
		maskAll |= Bit(s)
		if s.IsStandard() {
			maskStandard |= Bit(s)
		} else {
			maskRealTime |= Bit(s)
		}
		dispositionMasks[s.DefaultDisposition()] |= Bit(s)
	}
	if err := checkMasks(); err != nil {
		panic("signal: " + err.Error())
	}
}

// checkMasks verifies that the disposition masks partition the signal set.
func checkMasks() error {
	var union Mask
	for _, d := range Dispositions() {
		m := dispositionMasks[d]
		if union.Intersect(m) != MaskNone {
			return fmt.Errorf("mask for %s overlaps another disposition", d)
		}
		union = union.Union(m)
	}
	if union != maskAll {
		return fmt.Errorf("disposition masks cover %d of %d signals", union.Count(), Count)
	}
	if dispositionMasks[Unspecified] != maskRealTime {
		return fmt.Errorf("unspecified mask differs from the real-time block")
	}
	return nil
}
