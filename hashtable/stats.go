package hashtable

import (
	"fmt"

	"github.com/sugawarayuuta/sonnet"
)

type Stats struct {
	Count         int     `json:"count"`
	Capacity      int     `json:"capacity"`
	LoadFactor    float64 `json:"load_factor"`
	EmptyBuckets  int     `json:"empty_buckets"`
	LongestBucket int     `json:"longest_bucket"`
	Grows         int     `json:"grows"`
	Shrinks       int     `json:"shrinks"`
}

func (s Stats) JSON() ([]byte, error) {
	return sonnet.Marshal(s)
}

func (s Stats) String() string {
	return fmt.Sprintf("(count=%d,capacity=%d,load=%.2f,empty=%d,longest=%d,grows=%d,shrinks=%d)",
		s.Count, s.Capacity, s.LoadFactor, s.EmptyBuckets, s.LongestBucket, s.Grows, s.Shrinks)
}
