package behavioral

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// EvictionKey selects a cache eviction strategy at runtime
type EvictionKey string

const (
	EvictionFIFO EvictionKey = "fifo"
	EvictionLRU  EvictionKey = "lru"
	EvictionLFU  EvictionKey = "lfu"
)

// EvictionStrategy decides which entry leaves a full cache
type EvictionStrategy interface {
	Evict(w io.Writer)
}

type fifoStrategy struct{}

func (s *fifoStrategy) Evict(w io.Writer) {
	fmt.Fprintln(w, "evicting the oldest inserted entry (FIFO)")
}

type lruStrategy struct{}

func (s *lruStrategy) Evict(w io.Writer) {
	fmt.Fprintln(w, "evicting the least recently used entry (LRU)")
}

type lfuStrategy struct{}

func (s *lfuStrategy) Evict(w io.Writer) {
	fmt.Fprintln(w, "evicting the least frequently used entry (LFU)")
}

// NewEvictionStrategy creates the strategy for the given key
func NewEvictionStrategy(key EvictionKey) (EvictionStrategy, error) {
	switch key {
	case EvictionFIFO:
		return &fifoStrategy{}, nil
	case EvictionLRU:
		return &lruStrategy{}, nil
	case EvictionLFU:
		return &lfuStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown eviction strategy: %s", key)
	}
}

// cache delegates its eviction policy to an injected strategy
type cache struct {
	strategy EvictionStrategy
}

func (c *cache) SetStrategy(s EvictionStrategy) {
	c.strategy = s
}

func (c *cache) Add(w io.Writer, key string) {
	fmt.Fprintf(w, "cache full, adding %s\n", key)
	c.strategy.Evict(w)
}

// NewStrategyDemo creates the strategy demo
func NewStrategyDemo() catalog.Demo {
	return catalog.New(
		"strategy",
		catalog.GroupBehavioral,
		"Swaps cache eviction algorithms behind a single strategy interface",
		func(w io.Writer) {
			c := &cache{}

			for _, key := range []EvictionKey{EvictionFIFO, EvictionLRU, EvictionLFU} {
				strategy, err := NewEvictionStrategy(key)
				if err != nil {
					fmt.Fprintf(w, "error: %v\n", err)
					continue
				}
				c.SetStrategy(strategy)
				c.Add(w, "user:42")
			}
		},
	)
}
