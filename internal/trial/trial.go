package trial

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidTrial   = errors.New("invalid trial")
	ErrUnknownTrial   = errors.New("unknown trial id")
	ErrEmptySelection = errors.New("empty trial selection")
	ErrDuplicateTrial = errors.New("duplicate trial id")
	ErrMalformedSwap  = errors.New("swap must be a pair of slots")
)

// Swap exchanges the tokens currently sitting in two 1-indexed slots.
type Swap struct {
	A int
	B int
}

// UnmarshalYAML accepts the compact `[2, 1]` form.
func (s *Swap) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, ErrMalformedSwap)
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: got %d values: %w", value.Line, len(pair), ErrMalformedSwap)
	}
	s.A, s.B = pair[0], pair[1]
	return nil
}

func (s Swap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int{s.A, s.B} {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
	}
	return node, nil
}

func (s Swap) String() string {
	return fmt.Sprintf("%d<->%d", s.A, s.B)
}

// Trial is one scripted sequence of swaps.
type Trial struct {
	ID    int    `yaml:"id"`
	Swaps []Swap `yaml:"swaps"`
}

// Validate checks every swap against a layout of slots slots.
func (t Trial) Validate(slots int) error {
	for i, s := range t.Swaps {
		if s.A < 1 || s.A > slots || s.B < 1 || s.B > slots {
			return fmt.Errorf("trial %d swap %d (%s): slot out of range [1, %d]: %w", t.ID, i+1, s, slots, ErrInvalidTrial)
		}
		if s.A == s.B {
			return fmt.Errorf("trial %d swap %d (%s): slots must differ: %w", t.ID, i+1, s, ErrInvalidTrial)
		}
	}
	return nil
}

// Catalog is a read-only mapping from trial id to trial.
type Catalog struct {
	trials map[int]Trial
}

// NewCatalog builds a catalog and validates each trial for the given slot count.
func NewCatalog(trials []Trial, slots int) (*Catalog, error) {
	c := &Catalog{trials: make(map[int]Trial, len(trials))}
	for _, t := range trials {
		if _, ok := c.trials[t.ID]; ok {
			return nil, fmt.Errorf("trial %d: %w", t.ID, ErrDuplicateTrial)
		}
		if err := t.Validate(slots); err != nil {
			return nil, err
		}
		swaps := make([]Swap, len(t.Swaps))
		copy(swaps, t.Swaps)
		c.trials[t.ID] = Trial{ID: t.ID, Swaps: swaps}
	}
	return c, nil
}

// Lookup returns a copy of the trial so callers can't mutate the catalog.
func (c *Catalog) Lookup(id int) (Trial, bool) {
	t, ok := c.trials[id]
	if !ok {
		return Trial{}, false
	}
	swaps := make([]Swap, len(t.Swaps))
	copy(swaps, t.Swaps)
	return Trial{ID: t.ID, Swaps: swaps}, true
}

// IDs returns the catalog's trial ids in ascending order.
func (c *Catalog) IDs() []int {
	ids := make([]int, 0, len(c.trials))
	for id := range c.trials {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (c *Catalog) Len() int { return len(c.trials) }

// Selection is the ordered list of trial ids presented in a session.
type Selection []int

// Resolve maps the selection onto the catalog, failing on the first unknown id.
func (s Selection) Resolve(c *Catalog) ([]Trial, error) {
	if len(s) == 0 {
		return nil, ErrEmptySelection
	}
	out := make([]Trial, 0, len(s))
	for i, id := range s {
		t, ok := c.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("selection entry %d: id %d: %w", i+1, id, ErrUnknownTrial)
		}
		out = append(out, t)
	}
	return out, nil
}
