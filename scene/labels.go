package scene

import (
	"strconv"
	"strings"
)

// labelTable maps user-facing node labels to dense ids in order of first
// appearance: the arena holds label by id, the index id by label. Labels
// bound to caller-chosen ids live in fixed instead, so sparse ids cost
// nothing.
type labelTable struct {
	arena []string
	fixed map[int]string
	index map[string]int
}

func newLabelTable() *labelTable {
	return &labelTable{index: make(map[string]int)}
}

// assign binds label to an existing id. Tables are either interned or
// assigned, never both.
func (t *labelTable) assign(id int, label string) {
	if t.fixed == nil {
		t.fixed = make(map[int]string)
	}
	t.fixed[id] = label
	t.index[label] = id
}

// intern returns the id of label, assigning the next one if it is new.
func (t *labelTable) intern(label string) int {
	if id, ok := t.index[label]; ok {
		return id
	}
	id := len(t.arena)
	t.arena = append(t.arena, label)
	t.index[label] = id

	return id
}

func (t *labelTable) lookup(label string) (int, bool) {
	id, ok := t.index[label]
	return id, ok
}

func (t *labelTable) label(id int) (string, bool) {
	if l, ok := t.fixed[id]; ok {
		return l, true
	}
	if id < 0 || id >= len(t.arena) {
		return "", false
	}

	return t.arena[id], true
}

// ParseWeight reads the leading integer of s, after optional blanks and a
// sign. Anything without leading digits, or out of int64 range, is 0.
func ParseWeight(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	w, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}

	return w
}
