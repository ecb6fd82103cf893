package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"lookandfeel/pkg/lnftypes"
)

// ChangeOp says how an entry differs between two tables.
type ChangeOp string

// Change operations.
const (
	OpAdded   ChangeOp = "added"
	OpRemoved ChangeOp = "removed"
	OpChanged ChangeOp = "changed"
)

// Change is one differing entry. Key is "<kind>.<identifier>".
type Change struct {
	Key string   `json:"key"`
	Op  ChangeOp `json:"op"`
	Old string   `json:"old,omitempty"`
	New string   `json:"new,omitempty"`
}

// String formats the change for logs.
func (c Change) String() string {
	switch c.Op {
	case OpAdded:
		return fmt.Sprintf("+ %s = %s", c.Key, c.New)
	case OpRemoved:
		return fmt.Sprintf("- %s = %s", c.Key, c.Old)
	default:
		return fmt.Sprintf("~ %s: %s -> %s", c.Key, c.Old, c.New)
	}
}

// DiffService compares tables entry by entry and as text.
type DiffService struct {
	initialized bool
}

// NewDiffService creates a new DiffService instance.
func NewDiffService() *DiffService {
	return &DiffService{}
}

// Name returns the service name "diff" for registration.
func (s *DiffService) Name() string {
	return "diff"
}

// Initialize marks the service ready.
func (s *DiffService) Initialize() error {
	s.initialized = true
	return nil
}

// Entries flattens table into "<kind>.<identifier>" keys with printable values.
func (s *DiffService) Entries(table *lnftypes.FullLookAndFeel) map[string]string {
	out := make(map[string]string, table.Len()+2)
	for _, id := range table.IntIDs() {
		v, _ := table.Int(id)
		out[KindInt+"."+id.String()] = fmt.Sprintf("%d", v)
	}
	for _, id := range table.FloatIDs() {
		v, _ := table.Float(id)
		out[KindFloat+"."+id.String()] = fmt.Sprintf("%g", v)
	}
	for _, id := range table.ColorIDs() {
		v, _ := table.Color(id)
		out[KindColor+"."+id.String()] = v.Hex()
	}
	for _, id := range table.FontIDs() {
		v, _ := table.Font(id)
		out[KindFont+"."+id.String()] = FormatFont(v)
	}
	out[KindPasswordChar] = FormatPasswordChar(table.PasswordChar())
	out[KindEchoPassword] = fmt.Sprintf("%t", table.EchoPassword())
	return out
}

// Lines returns the sorted "key = value" lines of table.
func (s *DiffService) Lines(table *lnftypes.FullLookAndFeel) []string {
	entries := s.Entries(table)
	keys := sortedKeys(entries)
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + " = " + entries[k]
	}
	return lines
}

// Diff lists the entries that differ between from and to, sorted by key.
func (s *DiffService) Diff(from, to *lnftypes.FullLookAndFeel) ([]Change, error) {
	if !s.initialized {
		return nil, fmt.Errorf("diff service not initialized")
	}
	if from == nil || to == nil {
		return nil, lnftypes.ErrNilTable
	}

	a, b := s.Entries(from), s.Entries(to)
	keys := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}

	var changes []Change
	for _, k := range sortedKeys(keys) {
		old, inOld := a[k]
		next, inNew := b[k]
		switch {
		case inOld && !inNew:
			changes = append(changes, Change{Key: k, Op: OpRemoved, Old: old})
		case !inOld && inNew:
			changes = append(changes, Change{Key: k, Op: OpAdded, New: next})
		case old != next:
			changes = append(changes, Change{Key: k, Op: OpChanged, Old: old, New: next})
		}
	}
	return changes, nil
}

// TextDiff returns a line diff of the two tables with "-" and "+" prefixes. Unchanged lines are
// omitted. An empty result means the tables are equal.
func (s *DiffService) TextDiff(from, to *lnftypes.FullLookAndFeel) (string, error) {
	if !s.initialized {
		return "", fmt.Errorf("diff service not initialized")
	}
	if from == nil || to == nil {
		return "", lnftypes.ErrNilTable
	}

	textA := strings.Join(s.Lines(from), "\n") + "\n"
	textB := strings.Join(s.Lines(to), "\n") + "\n"

	dmp := diffmatchpatch.New()
	charsA, charsB, lines := dmp.DiffLinesToChars(textA, textB)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(charsA, charsB, false), lines)

	var b strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetGlobalDiffService returns the registered diff service.
func GetGlobalDiffService() (*DiffService, error) {
	return globalService[*DiffService]("diff")
}
