package optionrow

import (
	"fmt"
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

// SelectionMode decides how an OptionList reconciles requests across rows.
type SelectionMode int

const (
	SelectionModeSingle SelectionMode = iota // At most one key selected
	SelectionModeMulti                       // Any subset of keys selected
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionModeSingle:
		return "single"
	case SelectionModeMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// ParseSelectionMode parses "single" or "multi".
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch s {
	case "single", "":
		return SelectionModeSingle, nil
	case "multi":
		return SelectionModeMulti, nil
	default:
		return SelectionModeSingle, fmt.Errorf("unknown selection mode %q", s)
	}
}

// Option is one entry of an OptionList.
type Option[K ItemKey] struct {
	Key      K
	Title    string
	Subtitle string
}

// ListSettings configures an OptionList. The zero value is a single-select
// list that never becomes empty once something is selected.
type ListSettings[K ItemKey] struct {
	Mode SelectionMode

	// AllowEmpty lets a single-select list drop its only selection.
	// Multi-select lists may always become empty.
	AllowEmpty bool

	// Initial keys to select. Unknown keys are ignored; in single mode only
	// the first known key is kept.
	Initial []K

	// Accept may veto a request before it is applied.
	Accept func(itemKey K, requestedValue bool) bool

	// OnChange is called after a request has been applied.
	OnChange func(itemKey K, selected bool)

	Logger *slog.Logger
}

// OptionList owns the selection state for a group of selectable rows and
// applies the requests those rows emit.
type OptionList[K ItemKey] struct {
	options  []Option[K]
	index    map[K]int
	selected map[K]bool
	settings ListSettings[K]
	revision *atomic.Uint64
	logger   *slog.Logger
}

// NewOptionList creates a list over options. Keys must be unique; a duplicate
// key keeps its first position.
func NewOptionList[K ItemKey](options []Option[K], settings ListSettings[K]) *OptionList[K] {
	l := &OptionList[K]{
		index:    make(map[K]int, len(options)),
		selected: make(map[K]bool),
		settings: settings,
		revision: atomic.NewUint64(0),
		logger:   settings.Logger,
	}
	if l.logger == nil {
		l.logger = slog.New(slog.DiscardHandler)
	}

	for _, opt := range options {
		if _, dup := l.index[opt.Key]; dup {
			l.logger.Warn("Duplicate option key ignored", "key", opt.Key)
			continue
		}
		l.index[opt.Key] = len(l.options)
		l.options = append(l.options, opt)
	}

	for _, k := range settings.Initial {
		if _, ok := l.index[k]; !ok {
			continue
		}
		l.selected[k] = true
		if settings.Mode == SelectionModeSingle {
			break
		}
	}

	return l
}

// RequestSelectionChange applies a row's request according to the list's
// mode and settings. It reports whether the selection changed.
func (l *OptionList[K]) RequestSelectionChange(itemKey K, requestedValue bool) bool {
	if _, ok := l.index[itemKey]; !ok {
		l.logger.Debug("Selection request for unknown key", "key", itemKey)
		return false
	}
	if l.selected[itemKey] == requestedValue {
		return false
	}
	if l.settings.Accept != nil && !l.settings.Accept(itemKey, requestedValue) {
		l.logger.Debug("Selection request rejected", "key", itemKey, "requested", requestedValue)
		return false
	}

	switch l.settings.Mode {
	case SelectionModeMulti:
		if requestedValue {
			l.selected[itemKey] = true
		} else {
			delete(l.selected, itemKey)
		}
	default:
		if requestedValue {
			clear(l.selected)
			l.selected[itemKey] = true
		} else {
			if !l.settings.AllowEmpty {
				l.logger.Debug("Refusing to clear single selection", "key", itemKey)
				return false
			}
			delete(l.selected, itemKey)
		}
	}

	l.revision.Inc()
	l.logger.Debug("Selection changed", "key", itemKey, "selected", requestedValue, "mode", l.settings.Mode)

	if l.settings.OnChange != nil {
		l.settings.OnChange(itemKey, requestedValue)
	}
	return true
}

// Rows renders one SelectableOptionRow per option using the current selection.
func (l *OptionList[K]) Rows() []*view.Node {
	rows := make([]*view.Node, len(l.options))
	for i, opt := range l.options {
		rows[i] = SelectableOptionRow(RowProps[K]{
			ItemKey:  opt.Key,
			Title:    opt.Title,
			Subtitle: opt.Subtitle,
			Selected: l.selected[opt.Key],
			OnRequestSelectionChange: func(itemKey K, requestedValue bool) {
				l.RequestSelectionChange(itemKey, requestedValue)
			},
		})
	}
	return rows
}

// Selected returns the selected keys in option order.
func (l *OptionList[K]) Selected() []K {
	keys := make([]K, 0, len(l.selected))
	for _, opt := range l.options {
		if l.selected[opt.Key] {
			keys = append(keys, opt.Key)
		}
	}
	return keys
}

// IsSelected reports whether itemKey is currently selected.
func (l *OptionList[K]) IsSelected(itemKey K) bool {
	return l.selected[itemKey]
}

// Options returns a copy of the list's options.
func (l *OptionList[K]) Options() []Option[K] {
	return append([]Option[K](nil), l.options...)
}

// SetOptions replaces titles and subtitles in place, keeping the selection
// for keys that are still present.
func (l *OptionList[K]) SetOptions(options []Option[K]) {
	l.options = l.options[:0]
	clear(l.index)
	for _, opt := range options {
		if _, dup := l.index[opt.Key]; dup {
			continue
		}
		l.index[opt.Key] = len(l.options)
		l.options = append(l.options, opt)
	}
	for k := range l.selected {
		if _, ok := l.index[k]; !ok {
			delete(l.selected, k)
		}
	}
	l.revision.Inc()
}

// Index returns the position of itemKey, or -1.
func (l *OptionList[K]) Index(itemKey K) int {
	if i, ok := l.index[itemKey]; ok {
		return i
	}
	return -1
}

// Len returns the number of options.
func (l *OptionList[K]) Len() int {
	return len(l.options)
}

// Mode returns the list's selection mode.
func (l *OptionList[K]) Mode() SelectionMode {
	return l.settings.Mode
}

// Revision increases every time the selection or options change. Renderers
// can compare it between frames to skip rebuilding rows. Safe to read from
// any goroutine.
func (l *OptionList[K]) Revision() uint64 {
	return l.revision.Load()
}
