// Package optionrow provides selectable option rows: labeled list entries
// that show a checkmark when selected and report selection-change requests
// to whoever owns the list.
//
// A row is stateless. Its owner passes the current selection in on every
// render and decides what to do with each request. OptionList is such an
// owner, and LanguagePicker builds one for choosing a UI locale.
package optionrow

import (
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/constants"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

// ItemKey is the set of types usable as a row identity.
type ItemKey interface {
	~string | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SelectionChangeFunc receives a request to set the item's selection to
// requestedValue. The receiver decides whether to honor it.
type SelectionChangeFunc[K ItemKey] func(itemKey K, requestedValue bool)

// RowProps are the inputs of a single row render.
type RowProps[K ItemKey] struct {
	ItemKey  K      // Caller-unique within the enclosing list
	Title    string // Primary text, rendered verbatim
	Subtitle string // Secondary text, rendered verbatim
	Selected bool   // Current selection as owned by the caller

	// Named for what it asks rather than "OnPress": the handler must only
	// change the selection this row represents, not navigate or act.
	OnRequestSelectionChange SelectionChangeFunc[K]
}

var rowStyles = view.CreateStyleSheet(map[string]view.Style{
	"wrapper": {
		Flex:          1,
		FlexDirection: view.FlexColumn,
	},
	"subtitle": {
		FontWeight: view.FontWeightLight,
		FontSize:   constants.SubtitleFontSize,
	},
	"listItem": {
		FlexDirection: view.FlexRow,
		AlignItems:    view.AlignCenter,
		Padding:       view.SymmetricPadding(constants.RowPaddingVertical, constants.RowPaddingHorizontal),
	},
})

// RowStyles returns the stylesheet rows are rendered with.
func RowStyles() view.StyleSheet {
	return rowStyles
}

// SelectableOptionRow renders a labeled row for an item among related items,
// with a checkmark when selected.
//
// Activating the row anywhere calls OnRequestSelectionChange exactly once with
// the row's key and the negation of Selected. The row does not re-render in
// response; the owner renders it again with new props if it applies the change.
func SelectableOptionRow[K ItemKey](props RowProps[K]) *view.Node {
	itemKey, selected, onRequest := props.ItemKey, props.Selected, props.OnRequestSelectionChange

	var indicator *view.Node
	if selected {
		indicator = view.Icon(constants.Done, constants.IndicatorSize, view.BrandColor)
	}

	return view.Pressable(
		func() { onRequest(itemKey, !selected) },
		view.NewView(rowStyles.Get("listItem"),
			view.NewView(rowStyles.Get("wrapper"),
				view.Label(props.Title, view.Style{}),
				view.Label(props.Subtitle, rowStyles.Get("subtitle")),
			),
			view.NewView(view.Style{}, indicator),
		),
	)
}
