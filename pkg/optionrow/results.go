package optionrow

// ListAction represents how the user left an option list.
type ListAction int

const (
	ListActionConfirmed ListAction = iota // User confirmed the selection (Start button)
	ListActionCancelled                   // User went back (B button)
)

func (a ListAction) String() string {
	switch a {
	case ListActionConfirmed:
		return "confirmed"
	case ListActionCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// OptionListResult is what a backend returns after showing an OptionList.
type OptionListResult[K ItemKey] struct {
	Selected []K        // Keys selected when the list closed, in option order
	Action   ListAction // How the list was closed
	Focused  int        // Index of the focused row, for scroll restoration
}
