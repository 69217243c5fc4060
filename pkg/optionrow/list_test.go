package optionrow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

func languages() []Option[string] {
	return []Option[string]{
		{Key: "en", Title: "English", Subtitle: "English"},
		{Key: "de", Title: "Deutsch", Subtitle: "German"},
		{Key: "fr", Title: "français", Subtitle: "French"},
	}
}

func selectedFlags(rows []*view.Node) []bool {
	flags := make([]bool, len(rows))
	for i, r := range rows {
		flags[i] = len(view.FindAll(r, view.KindIcon)) == 1
	}
	return flags
}

func TestOptionListSingleSelect(t *testing.T) {
	list := NewOptionList(languages(), ListSettings[string]{Initial: []string{"en"}})
	require.Equal(t, []string{"en"}, list.Selected())

	rows := list.Rows()
	require.Equal(t, []bool{true, false, false}, selectedFlags(rows))

	// Activating "de" asks for true; single mode swaps the selection.
	view.Activate(rows[1])
	require.Equal(t, []string{"de"}, list.Selected())

	// The old rows are stale; the owner re-renders.
	require.Equal(t, []bool{false, true, false}, selectedFlags(list.Rows()))
}

func TestOptionListSingleSelectKeepsLastSelection(t *testing.T) {
	list := NewOptionList(languages(), ListSettings[string]{Initial: []string{"fr"}})

	changed := list.RequestSelectionChange("fr", false)
	require.False(t, changed)
	require.Equal(t, []string{"fr"}, list.Selected())
}

func TestOptionListSingleSelectAllowEmpty(t *testing.T) {
	list := NewOptionList(languages(), ListSettings[string]{Initial: []string{"fr"}, AllowEmpty: true})

	require.True(t, list.RequestSelectionChange("fr", false))
	require.Empty(t, list.Selected())
}

func TestOptionListSingleInitialKeepsFirstKnown(t *testing.T) {
	list := NewOptionList(languages(), ListSettings[string]{Initial: []string{"xx", "de", "fr"}})
	require.Equal(t, []string{"de"}, list.Selected())
}

func TestOptionListMultiSelect(t *testing.T) {
	list := NewOptionList(languages(), ListSettings[string]{Mode: SelectionModeMulti, Initial: []string{"fr", "en"}})
	require.Equal(t, []string{"en", "fr"}, list.Selected())

	rows := list.Rows()
	view.Activate(rows[1])
	require.Equal(t, []string{"en", "de", "fr"}, list.Selected())

	view.Activate(list.Rows()[0])
	view.Activate(list.Rows()[2])
	require.Equal(t, []string{"de"}, list.Selected())

	view.Activate(list.Rows()[1])
	require.Empty(t, list.Selected())
}

func TestOptionListIgnoresRedundantAndUnknownRequests(t *testing.T) {
	list := NewOptionList(languages(), ListSettings[string]{Initial: []string{"en"}})
	rev := list.Revision()

	require.False(t, list.RequestSelectionChange("en", true))
	require.False(t, list.RequestSelectionChange("de", false))
	require.False(t, list.RequestSelectionChange("zz", true))
	require.Equal(t, rev, list.Revision())
	require.Equal(t, []string{"en"}, list.Selected())
}

func TestOptionListStaleRowRequestsAreIdempotent(t *testing.T) {
	list := NewOptionList(languages(), ListSettings[string]{})
	stale := list.Rows()[1]

	view.Activate(stale)
	view.Activate(stale)

	require.Equal(t, []string{"de"}, list.Selected())
	require.Equal(t, uint64(1), list.Revision())
}

func TestOptionListAcceptVeto(t *testing.T) {
	var asked []string
	list := NewOptionList(languages(), ListSettings[string]{
		Accept: func(itemKey string, requestedValue bool) bool {
			asked = append(asked, itemKey)
			return itemKey != "fr"
		},
	})

	require.False(t, list.RequestSelectionChange("fr", true))
	require.True(t, list.RequestSelectionChange("de", true))
	require.Equal(t, []string{"fr", "de"}, asked)
	require.Equal(t, []string{"de"}, list.Selected())
}

func TestOptionListOnChange(t *testing.T) {
	type change struct {
		key      string
		selected bool
	}
	var changes []change
	list := NewOptionList(languages(), ListSettings[string]{
		Mode:     SelectionModeMulti,
		OnChange: func(k string, s bool) { changes = append(changes, change{k, s}) },
	})

	list.RequestSelectionChange("en", true)
	list.RequestSelectionChange("en", true)
	list.RequestSelectionChange("en", false)

	require.Equal(t, []change{{"en", true}, {"en", false}}, changes)
	require.Equal(t, uint64(2), list.Revision())
}

func TestOptionListDuplicateKeys(t *testing.T) {
	opts := append(languages(), Option[string]{Key: "en", Title: "Duplicate"})
	list := NewOptionList(opts, ListSettings[string]{})

	require.Equal(t, 3, list.Len())
	require.Equal(t, "English", list.Options()[0].Title)
	require.Equal(t, 0, list.Index("en"))
	require.Equal(t, -1, list.Index("zz"))
}

func TestOptionListSetOptionsKeepsSelection(t *testing.T) {
	list := NewOptionList(languages(), ListSettings[string]{Mode: SelectionModeMulti, Initial: []string{"de", "fr"}})

	list.SetOptions([]Option[string]{
		{Key: "de", Title: "Deutsch", Subtitle: "Deutsch"},
		{Key: "ja", Title: "日本語", Subtitle: "Japanisch"},
	})

	require.Equal(t, []string{"de"}, list.Selected())
	require.Equal(t, []string{"Deutsch", "Deutsch"}, view.Texts(list.Rows()[0]))
}

func TestOptionListNumericKeys(t *testing.T) {
	list := NewOptionList([]Option[int]{{Key: 7, Title: "seven"}, {Key: 42, Title: "forty-two"}}, ListSettings[int]{Initial: []int{42}})

	view.Activate(list.Rows()[0])
	require.Equal(t, []int{7}, list.Selected())
	require.True(t, list.IsSelected(7))
	require.False(t, list.IsSelected(42))
}

func TestParseSelectionMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SelectionMode
		wantErr bool
	}{
		{"single", SelectionModeSingle, false},
		{"", SelectionModeSingle, false},
		{"multi", SelectionModeMulti, false},
		{"both", SelectionModeSingle, true},
	}
	for _, tt := range tests {
		got, err := ParseSelectionMode(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}
}
