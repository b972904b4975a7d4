package aria

import "testing"

func TestZeroValuesEncodeAbsent(t *testing.T) {
	tests := []struct {
		name  string
		attr  Attr
		value string
	}{
		{"State", Expanded(State(0)), "undefined"},
		{"Tristate", Checked(Tristate(0)), "undefined"},
		{"CurrentType", Current(CurrentType(0)), "false"},
		{"AutocompleteType", Autocomplete(AutocompleteType(0)), "none"},
		{"PopupType", HasPopup(PopupType(0)), "false"},
		{"InvalidType", Invalid(InvalidType(0)), "false"},
		{"OrientationType", Orientation(OrientationType(0)), "undefined"},
		{"SortType", Sort(SortType(0)), "none"},
		{"LiveType", Live(LiveType(0)), "off"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.value)
			}
		})
	}
}

func TestOutOfRangeFallsBackToZeroToken(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"State", State(42).String(), "undefined"},
		{"Tristate", Tristate(42).String(), "undefined"},
		{"CurrentType", CurrentType(42).String(), "false"},
		{"AutocompleteType", AutocompleteType(42).String(), "none"},
		{"PopupType", PopupType(42).String(), "false"},
		{"InvalidType", InvalidType(42).String(), "false"},
		{"OrientationType", OrientationType(42).String(), "undefined"},
		{"SortType", SortType(42).String(), "none"},
		{"LiveType", LiveType(42).String(), "off"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestAttrIsEmpty(t *testing.T) {
	if !(Attr{}).IsEmpty() {
		t.Error("zero Attr should be empty")
	}
	if Label("Close").IsEmpty() {
		t.Error("Label attr should not be empty")
	}
}
