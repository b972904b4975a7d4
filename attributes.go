package aria

// Widget attributes

// Autocomplete sets the aria-autocomplete attribute.
func Autocomplete(v AutocompleteType) Attr { return attr("aria-autocomplete", v.String()) }

// Checked sets the aria-checked attribute.
func Checked(v Tristate) Attr { return attr("aria-checked", v.String()) }

// Disabled sets the aria-disabled attribute.
func Disabled(disabled bool) Attr { return attr("aria-disabled", boolValue(disabled)) }

// Expanded sets the aria-expanded attribute.
func Expanded(v State) Attr { return attr("aria-expanded", v.String()) }

// HasPopup sets the aria-haspopup attribute.
func HasPopup(v PopupType) Attr { return attr("aria-haspopup", v.String()) }

// Hidden sets the aria-hidden attribute.
func Hidden(v State) Attr { return attr("aria-hidden", v.String()) }

// Invalid sets the aria-invalid attribute.
func Invalid(v InvalidType) Attr { return attr("aria-invalid", v.String()) }

// KeyShortcuts sets the aria-keyshortcuts attribute.
func KeyShortcuts(shortcuts string) Attr { return attr("aria-keyshortcuts", shortcuts) }

// Label sets the aria-label attribute.
func Label(label string) Attr { return attr("aria-label", label) }

// Level sets the aria-level attribute. The ARIA spec expects a value
// of 1 or greater; the caller is responsible for the range.
func Level(n int) Attr { return attr("aria-level", intValue(n)) }

// Modal sets the aria-modal attribute.
func Modal(modal bool) Attr { return attr("aria-modal", boolValue(modal)) }

// MultiLine sets the aria-multiline attribute.
func MultiLine(multiline bool) Attr { return attr("aria-multiline", boolValue(multiline)) }

// MultiSelectable sets the aria-multiselectable attribute.
func MultiSelectable(selectable bool) Attr {
	return attr("aria-multiselectable", boolValue(selectable))
}

// Orientation sets the aria-orientation attribute.
func Orientation(v OrientationType) Attr { return attr("aria-orientation", v.String()) }

// Placeholder sets the aria-placeholder attribute.
func Placeholder(text string) Attr { return attr("aria-placeholder", text) }

// Pressed sets the aria-pressed attribute.
func Pressed(v Tristate) Attr { return attr("aria-pressed", v.String()) }

// ReadOnly sets the aria-readonly attribute.
func ReadOnly(readonly bool) Attr { return attr("aria-readonly", boolValue(readonly)) }

// Required sets the aria-required attribute.
func Required(required bool) Attr { return attr("aria-required", boolValue(required)) }

// RoleDescription sets the aria-roledescription attribute.
func RoleDescription(description string) Attr {
	return attr("aria-roledescription", description)
}

// Selected sets the aria-selected attribute.
func Selected(v State) Attr { return attr("aria-selected", v.String()) }

// Sort sets the aria-sort attribute.
func Sort(v SortType) Attr { return attr("aria-sort", v.String()) }

// ValueMax sets the aria-valuemax attribute.
func ValueMax(value float64) Attr { return attr("aria-valuemax", floatValue(value)) }

// ValueMin sets the aria-valuemin attribute.
func ValueMin(value float64) Attr { return attr("aria-valuemin", floatValue(value)) }

// ValueNow sets the aria-valuenow attribute.
func ValueNow(value float64) Attr { return attr("aria-valuenow", floatValue(value)) }

// ValueText sets the aria-valuetext attribute.
func ValueText(text string) Attr { return attr("aria-valuetext", text) }

// Live region attributes

// Atomic sets the aria-atomic attribute.
func Atomic(atomic bool) Attr { return attr("aria-atomic", boolValue(atomic)) }

// Busy sets the aria-busy attribute.
func Busy(busy bool) Attr { return attr("aria-busy", boolValue(busy)) }

// Live sets the aria-live attribute.
func Live(v LiveType) Attr { return attr("aria-live", v.String()) }

// Relevant sets the aria-relevant attribute, joining the given kinds
// with spaces. No kinds yields an empty value.
func Relevant(kinds ...RelevantType) Attr {
	return attr("aria-relevant", joinTokens(kinds))
}

// Drag-and-drop attributes

// DropEffect sets the aria-dropeffect attribute, joining the given
// effects with spaces. No effects yields "none".
func DropEffect(effects ...DropEffectType) Attr {
	if len(effects) == 0 {
		return attr("aria-dropeffect", "none")
	}
	return attr("aria-dropeffect", joinTokens(effects))
}

// Grabbed sets the aria-grabbed attribute.
func Grabbed(v State) Attr { return attr("aria-grabbed", v.String()) }

// Relationship attributes

// ActiveDescendant sets the aria-activedescendant attribute.
func ActiveDescendant(id string) Attr { return attr("aria-activedescendant", id) }

// ColCount sets the aria-colcount attribute.
func ColCount(n int) Attr { return attr("aria-colcount", intValue(n)) }

// ColIndex sets the aria-colindex attribute.
func ColIndex(n int) Attr { return attr("aria-colindex", intValue(n)) }

// ColSpan sets the aria-colspan attribute.
func ColSpan(n int) Attr { return attr("aria-colspan", intValue(n)) }

// Controls sets the aria-controls attribute, joining element IDs with
// spaces.
func Controls(ids ...string) Attr { return attr("aria-controls", idList(ids)) }

// DescribedBy sets the aria-describedby attribute, joining element IDs
// with spaces.
func DescribedBy(ids ...string) Attr { return attr("aria-describedby", idList(ids)) }

// Details sets the aria-details attribute.
func Details(id string) Attr { return attr("aria-details", id) }

// ErrorMessage sets the aria-errormessage attribute.
func ErrorMessage(id string) Attr { return attr("aria-errormessage", id) }

// FlowTo sets the aria-flowto attribute, joining element IDs with
// spaces.
func FlowTo(ids ...string) Attr { return attr("aria-flowto", idList(ids)) }

// LabelledBy sets the aria-labelledby attribute, joining element IDs
// with spaces.
func LabelledBy(ids ...string) Attr { return attr("aria-labelledby", idList(ids)) }

// Owns sets the aria-owns attribute, joining element IDs with spaces.
func Owns(ids ...string) Attr { return attr("aria-owns", idList(ids)) }

// PosInSet sets the aria-posinset attribute.
func PosInSet(n int) Attr { return attr("aria-posinset", intValue(n)) }

// RowCount sets the aria-rowcount attribute.
func RowCount(n int) Attr { return attr("aria-rowcount", intValue(n)) }

// RowIndex sets the aria-rowindex attribute.
func RowIndex(n int) Attr { return attr("aria-rowindex", intValue(n)) }

// RowSpan sets the aria-rowspan attribute.
func RowSpan(n int) Attr { return attr("aria-rowspan", intValue(n)) }

// SetSize sets the aria-setsize attribute.
func SetSize(n int) Attr { return attr("aria-setsize", intValue(n)) }

// Global attributes

// Current sets the aria-current attribute.
func Current(v CurrentType) Attr { return attr("aria-current", v.String()) }
