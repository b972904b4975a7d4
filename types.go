package aria

// Attr represents a single attribute name/value pair.
type Attr struct {
	Key   string
	Value string
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// State is an optional boolean: true, false, or undefined when the
// state is not known or not applicable.
type State int

const (
	StateUndefined State = iota // State not set
	StateFalse
	StateTrue
)

// String returns the attribute value token for the State.
func (s State) String() string {
	switch s {
	case StateFalse:
		return "false"
	case StateTrue:
		return "true"
	default:
		return "undefined"
	}
}

// Tristate is a checked/pressed-style state: true, false, mixed for
// partially-applied states, or undefined when not set.
type Tristate int

const (
	TristateUndefined Tristate = iota // State not set
	TristateFalse
	TristateTrue
	TristateMixed
)

// String returns the attribute value token for the Tristate.
func (t Tristate) String() string {
	switch t {
	case TristateFalse:
		return "false"
	case TristateTrue:
		return "true"
	case TristateMixed:
		return "mixed"
	default:
		return "undefined"
	}
}

// CurrentType marks the current item within a container or set of
// related elements. The zero value encodes "false" (not current).
type CurrentType int

const (
	CurrentFalse CurrentType = iota // Not the current item
	CurrentTrue                     // Current, of an unspecified kind
	CurrentPage
	CurrentStep
	CurrentLocation
	CurrentDate
	CurrentTime
)

// String returns the attribute value token for the CurrentType.
func (c CurrentType) String() string {
	switch c {
	case CurrentTrue:
		return "true"
	case CurrentPage:
		return "page"
	case CurrentStep:
		return "step"
	case CurrentLocation:
		return "location"
	case CurrentDate:
		return "date"
	case CurrentTime:
		return "time"
	default:
		return "false"
	}
}

// AutocompleteType describes what kind of input completion a textbox
// offers. The zero value encodes "none".
type AutocompleteType int

const (
	AutocompleteNone   AutocompleteType = iota // No completion offered
	AutocompleteInline                         // Completion inserted after the caret
	AutocompleteList                           // Completion shown in a collection
	AutocompleteBoth                           // Inline plus list
)

// String returns the attribute value token for the AutocompleteType.
func (a AutocompleteType) String() string {
	switch a {
	case AutocompleteInline:
		return "inline"
	case AutocompleteList:
		return "list"
	case AutocompleteBoth:
		return "both"
	default:
		return "none"
	}
}

// PopupType describes the kind of popup an element can trigger.
// The zero value encodes "false" (no popup).
type PopupType int

const (
	PopupFalse PopupType = iota // No popup
	PopupMenu
	PopupListbox
	PopupTree
	PopupGrid
	PopupDialog
)

// String returns the attribute value token for the PopupType.
func (p PopupType) String() string {
	switch p {
	case PopupMenu:
		return "menu"
	case PopupListbox:
		return "listbox"
	case PopupTree:
		return "tree"
	case PopupGrid:
		return "grid"
	case PopupDialog:
		return "dialog"
	default:
		return "false"
	}
}

// InvalidType describes why an entered value fails validation.
// The zero value encodes "false" (value is valid).
type InvalidType int

const (
	InvalidFalse    InvalidType = iota // Value is valid
	InvalidTrue                        // Invalid, of an unspecified kind
	InvalidGrammar                     // Grammatical error detected
	InvalidSpelling                    // Spelling error detected
)

// String returns the attribute value token for the InvalidType.
func (i InvalidType) String() string {
	switch i {
	case InvalidTrue:
		return "true"
	case InvalidGrammar:
		return "grammar"
	case InvalidSpelling:
		return "spelling"
	default:
		return "false"
	}
}

// OrientationType is an element's orientation. The zero value encodes
// "undefined" (orientation unknown or ambiguous).
type OrientationType int

const (
	OrientationUndefined OrientationType = iota
	OrientationHorizontal
	OrientationVertical
)

// String returns the attribute value token for the OrientationType.
func (o OrientationType) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "undefined"
	}
}

// SortType describes how items in a table or grid column are sorted.
// The zero value encodes "none" (no sort applied).
type SortType int

const (
	SortNone SortType = iota // No sort applied
	SortAscending
	SortDescending
	SortOther // Sorted by an algorithm other than ascending/descending
)

// String returns the attribute value token for the SortType.
func (s SortType) String() string {
	switch s {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	case SortOther:
		return "other"
	default:
		return "none"
	}
}

// LiveType describes the priority with which assistive technology
// announces updates to a live region. There is no absent case; the
// zero value is "off".
type LiveType int

const (
	LiveOff       LiveType = iota // Updates not announced
	LivePolite                    // Announced at the next graceful opportunity
	LiveAssertive                 // Announced immediately
)

// String returns the attribute value token for the LiveType.
func (l LiveType) String() string {
	switch l {
	case LivePolite:
		return "polite"
	case LiveAssertive:
		return "assertive"
	default:
		return "off"
	}
}

// RelevantType is one kind of change to a live region that is relevant
// to announce.
type RelevantType int

const (
	RelevantAdditions RelevantType = iota // Nodes added
	RelevantRemovals                      // Nodes removed
	RelevantText                          // Text or alternative text changed
	RelevantAll                           // All of the above
)

// String returns the attribute value token for the RelevantType.
func (r RelevantType) String() string {
	switch r {
	case RelevantRemovals:
		return "removals"
	case RelevantText:
		return "text"
	case RelevantAll:
		return "all"
	default:
		return "additions"
	}
}

// DropEffectType is one operation that can be performed on a drag
// target when the grabbed element is dropped.
type DropEffectType int

const (
	DropEffectCopy DropEffectType = iota
	DropEffectExecute
	DropEffectLink
	DropEffectMove
	DropEffectNone // Drop target cannot accept the grabbed element
	DropEffectPopup
)

// String returns the attribute value token for the DropEffectType.
func (d DropEffectType) String() string {
	switch d {
	case DropEffectExecute:
		return "execute"
	case DropEffectLink:
		return "link"
	case DropEffectMove:
		return "move"
	case DropEffectNone:
		return "none"
	case DropEffectPopup:
		return "popup"
	default:
		return "copy"
	}
}
