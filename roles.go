package aria

// RoleType is a non-abstract ARIA role. The catalog covers the widget,
// composite widget, document structure, landmark, live region, and
// window roles; abstract roles are not constructible.
type RoleType int

const (
	RoleAlert RoleType = iota
	RoleAlertDialog
	RoleApplication
	RoleArticle
	RoleBanner
	RoleButton
	RoleCell
	RoleCheckBox
	RoleColumnHeader
	RoleComboBox
	RoleComplementary
	RoleContentInfo
	RoleDefinition
	RoleDialog
	RoleDirectory
	RoleDocument
	RoleFeed
	RoleFigure
	RoleForm
	RoleGrid
	RoleGridCell
	RoleGroup
	RoleHeading
	RoleImg
	RoleLink
	RoleList
	RoleListBox
	RoleListItem
	RoleLog
	RoleMain
	RoleMarquee
	RoleMath
	RoleMenu
	RoleMenuBar
	RoleMenuItem
	RoleMenuItemCheckBox
	RoleMenuItemRadio
	RoleNavigation
	RoleNone
	RoleNote
	RoleOption
	RolePresentation
	RoleProgressBar
	RoleRadio
	RoleRadioGroup
	RoleRegion
	RoleRow
	RoleRowGroup
	RoleRowHeader
	RoleScrollBar
	RoleSearch
	RoleSearchBox
	RoleSeparator
	RoleSlider
	RoleSpinButton
	RoleStatus
	RoleSwitch
	RoleTab
	RoleTable
	RoleTabList
	RoleTabPanel
	RoleTerm
	RoleTextBox
	RoleTimer
	RoleToolBar
	RoleToolTip
	RoleTree
	RoleTreeGrid
	RoleTreeItem
)

// String returns the ARIA role token. Each token is written out
// literally; tokens are not derived from the constant names.
func (r RoleType) String() string {
	switch r {
	case RoleAlert:
		return "alert"
	case RoleAlertDialog:
		return "alertdialog"
	case RoleApplication:
		return "application"
	case RoleArticle:
		return "article"
	case RoleBanner:
		return "banner"
	case RoleButton:
		return "button"
	case RoleCell:
		return "cell"
	case RoleCheckBox:
		return "checkbox"
	case RoleColumnHeader:
		return "columnheader"
	case RoleComboBox:
		return "combobox"
	case RoleComplementary:
		return "complementary"
	case RoleContentInfo:
		return "contentinfo"
	case RoleDefinition:
		return "definition"
	case RoleDialog:
		return "dialog"
	case RoleDirectory:
		return "directory"
	case RoleDocument:
		return "document"
	case RoleFeed:
		return "feed"
	case RoleFigure:
		return "figure"
	case RoleForm:
		return "form"
	case RoleGrid:
		return "grid"
	case RoleGridCell:
		return "gridcell"
	case RoleGroup:
		return "group"
	case RoleHeading:
		return "heading"
	case RoleImg:
		return "img"
	case RoleLink:
		return "link"
	case RoleList:
		return "list"
	case RoleListBox:
		return "listbox"
	case RoleListItem:
		return "listitem"
	case RoleLog:
		return "log"
	case RoleMain:
		return "main"
	case RoleMarquee:
		return "marquee"
	case RoleMath:
		return "math"
	case RoleMenu:
		return "menu"
	case RoleMenuBar:
		return "menubar"
	case RoleMenuItem:
		return "menuitem"
	case RoleMenuItemCheckBox:
		return "menuitemcheckbox"
	case RoleMenuItemRadio:
		return "menuitemradio"
	case RoleNavigation:
		return "navigation"
	case RoleNone:
		return "none"
	case RoleNote:
		return "note"
	case RoleOption:
		return "option"
	case RolePresentation:
		return "presentation"
	case RoleProgressBar:
		return "progressbar"
	case RoleRadio:
		return "radio"
	case RoleRadioGroup:
		return "radiogroup"
	case RoleRegion:
		return "region"
	case RoleRow:
		return "row"
	case RoleRowGroup:
		return "rowgroup"
	case RoleRowHeader:
		return "rowheader"
	case RoleScrollBar:
		return "scrollbar"
	case RoleSearch:
		return "search"
	case RoleSearchBox:
		return "searchbox"
	case RoleSeparator:
		return "separator"
	case RoleSlider:
		return "slider"
	case RoleSpinButton:
		return "spinbutton"
	case RoleStatus:
		return "status"
	case RoleSwitch:
		return "switch"
	case RoleTab:
		return "tab"
	case RoleTable:
		return "table"
	case RoleTabList:
		return "tablist"
	case RoleTabPanel:
		return "tabpanel"
	case RoleTerm:
		return "term"
	case RoleTextBox:
		return "textbox"
	case RoleTimer:
		return "timer"
	case RoleToolBar:
		return "toolbar"
	case RoleToolTip:
		return "tooltip"
	case RoleTree:
		return "tree"
	case RoleTreeGrid:
		return "treegrid"
	case RoleTreeItem:
		return "treeitem"
	default:
		return ""
	}
}

// Role sets the role attribute.
func Role(r RoleType) Attr { return attr("role", r.String()) }

// Roles returns every role in the catalog, in declaration order.
func Roles() []RoleType {
	roles := make([]RoleType, 0, int(RoleTreeItem)+1)
	for r := RoleAlert; r <= RoleTreeItem; r++ {
		roles = append(roles, r)
	}
	return roles
}
