package aria

import (
	"strings"
	"testing"
)

// roleTokens maps every role in the catalog to its expected token.
var roleTokens = map[RoleType]string{
	RoleAlert:            "alert",
	RoleAlertDialog:      "alertdialog",
	RoleApplication:      "application",
	RoleArticle:          "article",
	RoleBanner:           "banner",
	RoleButton:           "button",
	RoleCell:             "cell",
	RoleCheckBox:         "checkbox",
	RoleColumnHeader:     "columnheader",
	RoleComboBox:         "combobox",
	RoleComplementary:    "complementary",
	RoleContentInfo:      "contentinfo",
	RoleDefinition:       "definition",
	RoleDialog:           "dialog",
	RoleDirectory:        "directory",
	RoleDocument:         "document",
	RoleFeed:             "feed",
	RoleFigure:           "figure",
	RoleForm:             "form",
	RoleGrid:             "grid",
	RoleGridCell:         "gridcell",
	RoleGroup:            "group",
	RoleHeading:          "heading",
	RoleImg:              "img",
	RoleLink:             "link",
	RoleList:             "list",
	RoleListBox:          "listbox",
	RoleListItem:         "listitem",
	RoleLog:              "log",
	RoleMain:             "main",
	RoleMarquee:          "marquee",
	RoleMath:             "math",
	RoleMenu:             "menu",
	RoleMenuBar:          "menubar",
	RoleMenuItem:         "menuitem",
	RoleMenuItemCheckBox: "menuitemcheckbox",
	RoleMenuItemRadio:    "menuitemradio",
	RoleNavigation:       "navigation",
	RoleNone:             "none",
	RoleNote:             "note",
	RoleOption:           "option",
	RolePresentation:     "presentation",
	RoleProgressBar:      "progressbar",
	RoleRadio:            "radio",
	RoleRadioGroup:       "radiogroup",
	RoleRegion:           "region",
	RoleRow:              "row",
	RoleRowGroup:         "rowgroup",
	RoleRowHeader:        "rowheader",
	RoleScrollBar:        "scrollbar",
	RoleSearch:           "search",
	RoleSearchBox:        "searchbox",
	RoleSeparator:        "separator",
	RoleSlider:           "slider",
	RoleSpinButton:       "spinbutton",
	RoleStatus:           "status",
	RoleSwitch:           "switch",
	RoleTab:              "tab",
	RoleTable:            "table",
	RoleTabList:          "tablist",
	RoleTabPanel:         "tabpanel",
	RoleTerm:             "term",
	RoleTextBox:          "textbox",
	RoleTimer:            "timer",
	RoleToolBar:          "toolbar",
	RoleToolTip:          "tooltip",
	RoleTree:             "tree",
	RoleTreeGrid:         "treegrid",
	RoleTreeItem:         "treeitem",
}

func TestRoleTokens(t *testing.T) {
	for role, token := range roleTokens {
		t.Run(token, func(t *testing.T) {
			a := Role(role)
			if a.Key != "role" {
				t.Errorf("Key = %v, want role", a.Key)
			}
			if a.Value != token {
				t.Errorf("Value = %v, want %v", a.Value, token)
			}
		})
	}
}

func TestRoleCatalog(t *testing.T) {
	roles := Roles()
	if len(roles) != len(roleTokens) {
		t.Fatalf("Roles() returned %d roles, want %d", len(roles), len(roleTokens))
	}

	seen := make(map[string]RoleType, len(roles))
	for _, role := range roles {
		token := role.String()
		if token == "" {
			t.Errorf("role %d has no token", int(role))
			continue
		}
		if token != strings.ToLower(token) {
			t.Errorf("token %q is not lowercase", token)
		}
		if prev, dup := seen[token]; dup {
			t.Errorf("token %q shared by roles %d and %d", token, int(prev), int(role))
		}
		seen[token] = role
	}
}

func TestRoleCatalogOrder(t *testing.T) {
	roles := Roles()
	if roles[0] != RoleAlert {
		t.Errorf("first role = %v, want alert", roles[0])
	}
	if roles[len(roles)-1] != RoleTreeItem {
		t.Errorf("last role = %v, want treeitem", roles[len(roles)-1])
	}
}

func TestRoleOutOfRange(t *testing.T) {
	if got := RoleType(-1).String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
	if got := RoleType(1000).String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}
