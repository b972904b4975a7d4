package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// attributeInfo describes one catalog entry for display.
type attributeInfo struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// attributeCatalog lists every attribute the library encodes, with the
// kind of value its encoder accepts.
var attributeCatalog = []attributeInfo{
	{"aria-activedescendant", "id reference"},
	{"aria-atomic", "boolean"},
	{"aria-autocomplete", "token"},
	{"aria-busy", "boolean"},
	{"aria-checked", "tristate"},
	{"aria-colcount", "integer"},
	{"aria-colindex", "integer"},
	{"aria-colspan", "integer"},
	{"aria-controls", "id reference list"},
	{"aria-current", "token"},
	{"aria-describedby", "id reference list"},
	{"aria-details", "id reference"},
	{"aria-disabled", "boolean"},
	{"aria-dropeffect", "token list"},
	{"aria-errormessage", "id reference"},
	{"aria-expanded", "optional boolean"},
	{"aria-flowto", "id reference list"},
	{"aria-grabbed", "optional boolean"},
	{"aria-haspopup", "token"},
	{"aria-hidden", "optional boolean"},
	{"aria-invalid", "token"},
	{"aria-keyshortcuts", "string"},
	{"aria-label", "string"},
	{"aria-labelledby", "id reference list"},
	{"aria-level", "integer"},
	{"aria-live", "token"},
	{"aria-modal", "boolean"},
	{"aria-multiline", "boolean"},
	{"aria-multiselectable", "boolean"},
	{"aria-orientation", "token"},
	{"aria-owns", "id reference list"},
	{"aria-placeholder", "string"},
	{"aria-posinset", "integer"},
	{"aria-pressed", "tristate"},
	{"aria-readonly", "boolean"},
	{"aria-relevant", "token list"},
	{"aria-required", "boolean"},
	{"aria-roledescription", "string"},
	{"aria-rowcount", "integer"},
	{"aria-rowindex", "integer"},
	{"aria-rowspan", "integer"},
	{"aria-selected", "optional boolean"},
	{"aria-setsize", "integer"},
	{"aria-sort", "token"},
	{"aria-valuemax", "number"},
	{"aria-valuemin", "number"},
	{"aria-valuenow", "number"},
	{"aria-valuetext", "string"},
	{"role", "token"},
}

func attributesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "attributes",
		Aliases: []string{"attrs"},
		Short:   "List every attribute name with its value kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(attributeCatalog)
			}

			for _, a := range attributeCatalog {
				fmt.Printf("%-24s %s\n", a.Name, a.Kind)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as a JSON array")

	return cmd
}
