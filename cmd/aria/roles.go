package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-go/aria"
)

func rolesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "roles",
		Short: "List every ARIA role token in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			roles := aria.Roles()
			tokens := make([]string, 0, len(roles))
			for _, r := range roles {
				tokens = append(tokens, r.String())
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(tokens)
			}

			for _, token := range tokens {
				fmt.Println(token)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as a JSON array")

	return cmd
}
