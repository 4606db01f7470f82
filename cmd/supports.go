package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/nftreg/internal/registry"
	"github.com/Mohsinsiddi/nftreg/internal/ui"
)

func interfaceLabel(id registry.InterfaceID) string {
	switch id {
	case registry.InterfaceERC165:
		return "interface detection"
	case registry.InterfaceERC721:
		return "core ownership"
	case registry.InterfaceMetadata:
		return "metadata (name/symbol/URI)"
	case registry.InterfaceEnumerable:
		return "enumeration"
	case registry.InterfaceTokenReceiver:
		return "safe-transfer receiver"
	case registry.InterfacePermit:
		return "signature permits"
	default:
		return "unknown"
	}
}

var supportsCmd = &cobra.Command{
	Use:   "supports [tag]",
	Short: "Query capability tags",
	Long: `Without an argument, list every 4-byte capability tag the registry
reports. With a tag, answer yes or no for that tag alone.

Examples:
  nftreg supports
  nftreg supports 0x5604e225`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			id, err := registry.ParseInterfaceID(args[0])
			if err != nil {
				return err
			}
			if reg.SupportsInterface(id) {
				fmt.Println(ui.Success(fmt.Sprintf("%s supported (%s)", id, interfaceLabel(id))))
			} else {
				fmt.Println(ui.Err(fmt.Sprintf("%s not supported", id)))
			}
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "Tag", Width: 12},
			{Title: "Capability", Width: 32},
		})
		for _, id := range registry.SupportedInterfaces() {
			t.AddRow(ui.Row{ui.Val(id.String()), ui.Meta(interfaceLabel(id))})
		}
		fmt.Println(t.Render())
		return nil
	},
}
