package cmd

import (
	mopboard "github.com/redesblock/mopboard"

	"github.com/spf13/cobra"
)

func (c *command) initVersionCmd() {
	v := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(mopboard.Version)
		},
	}
	c.root.AddCommand(v)
}
