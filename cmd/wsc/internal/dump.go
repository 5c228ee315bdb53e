package internal

import (
	"github.com/spf13/cobra"

	"github.com/joedowns/wsc/internal/dump"
)

func registerDumpCmd(parent *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the schema registries of a WSDL document",
		Example: `  # Dump every inline schema as YAML
  wsc dump service.wsdl

  # One summary line per schema block
  wsc dump -o text service.wsdl`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := s.load(args[0])
			if err != nil {
				return fail(err)
			}
			return fail(dump.Write(s.stdout, doc, s.cfg.Output, s.cfg.Indent))
		},
	}
	parent.AddCommand(cmd)
}
