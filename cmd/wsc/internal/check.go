package internal

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
)

func registerCheckCmd(parent *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Verify that WSDL documents can be read",
		Example: `  # Check several documents, reporting each failure
  wsc check partner.wsdl enterprise.wsdl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCheck(s, args)
		},
	}
	parent.AddCommand(cmd)
}

func runCheck(s *session, paths []string) error {
	failed := 0
	for _, path := range paths {
		if _, err := s.load(path); err != nil {
			logger.Error(err)
			failed++
			continue
		}
		if _, err := fmt.Fprintf(s.stdout, "%s ok\n", path); err != nil {
			return fail(err)
		}
	}
	if failed > 0 {
		return fail(fmt.Errorf("%d of %d documents failed", failed, len(paths)))
	}
	return nil
}
