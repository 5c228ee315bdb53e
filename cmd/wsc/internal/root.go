package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/joedowns/wsc"
	"github.com/joedowns/wsc/internal/config"
)

type session struct {
	stdout     io.Writer
	cfg        *config.Config
	configPath string
	output     string
	verbose    bool
	standalone bool
}

// NewRootCmd creates the wsc root command writing results to stdout.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	s := &session{stdout: stdout}
	rootCmd := &cobra.Command{
		Use:   "wsc",
		Short: "Read the inline schemas of WSDL documents",
		Long: `wsc reads the <types> section of WSDL 1.1 documents and reports the
complex types, simple types, elements, attributes and attribute groups of
every inline schema block.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: s.preRun,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.configPath, "config", "", "path to a YAML config file")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "enable verbose output")
	flags.StringVarP(&s.output, "output", "o", config.OutputYAML, "dump format: yaml or text")
	flags.BoolVar(&s.standalone, "standalone", false, "accept a bare xsd:schema document")

	registerDumpCmd(rootCmd, s)
	registerCheckCmd(rootCmd, s)

	return rootCmd
}

// preRun loads the config file and lets explicitly set flags override it.
func (s *session) preRun(cmd *cobra.Command, _ []string) error {
	cfg := config.DefaultConfig()
	if s.configPath != "" {
		loaded, err := config.Load(s.configPath)
		if err != nil {
			return fail(err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = s.output
	}
	if flags.Changed("verbose") {
		cfg.Verbose = s.verbose
	}
	if flags.Changed("standalone") {
		cfg.StandaloneSchema = s.standalone
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg

	if cfg.Verbose {
		logger.SetLogLevel(logger.LogLevelVerbose)
		logger.Verbose("Using logger.LogLevelVerbose...")
	}
	return nil
}

func (s *session) loadOptions() wsc.LoadOptions {
	return wsc.NewLoadOptions().
		WithStandaloneSchema(s.cfg.StandaloneSchema).
		WithMaxDepth(s.cfg.Limits.MaxDepth).
		WithMaxDocumentBytes(s.cfg.Limits.MaxDocumentBytes)
}

func (s *session) load(path string) (*wsc.Document, error) {
	doc, err := wsc.LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path), s.loadOptions())
	if err != nil {
		return nil, err
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%s: %d schema blocks", path, len(doc.Schemas())))
	}
	return doc, nil
}
