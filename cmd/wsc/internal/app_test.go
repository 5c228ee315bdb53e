package internal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_CheckOK(t *testing.T) {
	path := filepath.Join("testdata", "orders.wsdl")
	code, stdout, _ := run(t, "check", path)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, path+" ok\n", stdout)
}

func TestRun_CheckFailure(t *testing.T) {
	ok := filepath.Join("testdata", "orders.wsdl")
	bad := filepath.Join("testdata", "external.wsdl")
	code, stdout, stderr := run(t, "check", ok, bad)
	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, ok+" ok\n", stdout)
	assert.Contains(t, stderr, "wsdl-external-import")
	assert.Contains(t, stderr, "common.xsd")
	assert.Contains(t, stderr, "1 of 2 documents failed")
}

func TestRun_CheckMissingFile(t *testing.T) {
	code, _, stderr := run(t, "check", filepath.Join("testdata", "missing.wsdl"))
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "missing.wsdl")
}

func TestRun_DumpYAML(t *testing.T) {
	code, stdout, stderr := run(t, "dump", filepath.Join("testdata", "orders.wsdl"))
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, stdout, "name: Orders\n")
	assert.Contains(t, stdout, "targetNamespace: urn:orders")
	assert.Contains(t, stdout, "maxOccurs: unbounded")
}

func TestRun_DumpText(t *testing.T) {
	code, stdout, stderr := run(t, "dump", "-o", "text", filepath.Join("testdata", "orders.wsdl"))
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t,
		"Schema{targetNamespace='urn:orders', elementFormDefault='qualified', attributeFormDefault='<nil>', "+
			"complexTypes=[ComplexType{name='Line', elements=[sku]}, ComplexType{name='Order', elements=[id, line]}]}\n",
		stdout)
}

func TestRun_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "wsc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: text\nstandalone_schema: true\n"), 0o600))

	code, stdout, stderr := run(t, "--config", cfgPath, "dump", filepath.Join("testdata", "orders.xsd"))
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, stdout, "Schema{targetNamespace='urn:orders'")

	code, stdout, stderr = run(t, "--config", cfgPath, "--output", "yaml", "dump", filepath.Join("testdata", "orders.xsd"))
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, stdout, "standalone: true")
}

func TestRun_InvalidConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "wsc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("indent: 12\n"), 0o600))

	code, _, stderr := run(t, "--config", cfgPath, "check", filepath.Join("testdata", "orders.wsdl"))
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "indent must be between 1 and 8")
}

func TestRun_Standalone(t *testing.T) {
	path := filepath.Join("testdata", "orders.xsd")

	code, _, stderr := run(t, "check", path)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "wsdl-unexpected-root")

	code, stdout, _ := run(t, "check", "--standalone", path)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, path+" ok\n", stdout)
}

func TestRun_Verbose(t *testing.T) {
	code, _, stderr := run(t, "--verbose", "check", filepath.Join("testdata", "orders.wsdl"))
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stderr, "1 schema blocks")

	code, _, stderr = run(t, "check", filepath.Join("testdata", "orders.wsdl"))
	assert.Equal(t, ExitOK, code)
	assert.NotContains(t, stderr, "schema blocks")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "check without files", args: []string{"check"}, want: "requires at least 1 arg"},
		{name: "dump two files", args: []string{"dump", "a.wsdl", "b.wsdl"}, want: "accepts 1 arg"},
		{name: "unknown flag", args: []string{"check", "--nope", "a.wsdl"}, want: "unknown flag"},
		{name: "bad output", args: []string{"-o", "json", "dump", "a.wsdl"}, want: "unsupported output format"},
		{name: "unknown command", args: []string{"lint"}, want: "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := run(t, tt.args...)
			assert.Equal(t, ExitUsage, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}
