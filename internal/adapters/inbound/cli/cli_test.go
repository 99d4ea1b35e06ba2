package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billcraft/billcraft/internal/adapters/inbound/cli"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "billcraft")
}

func TestRenderCommand_Plain(t *testing.T) {
	out, err := runCommand(t, "render", "Mystery", "5000", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "Invoice for: Mystery\nAmount due: 5000\n", out)
}

func TestRenderCommand_Styled(t *testing.T) {
	out, err := runCommand(t, "render", "Mystery", "5000")
	require.NoError(t, err)
	assert.Contains(t, out, "Mystery")
	assert.Contains(t, out, "5000")
}

func TestRenderCommand_BadAmount(t *testing.T) {
	_, err := runCommand(t, "render", "Mystery", "not-a-number")
	assert.Error(t, err)
}

func TestRenderCommand_NegativeAmount(t *testing.T) {
	_, err := runCommand(t, "render", "Mystery", "--", "-5")
	assert.Error(t, err)
}

func TestSaveCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := runCommand(t, "save", "Mystery", "5000", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Mystery_invoice.txt")

	data, err := os.ReadFile(filepath.Join(dir, "Mystery_invoice.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Invoice for: Mystery\nAmount due: 5000\n", string(data))
}

func TestSaveCommand_UnwritableDir(t *testing.T) {
	_, err := runCommand(t, "save", "Mystery", "5000", "--out", filepath.Join(t.TempDir(), "missing", "deep"))
	assert.Error(t, err)
}

func TestSaveCommand_Ledger(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "save", "Mystery", "5000", "--ledger")
	require.NoError(t, err)
	assert.Contains(t, out, "archived")

	data, err := os.ReadFile(filepath.Join(".billcraft", "ledger", "mystery_invoice.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Mystery")
}

func TestProcessCommand_DefaultsToIndiaEmail(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "process", "Mystery", "5000")
	require.NoError(t, err)
	assert.Contains(t, out, "EMAIL to Mystery")
	assert.Contains(t, out, "total bill: 5900")
	assert.Contains(t, out, "5900")
}

func TestProcessCommand_SingaporeSMS(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "process", "Mystery", "5000", "--jurisdiction", "SG", "--channel", "sms")
	require.NoError(t, err)
	assert.Contains(t, out, "SMS to Mystery")
	assert.Contains(t, out, "total bill: 5350")
}

func TestProcessCommand_ReadsConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".billcraft.yaml", []byte("jurisdiction: SG\nchannel: sms\n"), 0644))

	out, err := runCommand(t, "process", "Mystery", "5000")
	require.NoError(t, err)
	assert.Contains(t, out, "SMS to Mystery")
	assert.Contains(t, out, "5350")
}

func TestProcessCommand_UnknownJurisdiction(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCommand(t, "process", "Mystery", "5000", "--jurisdiction", "XX")
	assert.Error(t, err)
}

func TestProcessCommand_EmptyCustomer(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCommand(t, "process", "", "5000")
	assert.Error(t, err)
}
