package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/rccalc/internal/numeric"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// resetFlags puts every flag of c and its subcommands back to its default
// and clears Changed, so values and required-flag state do not leak from
// one execute call into the next.
func resetFlags(t *testing.T, c *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue), "reset --%s", f.Name)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(t, sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t, rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestFlexureAnalyzeCommand(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	out, err := execute(t, "flexure", "analyze",
		"--width", "200", "--height", "500", "--cover", "40",
		"--fc", "14.3", "--fy", "360", "--as", "1256", "--diagram")
	require.NoError(t, err)

	assert.Contains(t, out, "GB50010-2010")
	assert.Contains(t, out, "Mu = 172.25 kN·m")
	assert.Contains(t, out, "under-reinforced")
	assert.Contains(t, out, "ξb·h0")
}

func TestFlexureDesignCommand(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	out, err := execute(t, "beam", "design", "--width", "200", "--height", "500", "--moment", "150")
	require.NoError(t, err)
	assert.Contains(t, out, "REQUIRED As")
	assert.Contains(t, out, "Design OK")
}

func TestFlexureAnalyzeDomainError(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	_, err := execute(t, "flexure", "analyze", "--width", "200", "--height", "500", "--cover", "600", "--as", "1256", "--diagram=false")
	assert.True(t, errors.Is(err, numeric.ErrDomain))
}

func TestLoadCommand(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	out, err := execute(t, "load", "--dead", "50", "--live", "30", "--wind", "0", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "FACTORED EFFECT = 110.00")
	assert.Contains(t, out, "← GOVERNS")
}

func TestPrestressCommand(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	out, err := execute(t, "prestress",
		"--sigma-con", "1000", "--method", "post",
		"--slip", "5", "--es", "200000", "--length", "10000", "--delta-t", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "σpe = 880.00 MPa")
	assert.Contains(t, out, "POST-TENSIONED")

	_, err = execute(t, "prestress",
		"--sigma-con", "90", "--method", "post",
		"--slip", "5", "--es", "200000", "--length", "10000", "--delta-t", "10")
	assert.True(t, errors.Is(err, numeric.ErrDomain))

	_, err = execute(t, "prestress", "--sigma-con", "1000", "--method", "sideways")
	assert.ErrorContains(t, err, "unknown tensioning method")
}

func TestDeflectionCommand(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	out, err := execute(t, "deflection", "--span", "6000", "--load", "10", "--point", "0", "--ei", "2e13")
	require.NoError(t, err)
	assert.Contains(t, out, "f = 8.44 mm")

	_, err = execute(t, "deflection", "--span", "6000", "--load", "10", "--point", "50", "--ei", "2e13")
	assert.ErrorContains(t, err, "exactly one")
}

func TestProfileShowDefault(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	out, err := execute(t, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "name: GB50010-2010")
	assert.Contains(t, out, "xi_b: 0.518")
}

func TestProfileFlagAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: custom\nxi_b: 0.55\n"), 0o644))

	t.Setenv(ProfileEnv, "")
	out, err := execute(t, "--profile", path, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "name: custom")
	assert.Contains(t, out, "xi_b: 0.55")

	t.Setenv(ProfileEnv, path)
	out, err = execute(t, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "name: custom")

	t.Setenv(ProfileEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = execute(t, "profile", "show")
	assert.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	dir := t.TempDir()
	in := filepath.Join(dir, "beams.xlsx")
	outPath := filepath.Join(dir, "results.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"name", "b", "h", "cover", "fc", "fy", "As", "M"},
		{"B1", 200, 500, 40, 14.3, 360, 1256, 150},
		{"B2", 250, 600, 40, 14.3, 360, 1520},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	require.NoError(t, f.SaveAs(in))
	require.NoError(t, f.Close())

	out, err := execute(t, "batch", in, "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "2 rows analyzed, 0 failed")

	_, err = os.Stat(outPath)
	assert.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rccalc v")
	assert.Contains(t, out, "GB50010-2010")
}

func TestFlexureGrades(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	out, err := execute(t, "flexure", "analyze", "--concrete", "C30", "--steel", "HPB300",
		"--width", "200", "--height", "500", "--cover", "40", "--as", "1256", "--diagram=false")
	require.NoError(t, err)
	assert.Regexp(t, `fy:\s+270\.0 MPa`, out)
	assert.Regexp(t, `ξb:\s+0\.576`, out)

	_, err = execute(t, "flexure", "analyze", "--concrete", "C99",
		"--width", "200", "--height", "500", "--as", "1256")
	assert.ErrorContains(t, err, "unknown concrete grade")
}

func TestFlagsResetBetweenRuns(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	_, err := execute(t, "flexure", "analyze", "--width", "200", "--height", "500", "--as", "1256", "--fc", "20")
	require.NoError(t, err)

	_, err = execute(t, "flexure", "analyze", "--width", "200", "--height", "500")
	assert.ErrorContains(t, err, `required flag(s) "as" not set`)

	out, err := execute(t, "flexure", "analyze", "--width", "200", "--height", "500", "--as", "1256")
	require.NoError(t, err)
	assert.Regexp(t, `fc:\s+14\.3 MPa`, out)
	assert.Contains(t, out, "Mu = 172.25 kN·m")
}

func TestShearCommand(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	out, err := execute(t, "shear", "--width", "200", "--height", "500",
		"--asv", "50.3", "--legs", "2", "--spacing", "200", "--shear", "120")
	require.NoError(t, err)
	assert.Regexp(t, `Concrete \(Vc\):\s+92\.09 kN`, out)
	assert.Regexp(t, `Stirrups \(Vs\):\s+62\.47 kN`, out)
	assert.Contains(t, out, "Vu = 154.56 kN")
	assert.Contains(t, out, "Shear capacity OK")

	out, err = execute(t, "shear", "--width", "200", "--height", "500", "--shear", "120")
	require.NoError(t, err)
	assert.Contains(t, out, "Vu = 92.09 kN")
	assert.Contains(t, out, "Shear capacity insufficient")

	_, err = execute(t, "shear", "--width", "200")
	assert.ErrorContains(t, err, `required flag(s) "height" not set`)
}

func TestAxialCommand(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	out, err := execute(t, "axial", "--width", "300", "--height", "400",
		"--as-prime", "1256", "--l0", "4200", "--load", "1200")
	require.NoError(t, err)
	assert.Regexp(t, `l0/b:\s+14\.00`, out)
	assert.Contains(t, out, "Nu = 1795.2 kN")
	assert.Contains(t, out, "Nt = 452.2 kN")

	// the same column with the sides given the other way round
	swapped, err := execute(t, "axial", "--width", "400", "--height", "300",
		"--as-prime", "1256", "--l0", "4200", "--load", "1200")
	require.NoError(t, err)
	assert.Regexp(t, `l0/b:\s+14\.00`, swapped)
	assert.Contains(t, swapped, "Nu = 1795.2 kN")

	_, err = execute(t, "axial", "--width", "300", "--height", "400", "--l0", "-1")
	assert.True(t, errors.Is(err, numeric.ErrDomain))
}

func TestCrackCommand(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	out, err := execute(t, "crack", "--width", "200", "--height", "500",
		"--as", "1256", "--deq", "20", "--cs", "25", "--mq", "100", "--span", "6000", "--load", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "wmax = 0.176 mm")
	assert.Regexp(t, `θ:\s+2\.00`, out)
	assert.Contains(t, out, "Long-term deflection")
	assert.NotContains(t, out, "crack width exceeded")

	out, err = execute(t, "crack", "--width", "200", "--height", "500",
		"--as", "1256", "--mq", "100", "--limit", "0.1", "--ratios")
	require.NoError(t, err)
	assert.Contains(t, out, "crack width exceeded")
	assert.Contains(t, out, "REINFORCEMENT RATIO")
	assert.NotContains(t, out, "Long-term deflection")
}

func TestFlexureDoublyAnalyzeCommand(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	out, err := execute(t, "flexure", "doubly", "analyze",
		"--width", "200", "--height", "500", "--cover", "60", "--cover-prime", "35",
		"--as", "1964", "--as-prime", "402", "--diagram")
	require.NoError(t, err)
	assert.Contains(t, out, "DOUBLY REINFORCED BEAM ANALYSIS")
	assert.Contains(t, out, "Mu = 250.75 kN·m")
	assert.Contains(t, out, "Concrete couple")
}

func TestFlexureDoublyDesignCommand(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	out, err := execute(t, "flexure", "doubly", "design",
		"--width", "200", "--height", "500", "--moment", "300")
	require.NoError(t, err)
	assert.Regexp(t, `Max M \(singly reinforced\):\s+232\.29 kN·m`, out)
	assert.Contains(t, out, "DOUBLY REINFORCED REQUIRED")
	assert.Contains(t, out, "As' = 447.82 mm²")

	out, err = execute(t, "flexure", "doubly", "design",
		"--width", "200", "--height", "500", "--moment", "150")
	require.NoError(t, err)
	assert.Contains(t, out, "Singly Reinforced Adequate")
	assert.NotContains(t, out, "COMPRESSION STEEL")
}

const tBeamFile = `
name: T-beam
fc: 14.3
fy: 360
vertices:
  - {x: 200, y: 0}
  - {x: 400, y: 0}
  - {x: 400, y: 400}
  - {x: 600, y: 400}
  - {x: 600, y: 500}
  - {x: 0, y: 500}
  - {x: 0, y: 400}
  - {x: 200, y: 400}
reinforcement:
  - {y: 40, area: 1256, description: 4C20}
`

func TestFlexureSectionCommands(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	dir := t.TempDir()
	path := filepath.Join(dir, "t-beam.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tBeamFile), 0o644))

	plot := filepath.Join(dir, "t-beam.png")
	out, err := execute(t, "flexure", "section", "analyze", "-f", path, "-o", plot)
	require.NoError(t, err)
	assert.Contains(t, out, "SECTION ANALYSIS")
	assert.Contains(t, out, "Mu = 196.08 kN·m")
	assert.Contains(t, out, "4C20")
	assert.Contains(t, out, "under-reinforced")
	_, err = os.Stat(plot)
	assert.NoError(t, err)

	out, err = execute(t, "flexure", "section", "design", "-f", path, "--moment", "250")
	require.NoError(t, err)
	assert.Contains(t, out, "REQUIRED As")
	assert.Contains(t, out, "Design OK")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: x\nfcc: 30\n"), 0o644))
	_, err = execute(t, "flexure", "section", "analyze", "-f", bad)
	assert.ErrorContains(t, err, "parse section")

	_, err = execute(t, "flexure", "section", "design", "-f", path)
	assert.ErrorContains(t, err, `required flag(s) "moment" not set`)
}
