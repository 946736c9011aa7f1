package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/stepkit/pkg/rop/mathx"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "stepkit "+Version+"\n", out)
}

func TestDemoCmd(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Pipeline history: 8 steps\n"))
	assert.Contains(t, out, "defaultValue")
	assert.Contains(t, out, "NaN")
	assert.True(t, strings.HasSuffix(out, "Pipeline value: \"4\"\n"))
}

func TestDemoCmd_Collapsed(t *testing.T) {
	out, err := run(t, "demo", "--collapsed")
	require.NoError(t, err)
	assert.Equal(t, "Pipeline history: 8 steps\nPipeline value: \"4\"\n", out)
}

func TestRunDemo_History(t *testing.T) {
	p := runDemo(nil)

	want := []any{12, 10, 10, 12, 12, 8, 4, "4"}
	h := p.History()
	require.Len(t, h, len(want))
	for i, s := range h {
		assert.Equal(t, want[i], s.Value(), "step %d", i)
	}

	failed := []bool{false, true, true, false, true, false, false, false}
	for i, s := range h {
		assert.Equal(t, failed[i], s.Failed(), "step %d", i)
	}
	assert.Same(t, h[5], h[6], "re-run appends the same step")
}

func TestMathCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"math", "clamp", "12.5", "0", "10"}, want: "10\n"},
		{args: []string{"math", "clamp", "--", "-3", "-5", "5"}, want: "-3\n"},
		{args: []string{"math", "overflow", "--", "-1", "0", "4"}, want: "4\n"},
		{args: []string{"math", "overflow", "7", "0", "4"}, want: "2\n"},
		{args: []string{"math", "rand", "3", "3"}, want: "3\n"},
		{args: []string{"math", "hex", "255"}, want: "ff\n"},
		{args: []string{"math", "dec", "0xff"}, want: "255\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMathCmd_Errors(t *testing.T) {
	_, err := run(t, "math", "clamp", "1", "5", "0")
	assert.True(t, errors.Is(err, mathx.ErrMinGreaterThanMax))

	_, err = run(t, "math", "dec", "xyz")
	assert.True(t, errors.Is(err, mathx.ErrInvalidHex))

	_, err = run(t, "math", "overflow", "a", "0", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument 1")

	_, err = run(t, "math", "rand", "1")
	assert.Error(t, err)
}

func TestEnvBool(t *testing.T) {
	t.Setenv("STEPKIT_TEST_FLAG", "1")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var on, off bool
	fs.BoolVar(&on, "on", false, "")
	fs.BoolVar(&off, "off", false, "")
	require.NoError(t, fs.Parse([]string{"--off=false"}))

	envBool(fs, "on", "STEPKIT_TEST_FLAG", &on)
	envBool(fs, "off", "STEPKIT_TEST_FLAG", &off)

	assert.True(t, on, "env applies when the flag is not given")
	assert.False(t, off, "an explicit flag wins over env")
}
