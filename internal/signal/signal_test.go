package signal

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.False(t, Validate(-1))
	assert.True(t, Validate(int(First)))
	assert.True(t, Validate(int(Last)))
	assert.False(t, Validate(int(Last)+1))
	assert.Equal(t, StandardCount+RealTimeCount, Count)
}

func TestPartition(t *testing.T) {
	for _, s := range All() {
		assert.NotEqual(t, s.IsStandard(), s.IsRealTime(), "signal %d", s)
	}
	assert.Equal(t, SIGSYS, StandardLast)
	assert.Equal(t, StandardLast+1, RealTimeFirst)
}

func TestRawRoundTrip(t *testing.T) {
	seen := map[int]Signal{}
	for _, s := range All() {
		raw := s.Raw()
		if prev, dup := seen[raw]; dup {
			t.Fatalf("%s and %s share raw number %d", prev, s, raw)
		}
		seen[raw] = s

		got, ok := FromRaw(raw)
		require.True(t, ok, "raw %d", raw)
		assert.Equal(t, s, got)
	}
}

func TestRaw(t *testing.T) {
	tests := []struct {
		sig  Signal
		want syscall.Signal
	}{
		{SIGHUP, syscall.SIGHUP},
		{SIGINT, syscall.SIGINT},
		{SIGKILL, syscall.SIGKILL},
		{SIGSEGV, syscall.SIGSEGV},
		{SIGTERM, syscall.SIGTERM},
		{SIGCHLD, syscall.SIGCHLD},
		{SIGSYS, syscall.SIGSYS},
	}
	for _, tt := range tests {
		t.Run(tt.sig.Name(), func(t *testing.T) {
			assert.Equal(t, int(tt.want), tt.sig.Raw())
			assert.Equal(t, os.Signal(tt.want), tt.sig.OS())
		})
	}

	assert.Equal(t, RTBase, SIGRTMIN.Raw())
	assert.Equal(t, RTBase+15, SIGRTMIN_15.Raw())
	assert.Equal(t, RTBase+16, SIGRTMAX_14.Raw())
	assert.Equal(t, 64, SIGRTMAX.Raw())
}

func TestFromRaw_NotFound(t *testing.T) {
	for _, raw := range []int{0, -1, 32, 33, 65, 0xFFFF} {
		_, ok := FromRaw(raw)
		assert.False(t, ok, "raw %d", raw)
	}
}

func TestFromOS(t *testing.T) {
	s, ok := FromOS(syscall.SIGUSR1)
	require.True(t, ok)
	assert.Equal(t, SIGUSR1, s)

	_, ok = FromOS(os.Interrupt)
	assert.True(t, ok)
}

func TestIsHookable(t *testing.T) {
	for _, s := range All() {
		want := s != SIGKILL && s != SIGSTOP
		assert.Equal(t, want, s.IsHookable(), s.Name())
	}
}

func TestNameAndDescription(t *testing.T) {
	assert.Equal(t, "SIGINT", SIGINT.Name())
	assert.Equal(t, "User Interrupt (Ctrl+C)", SIGINT.Description())
	assert.Equal(t, "SIGRTMIN", SIGRTMIN.Name())
	assert.Equal(t, "SIGRTMIN + 3", SIGRTMIN_3.Name())
	assert.Equal(t, "SIGRTMAX - 1", SIGRTMAX_1.Name())
	assert.Equal(t, "Real-time signal 30", SIGRTMAX.Description())
	assert.Equal(t, "Signal(99)", Signal(99).String())

	for _, s := range All() {
		assert.NotEmpty(t, s.Name())
		assert.NotEmpty(t, s.Description())
	}
}

func TestAliases(t *testing.T) {
	assert.Equal(t, SIGABRT, SIGIOT)
	assert.Equal(t, SIGCHLD, SIGCLD)
	assert.Equal(t, SIGIO, SIGPOLL)
	assert.Equal(t, SIGSYS, SIGUNUSED)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Signal
		wantErr bool
	}{
		{input: "SIGINT", want: SIGINT},
		{input: "int", want: SIGINT},
		{input: "sigterm", want: SIGTERM},
		{input: "SIGIOT", want: SIGABRT},
		{input: "POLL", want: SIGIO},
		{input: "SIGRTMIN", want: SIGRTMIN},
		{input: "RTMIN+3", want: SIGRTMIN_3},
		{input: "SIGRTMAX - 2", want: SIGRTMAX_2},
		{input: "SIGNOPE", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsTermination(t *testing.T) {
	assert.True(t, SIGTERM.IsTermination())
	assert.True(t, SIGSEGV.IsTermination())
	assert.False(t, SIGCHLD.IsTermination())
	assert.False(t, SIGTSTP.IsTermination())
	assert.False(t, SIGRTMIN.IsTermination())
}
