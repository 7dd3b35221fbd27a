package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		Register(ErrNotFound.Code(), "conflicting")
	})
}

func TestCause(t *testing.T) {
	std := fmt.Errorf("stdlib")
	cases := map[string]struct {
		err      error
		root     *Error
		wantRoot bool
	}{
		"plain root":         {err: ErrNotFound, root: ErrNotFound, wantRoot: true},
		"wrapped root":       {err: Wrap(ErrNotFound, "gone"), root: ErrNotFound, wantRoot: true},
		"double wrapped":     {err: Wrap(Wrap(ErrNotFound, "a"), "b"), root: ErrNotFound, wantRoot: true},
		"different root":     {err: Wrap(ErrInput, "bad"), root: ErrNotFound, wantRoot: false},
		"stdlib error":       {err: std, root: ErrNotFound, wantRoot: false},
		"wrapped stdlib":     {err: Wrap(std, "ctx"), root: ErrNotFound, wantRoot: false},
		"nil is not a match": {err: nil, root: ErrNotFound, wantRoot: false},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantRoot, tc.root.Is(tc.err))
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "whatever"))
	assert.Nil(t, Wrapf(nil, "whatever %d", 1))
}

func TestWrapKeepsMessageChain(t *testing.T) {
	err := Wrap(Wrap(ErrNotFound, "proposal"), "bucket lookup")
	assert.Equal(t, "bucket lookup: proposal: not found", err.Error())
}

func TestNew(t *testing.T) {
	err := ErrInput.New("missing name")
	assert.True(t, ErrInput.Is(err))
	assert.Equal(t, "missing name: invalid input", err.Error())

	errf := ErrInput.Newf("field %q", "name")
	assert.True(t, ErrInput.Is(errf))
}

func TestCode(t *testing.T) {
	cases := map[string]struct {
		err  error
		want uint32
	}{
		"nil":           {err: nil, want: 0},
		"root":          {err: ErrNotFound, want: ErrNotFound.Code()},
		"wrapped":       {err: Wrap(ErrState, "stuck"), want: ErrState.Code()},
		"foreign error": {err: fmt.Errorf("stdlib"), want: ErrPanic.Code()},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, Code(tc.err))
		})
	}
}

func TestRecover(t *testing.T) {
	fail := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}
	err := fail()
	assert.True(t, ErrPanic.Is(err))

	calm := func() (err error) {
		defer Recover(&err)
		return nil
	}
	assert.Nil(t, calm())
}

func TestWithType(t *testing.T) {
	err := WithType(ErrMsg, &struct{ Name string }{})
	assert.True(t, ErrMsg.Is(err))
}

func TestStackTraceAttached(t *testing.T) {
	err := Wrap(ErrNotFound, "gone")
	// The %+v format must expand to more than the plain message, as it
	// includes the stack trace of the Wrap call.
	plain := fmt.Sprintf("%v", err)
	full := fmt.Sprintf("%+v", err)
	if len(full) <= len(plain) {
		t.Fatal("expected a stack trace in the verbose format")
	}
}
