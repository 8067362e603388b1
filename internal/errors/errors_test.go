package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_KeepsCode(t *testing.T) {
	base := NotFound("input file")
	wrapped := Wrap(base, "failed to load dataset")

	assert.Equal(t, CodeNotFound, GetCode(wrapped))
	assert.Equal(t, "failed to load dataset: input file not found", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("boom"), "context")
	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
}

func TestGetCode_ThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", SinkWriteFailed("out.txt", fs.ErrPermission))

	assert.True(t, IsAppError(err))
	assert.True(t, HasCode(err, CodeSinkWriteFailed))
	assert.True(t, stderrors.Is(err, fs.ErrPermission))
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeSourceUnreadable, fmt.Errorf("bad quote"))
	require.Error(t, err)
	assert.Equal(t, CodeSourceUnreadable, GetCode(err))
	assert.Equal(t, "bad quote: bad quote", err.Error())

	recoded := WithCode(CodeInvalidInput, ConfigInvalid("x"))
	assert.Equal(t, CodeInvalidInput, GetCode(recoded))
	assert.Equal(t, "x", recoded.Error())
}
