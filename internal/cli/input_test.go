package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world \nnext\n"))

	got, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Say something\n> ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("tail"))
	got, err := GetSimpleText(r, "p", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "tail", got)

	_, err = GetSimpleText(r, "p", io.Discard)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_Terminal(t *testing.T) {
	origTerm, origRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = origTerm, origRead })
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("123456"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(bufio.NewReader(strings.NewReader("")), &out)
	require.NoError(t, err)
	assert.Equal(t, "123456", pw)
	assert.Equal(t, "Enter password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("tty gone") }
	_, err = GetPassword(bufio.NewReader(strings.NewReader("")), io.Discard)
	require.EqualError(t, err, "tty gone")
}

func TestGetPassword_Piped(t *testing.T) {
	origTerm := isTerminal
	t.Cleanup(func() { isTerminal = origTerm })
	isTerminal = func(int) bool { return false }

	pw, err := GetPassword(bufio.NewReader(strings.NewReader(" secret \r\n")), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, " secret ", pw, "passwords are not trimmed")
}

func TestGetMultiline(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("line one\nline two\n\nafter\n"))
	got, err := GetMultiline(r, "Body", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got)

	rest, _ := r.ReadString('\n')
	assert.Equal(t, "after\n", rest)
}
