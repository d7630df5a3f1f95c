package config

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{"-encoding", "cp1251", "-format", "csv", "-precision", "3", "-parallel", "-out", "/tmp/x", "book.txt"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Input:     "book.txt",
		OutDir:    "/tmp/x",
		Encoding:  "cp1251",
		Format:    "csv",
		Precision: 3,
		Parallel:  true,
	}, cfg)
}

func TestParseInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"-format", "ods"},
		{"-encoding", "koi8-r"},
		{"-precision", "-1"},
		{"-nope"},
	} {
		_, err := Parse(args, io.Discard)
		assert.Error(t, err, "%v", args)
	}
}
