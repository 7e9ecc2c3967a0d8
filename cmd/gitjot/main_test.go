package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitjot/gitjot/pkg/gitlog"
)

const hash = "728d882ed007b3c8b785018874a0eb06e1143b66"

const sampleLog = `commit ` + hash + `
Author: Kelly Brazil <kellyjonbrazil@gmail.com>
Date:   Wed Apr 20 09:50:19 2022 -0400

    add timestamp docs and examples

 docs/parsers/git_log.md | 90 ++++++++
 1 file changed, 90 insertions(+)
`

func runWith(t *testing.T, args []string, stdin string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_BatchJSON(t *testing.T) {
	code, stdout, stderr := runWith(t, nil, sampleLog)

	require.Equal(t, 0, code, "stderr: %s", stderr)

	var records []gitlog.Record
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	require.Len(t, records, 1)
	assert.Equal(t, hash, records[0].Commit)
	assert.Equal(t, "Kelly Brazil", records[0].Author)
	require.NotNil(t, records[0].Stats)
	assert.Equal(t, 90, records[0].Stats.Insertions)
	assert.NotNil(t, records[0].Epoch)
}

func TestRun_RawSkipsProcessing(t *testing.T) {
	code, stdout, _ := runWith(t, []string{"-raw"}, sampleLog)

	require.Equal(t, 0, code)
	assert.Contains(t, stdout, `"insertions": "90"`)
	assert.NotContains(t, stdout, `"epoch"`)
}

func TestRun_LLMFormat(t *testing.T) {
	code, stdout, _ := runWith(t, []string{"-format", "llm"}, sampleLog)

	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "SCOPE: 1 commits"))
	assert.Contains(t, stdout, hash[:8])
}

func TestRun_EmptyStdin(t *testing.T) {
	code, _, stderr := runWith(t, nil, "")

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "no input")
}

func TestRun_UnknownInputWarnsButParses(t *testing.T) {
	code, stdout, stderr := runWith(t, nil, "total 1234\nnot a log\n")

	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "does not look like git log output")

	var records []gitlog.Record
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	assert.Empty(t, records)
}

func TestRun_StreamNDJSON(t *testing.T) {
	input := sampleLog + "commit " + strings.Repeat("a", 40) + "\nAuthor: anonymous\n"

	code, stdout, _ := runWith(t, []string{"-stream"}, input)

	// One line failed in isolation, so the exit code reports it.
	assert.Equal(t, 1, code)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 3, "two records plus one failed unit")

	var failures int
	for _, line := range lines {
		var probe struct {
			Meta *gitlog.Meta `json:"_meta"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &probe))
		if probe.Meta != nil && !probe.Meta.Success {
			failures++
		}
	}
	assert.Equal(t, 1, failures)
}

func TestRun_BadFlag(t *testing.T) {
	code, _, _ := runWith(t, []string{"-nope"}, sampleLog)
	assert.Equal(t, 2, code)
}

func TestResolveFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, "json", resolveFormat("auto", &buf), "non-TTY auto defaults to json")
	assert.Equal(t, "llm", resolveFormat("llm", &buf))
}
